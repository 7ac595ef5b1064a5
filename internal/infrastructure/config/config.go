package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type StorageConfig struct {
	DataDir     string `mapstructure:"data_dir"`
	LogsDir     string `mapstructure:"logs_dir"`
	UsersFile   string `mapstructure:"users_file"`
	TicketsFile string `mapstructure:"tickets_file"`
	AuditFile   string `mapstructure:"audit_file"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// The config file is optional; defaults cover a fully working setup.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("HELPDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// UsersPath returns the full path of the account record file
func (c *Config) UsersPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.UsersFile)
}

// TicketsPath returns the full path of the ticket record file
func (c *Config) TicketsPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.TicketsFile)
}

// AuditPath returns the full path of the append-only audit log
func (c *Config) AuditPath() string {
	return filepath.Join(c.Storage.LogsDir, c.Storage.AuditFile)
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("storage.logs_dir", "./logs")
	viper.SetDefault("storage.users_file", "users.txt")
	viper.SetDefault("storage.tickets_file", "tickets.txt")
	viper.SetDefault("storage.audit_file", "audit.log")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stderr")
}
