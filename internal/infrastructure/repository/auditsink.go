package repository

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/audit"
	"helpdesk/internal/infrastructure/storage"
)

// FileAuditSink appends audit events to a JSON-lines log. The log is
// append-only; existing lines are never rewritten.
type FileAuditSink struct {
	path string
}

// NewFileAuditSink creates a new FileAuditSink
func NewFileAuditSink(path string) *FileAuditSink {
	return &FileAuditSink{path: path}
}

// Record appends one event to the log.
func (s *FileAuditSink) Record(ctx context.Context, event audit.Event) error {
	if err := storage.Append(s.path, event); err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}
	return nil
}
