// Package storage implements a line-delimited JSON record store. Each record
// occupies one line of a flat text file. Collections are always read and
// rewritten in full; the audit log is the only append-only file.
package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// maxLineSize bounds a single record line. Records are small (free text is
// capped upstream), so 1 MiB leaves generous headroom.
const maxLineSize = 1 << 20

// decodeLine parses a single line into a record. Kept separate so that the
// per-line parse outcome is an explicit result rather than a swallowed panic
// or a blanket skip inside the read loop.
func decodeLine[T any](line []byte) (T, error) {
	var record T
	if err := json.Unmarshal(line, &record); err != nil {
		return record, fmt.Errorf("malformed record line: %w", err)
	}
	return record, nil
}

// ReadAll reads every well-formed record from the file at path, one JSON
// object per line. Empty lines and lines that fail to parse are skipped;
// partial corruption degrades to a shorter result, never to a load failure.
// A missing file yields an empty slice.
func ReadAll[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var records []T

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		record, err := decodeLine[T](line)
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return records, nil
}

// WriteAll serializes the full record set and atomically replaces the file at
// path. The records are written to a temporary sibling first and the file is
// swapped in via rename, so a crash mid-write leaves either the old or the
// new complete file, never a truncated one.
func WriteAll[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tempPath := path + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file %s: %w", tempPath, err)
	}

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	// The stored files are plain text records, not HTML payloads; <, > and &
	// in free-text fields must round-trip verbatim.
	encoder.SetEscapeHTML(false)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			file.Close()
			os.Remove(tempPath)
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to flush temp file %s: %w", tempPath, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file %s: %w", tempPath, err)
	}

	// Single-process design: the remove+rename pair is not guarded against a
	// concurrent writer, only against a crash of this process.
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// Append serializes one record and appends it to the file at path, creating
// the file if absent. Used for the monotonically growing audit log, which is
// never rewritten.
func Append[T any](path string, record T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}

	return nil
}
