package core

import (
	"errors"
	"io"
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseRunID tests run ID parsing
func TestParseRunID(t *testing.T) {
	valid := NewRunID()

	tests := []struct {
		input    string
		expected RunID
		hasError bool
	}{
		{valid.String(), valid, false},
		{"run-123", "", true},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseRunID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestFileAccessErrorKind tests that wrapped access errors keep their kind and cause
func TestFileAccessErrorKind(t *testing.T) {
	err := NewFileAccessError("data/a.csv", io.ErrUnexpectedEOF)

	if !IsFileAccessError(err) {
		t.Error("Expected error to match ErrFileAccess")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("Expected error to unwrap to its cause")
	}

	var accessErr *FileAccessError
	if !errors.As(err, &accessErr) || accessErr.Path != "data/a.csv" {
		t.Errorf("Expected FileAccessError for data/a.csv, got %v", err)
	}
	if got := err.Error(); got != "cannot read data/a.csv: unexpected EOF" {
		t.Errorf("Unexpected message %q", got)
	}

	if IsFileAccessError(ErrNoColumns) {
		t.Error("Plain sentinel must not be reported as an access error")
	}
}
