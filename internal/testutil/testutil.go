// Package testutil provides shared helpers for zemdomu tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zemdomu/zemdomu/domain"
)

// WriteFile writes content under dir, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// CountRule counts results carrying the given rule id.
func CountRule(results []domain.LintResult, id domain.RuleID) int {
	n := 0
	for _, r := range results {
		if r.Rule == id {
			n++
		}
	}
	return n
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}
