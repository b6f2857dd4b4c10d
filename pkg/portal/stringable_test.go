package portal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStringable_ToLower(t *testing.T) {
	s := NewStringable(" FooBar ")

	if got := s.ToLower(); got != "foobar" {
		t.Fatalf("expected foobar got %s", got)
	}
}

func TestFoldKeepsWhitespace(t *testing.T) {
	if got := Fold(" Full Stack "); got != " full stack " {
		t.Fatalf("unexpected fold %q", got)
	}
}

func TestStringable_ToDate(t *testing.T) {
	dt, err := NewStringable("2024-12-15").ToDate()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dt.Year() != 2024 || dt.Month() != time.December || dt.Day() != 15 || dt.Hour() != 0 {
		t.Fatalf("unexpected date: %v", dt)
	}

	if _, err := NewStringable("bad-date").ToDate(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseJsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	os.WriteFile(path, []byte(`{"version":"v1"}`), 0644)

	data, err := ParseJsonFile[struct {
		Version string `json:"version"`
	}](path)

	if err != nil || data.Version != "v1" {
		t.Fatalf("parse failed: %v %+v", err, data)
	}

	if _, err := ParseJsonFile[map[string]any](filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected missing file error")
	}
}
