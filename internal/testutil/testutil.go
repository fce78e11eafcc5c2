// Package testutil provides shared helpers for building export trees in tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TwitterRecord builds a minimal twitter sidecar record with id and
// any extra fields merged in.
func TwitterRecord(id string, extra map[string]any) map[string]any {
	rec := map[string]any{
		"category": "twitter",
		"tweet_id": id,
	}
	for k, v := range extra {
		rec[k] = v
	}
	return rec
}

// WriteSidecar writes record as a JSON sidecar file under dir and
// returns its path. Intermediate directories are created.
func WriteSidecar(t *testing.T, dir, name string, record map[string]any) string {
	t.Helper()
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatal(err)
	}
	return WriteFile(t, dir, name, data)
}

// WriteMedia drops a small placeholder media file under dir and
// returns its path.
func WriteMedia(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, []byte("media"))
}

// WriteFile writes data under dir, creating intermediate directories.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
