package builder

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/starford/jera/internal/testutil"
)

const sampleStream = `[twitter][info] starting extraction (user timeline)
{"category": "twitter", "tweet_id": "42", "content": "streamed post", "author": {"name": "ada"}}
"1 file downloaded"
`

func TestBuildStream_WritesPageAndKeepsLogs(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "dump.json", []byte(sampleStream))

	b := New(testLogger(), Options{Overwrite: true})
	res, err := b.BuildStream(in, "")
	if err != nil {
		t.Fatalf("BuildStream: %v", err)
	}

	wantPath := filepath.Join(dir, "dump.html")
	if res.Path != wantPath {
		t.Errorf("path = %q, want %q", res.Path, wantPath)
	}
	wantLogs := []string{
		"[twitter][info] starting extraction (user timeline)",
		"1 file downloaded",
	}
	if !reflect.DeepEqual(res.Logs, wantLogs) {
		t.Errorf("logs = %v, want %v", res.Logs, wantLogs)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), `<article class="tweet"`); got != 1 {
		t.Errorf("articles = %d, want 1", got)
	}
	if !strings.Contains(string(data), "streamed post") {
		t.Error("page missing the streamed post")
	}
}

func TestBuildStream_ExplicitOutputCreatesDirs(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "dump.json", []byte(sampleStream))
	out := filepath.Join(dir, "nested", "pages", "feed.html")

	b := New(testLogger(), Options{Overwrite: true})
	res, err := b.BuildStream(in, out)
	if err != nil {
		t.Fatalf("BuildStream: %v", err)
	}
	if res.Path != out {
		t.Errorf("path = %q, want %q", res.Path, out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("page missing: %v", err)
	}
}

func TestBuildStream_NoRecords(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "dump.json", []byte("[twitter][info] nothing here (user timeline)\n"))

	b := New(testLogger(), Options{Overwrite: true})
	res, err := b.BuildStream(in, "")
	if err != nil {
		t.Fatalf("BuildStream: %v", err)
	}
	if res.Path != "" {
		t.Errorf("path = %q, want empty", res.Path)
	}
	if len(res.Logs) != 1 {
		t.Errorf("logs = %v, want the extractor line", res.Logs)
	}
	if _, err := os.Stat(filepath.Join(dir, "dump.html")); !os.IsNotExist(err) {
		t.Error("no page should be written")
	}
}

func TestBuildStream_NonTwitterRecordsSkipped(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "dump.json",
		[]byte(`{"category": "reddit", "id": "1", "content": "elsewhere"}`+"\n"))

	b := New(testLogger(), Options{Overwrite: true})
	res, err := b.BuildStream(in, "")
	if err != nil {
		t.Fatalf("BuildStream: %v", err)
	}
	if res.Path != "" {
		t.Errorf("path = %q, want empty", res.Path)
	}
}

func TestBuildStream_MissingInput(t *testing.T) {
	b := New(testLogger(), Options{})
	if _, err := b.BuildStream(filepath.Join(t.TempDir(), "nope.json"), ""); err == nil {
		t.Error("expected an error for a missing stream file")
	}
}

func TestBuildStream_LabelPrefersSearchField(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "dump.json",
		[]byte(`{"category": "twitter", "tweet_id": "1", "search": "from:ada"}`+"\n"))

	b := New(testLogger(), Options{Overwrite: true})
	res, err := b.BuildStream(in, "")
	if err != nil {
		t.Fatalf("BuildStream: %v", err)
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "X.com exports – from:ada") {
		t.Error("page heading should use the search expression")
	}
}

func TestBuildStream_LabelFallsBackToOutputStem(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "dump.json",
		[]byte(`{"category": "twitter", "tweet_id": "1"}`+"\n"))

	b := New(testLogger(), Options{Overwrite: true})
	res, err := b.BuildStream(in, "")
	if err != nil {
		t.Fatalf("BuildStream: %v", err)
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<title>X.com exports – dump</title>") {
		t.Error("page heading should fall back to the output filename stem")
	}
}
