package internal

import (
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should pass: %v", err)
	}
	if cfg.Build.OutputName != "index.html" {
		t.Errorf("output name = %q, want index.html", cfg.Build.OutputName)
	}
	if !cfg.Build.Recursive || !cfg.Build.Overwrite {
		t.Error("builds should recurse and overwrite by default")
	}
}

func TestBuildConfig_OutputNameWithSeparator(t *testing.T) {
	for _, name := range []string{"pages/index.html", `pages\index.html`, "/index.html"} {
		cfg := BuildConfig{OutputName: name}
		if err := cfg.Validate(); err == nil {
			t.Errorf("output name %q should fail validation", name)
		}
	}
}

func TestBuildConfig_EmptyOutputName(t *testing.T) {
	cfg := BuildConfig{OutputName: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty output name should fail validation")
	}
}

func TestWatchConfig_DebounceBounds(t *testing.T) {
	cases := []struct {
		ms      int
		wantErr bool
	}{
		{10, true},
		{50, false},
		{500, false},
		{60000, false},
		{120000, true},
	}
	for _, tc := range cases {
		cfg := WatchConfig{DebounceMS: tc.ms}
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("debounce %d should fail validation", tc.ms)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("debounce %d should pass: %v", tc.ms, err)
		}
	}
}

func TestWatchConfig_DebounceDuration(t *testing.T) {
	cfg := WatchConfig{DebounceMS: 250}
	if got := cfg.Debounce(); got != 250*time.Millisecond {
		t.Errorf("debounce = %v, want 250ms", got)
	}
}

func TestFullConfig_ValidationPropagates(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Build.OutputName = "a/b.html"
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch the build error")
	}

	cfg = NewDefaultConfig()
	cfg.Watch.DebounceMS = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch the watch error")
	}
}
