package metadata

import (
	"strings"
	"testing"
)

func TestScanStream_MixedLinesKeepOrder(t *testing.T) {
	input := strings.Join([]string{
		"[twitter][info] starting extraction (user timeline)",
		"",
		`{"category":"twitter","tweet_id":42,"content":"hello"}`,
		`"downloaded 1 file"`,
		"{invalid json",
	}, "\n")

	records, logs, err := ScanStream(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if got := records[0].Str("tweet_id"); got != "42" {
		t.Errorf("tweet_id = %q, want %q", got, "42")
	}

	want := []string{
		"[twitter][info] starting extraction (user timeline)",
		"downloaded 1 file",
		"{invalid json",
	}
	if len(logs) != len(want) {
		t.Fatalf("logs = %v, want %v", logs, want)
	}
	for i := range want {
		if logs[i] != want[i] {
			t.Errorf("logs[%d] = %q, want %q", i, logs[i], want[i])
		}
	}
}

func TestScanStream_BracketedLineIsLogEvenWhenJSON(t *testing.T) {
	records, logs, err := ScanStream(strings.NewReader(`["gallery-dl","1.27"]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
	if len(logs) != 1 || logs[0] != `["gallery-dl","1.27"]` {
		t.Errorf("logs = %v, want the raw line", logs)
	}
}

func TestScanStream_NonObjectValuesDropped(t *testing.T) {
	records, logs, err := ScanStream(strings.NewReader("42\ntrue\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 || len(logs) != 0 {
		t.Errorf("records = %v, logs = %v, want both empty", records, logs)
	}
}

func TestScanStream_Empty(t *testing.T) {
	records, logs, err := ScanStream(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 || len(logs) != 0 {
		t.Errorf("records = %v, logs = %v, want both empty", records, logs)
	}
}
