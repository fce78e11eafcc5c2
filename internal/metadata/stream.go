package metadata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxStreamLine caps scanner tokens. Dump lines carry whole post
// objects with media descriptors, far past bufio's default.
const maxStreamLine = 16 << 20

// ScanStream splits a gallery-dl --dump-json stream into metadata
// records and interleaved console log lines, keeping log order. Lines
// that decode to a bare JSON string become logs in their decoded form;
// lines that decode to any other non-object value are dropped.
func ScanStream(r io.Reader) (records []Record, logs []string, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxStreamLine)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if looksLikeLog(line) {
			logs = append(logs, line)
			continue
		}
		v, ok := decodeValue([]byte(line))
		if !ok {
			logs = append(logs, line)
			continue
		}
		switch val := v.(type) {
		case map[string]any:
			records = append(records, Record(val))
		case string:
			logs = append(logs, val)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("metadata: scan stream: %w", err)
	}
	return records, logs, nil
}

// looksLikeLog classifies downloader console output: a [tag] prefix
// ending in a closing paren or containing a closing bracket. This is
// best-effort; a line that fails JSON decoding is logged anyway.
func looksLikeLog(line string) bool {
	if !strings.HasPrefix(line, "[") {
		return false
	}
	return strings.HasSuffix(line, ")") || strings.Contains(line, "]")
}
