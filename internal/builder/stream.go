package builder

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/jera/internal/metadata"
	"github.com/starford/jera/internal/reconcile"
	"github.com/starford/jera/internal/render"
	"github.com/starford/jera/internal/timeline"
)

// StreamResult is the outcome of building from a JSONL stream. Logs
// holds the non-record lines in input order; the CLI echoes them back
// to the user. An empty Path means the stream held no usable records.
type StreamResult struct {
	Path string
	Logs []string
}

// BuildStream renders one page from a --dump-json stream file. output
// defaults to the input path with its extension replaced by .html;
// attachments resolve against the output's directory.
func (b *Builder) BuildStream(path, output string) (StreamResult, error) {
	var res StreamResult

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("builder: open stream: %w", err)
	}
	defer f.Close()

	records, logs, err := metadata.ScanStream(f)
	if err != nil {
		return res, err
	}
	res.Logs = logs

	var entries []reconcile.Entry
	for _, rec := range records {
		if !rec.IsTwitter() {
			continue
		}
		entries = append(entries, reconcile.Entry{Source: path, Record: rec})
	}
	if len(entries) == 0 {
		return res, nil
	}

	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	}
	absOut, err := filepath.Abs(output)
	if err != nil {
		return res, fmt.Errorf("builder: resolve output: %w", err)
	}
	dir := filepath.Dir(absOut)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("builder: create output dir: %w", err)
	}

	items := reconcile.Fold(dir, entries, b.log)
	if len(items) == 0 {
		return res, nil
	}

	page := timeline.Assemble(streamLabel(entries[0].Record, absOut), items)
	doc, err := render.Timeline(page)
	if err != nil {
		return res, err
	}
	if err := writeFile(absOut, []byte(doc)); err != nil {
		return res, err
	}
	b.log.Info("builder: page written",
		slog.String("path", absOut),
		slog.Int("items", len(items)))

	res.Path = absOut
	return res, nil
}

// streamLabel picks the page heading for a stream build: the search
// expression that produced the dump, then the author, then the output
// filename.
func streamLabel(first metadata.Record, output string) string {
	if label := first.Str("search"); label != "" {
		return label
	}
	if label := first.Sub("user").Str("name"); label != "" {
		return label
	}
	base := filepath.Base(output)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
