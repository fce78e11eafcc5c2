// Package builder discovers sidecar records on disk and writes one
// timeline page per directory that yields items.
package builder

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/starford/jera/internal/metadata"
	"github.com/starford/jera/internal/reconcile"
	"github.com/starford/jera/internal/render"
	"github.com/starford/jera/internal/timeline"
)

// DefaultOutputName is the page filename written into each directory.
const DefaultOutputName = "index.html"

// Options configure a Builder.
type Options struct {
	Recursive  bool   // descend into subdirectories
	Overwrite  bool   // replace existing pages
	OutputName string // page filename, DefaultOutputName when empty
}

// Builder turns directories of sidecar files into offline pages.
type Builder struct {
	log        *slog.Logger
	recursive  bool
	overwrite  bool
	outputName string
}

// New creates a Builder.
func New(logger *slog.Logger, opts Options) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	name := opts.OutputName
	if name == "" {
		name = DefaultOutputName
	}
	return &Builder{
		log:        logger,
		recursive:  opts.Recursive,
		overwrite:  opts.Overwrite,
		outputName: name,
	}
}

// BuildAll walks root, groups qualifying records by containing
// directory, and builds one page per directory. It returns the paths
// of every page written or kept, in directory order. A root with no
// qualifying records returns an empty slice and no error; a root that
// cannot be read is an error.
func (b *Builder) BuildAll(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("builder: resolve root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("builder: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("builder: root is not a directory: %s", absRoot)
	}

	grouped, err := b.collect(absRoot)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(grouped))
	for dir := range grouped {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var created []string
	for _, dir := range dirs {
		path, err := b.buildDir(dir, grouped[dir])
		if err != nil {
			return nil, err
		}
		if path != "" {
			created = append(created, path)
		}
	}
	return created, nil
}

// collect loads every .json sidecar under root that holds a twitter
// record, grouped by containing directory.
func (b *Builder) collect(root string) (map[string][]reconcile.Entry, error) {
	grouped := make(map[string][]reconcile.Entry)

	add := func(path string) {
		rec, ok := metadata.Load(path)
		if !ok || !rec.IsTwitter() {
			return
		}
		dir := filepath.Dir(path)
		grouped[dir] = append(grouped[dir], reconcile.Entry{Source: path, Record: rec})
	}

	if !b.recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("builder: read root: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
				continue
			}
			add(filepath.Join(root, e.Name()))
		}
		return grouped, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		add(path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("builder: walk %s: %w", root, err)
	}
	return grouped, nil
}

// buildDir builds the page for one directory. An empty path with nil
// error means the directory's records yielded no items. When the page
// already exists and overwriting is disabled, the existing path is
// returned untouched.
func (b *Builder) buildDir(dir string, entries []reconcile.Entry) (string, error) {
	items := reconcile.Fold(dir, entries, b.log)
	if len(items) == 0 {
		return "", nil
	}

	out := filepath.Join(dir, b.outputName)
	if !b.overwrite {
		if _, err := os.Stat(out); err == nil {
			b.log.Debug("builder: keeping existing page", slog.String("path", out))
			return out, nil
		}
	}

	page := timeline.Assemble(filepath.Base(dir), items)
	doc, err := render.Timeline(page)
	if err != nil {
		return "", err
	}
	if err := writeFile(out, []byte(doc)); err != nil {
		return "", err
	}
	b.log.Info("builder: page written",
		slog.String("path", out),
		slog.Int("items", len(items)))
	return out, nil
}

// writeFile writes content atomically: temp file in the destination
// directory, fsync, rename.
func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jera-tmp-*")
	if err != nil {
		return fmt.Errorf("builder: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("builder: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("builder: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("builder: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("builder: rename: %w", err)
	}
	success = true
	return nil
}
