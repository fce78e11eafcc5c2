package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config     *Config
	directory  string
	streamPath string
	outputPath string
	watch      bool
	stdout     io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithDirectory sets the root directory scanned for sidecar files.
// Empty means the current directory.
func WithDirectory(dir string) Option {
	return func(a *application) {
		a.directory = dir
	}
}

// WithStream switches to stream mode, building one page from the
// given --dump-json file instead of scanning a directory tree.
func WithStream(path string) Option {
	return func(a *application) {
		a.streamPath = path
	}
}

// WithOutput overrides the output path in stream mode.
func WithOutput(path string) Option {
	return func(a *application) {
		a.outputPath = path
	}
}

// WithWatch keeps the process running, rebuilding pages when sidecar
// files change.
func WithWatch(watch bool) Option {
	return func(a *application) {
		a.watch = watch
	}
}

// WithStdout redirects result output; tests use this to capture it.
func WithStdout(w io.Writer) Option {
	return func(a *application) {
		a.stdout = w
	}
}
