package gen

import (
	"os"
	"path/filepath"
)

// Writer writes rendered artifacts to disk.
type Writer struct {
	cfg     *Config
	metrics *WriterMetrics
}

// WriterMetrics tracks what a Writer produced.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewWriter creates a new artifact writer.
func NewWriter(cfg *Config) *Writer {
	if cfg == nil {
		cfg = &Config{Root: DefaultRoot}
	}
	return &Writer{cfg: cfg, metrics: &WriterMetrics{}}
}

// Metrics returns the generation metrics.
func (w *Writer) Metrics() *WriterMetrics {
	return w.metrics
}

// Write creates the artifact directories and then overwrites each file.
// It returns the written paths in order. In dry-run mode nothing is
// touched and the paths are returned as they would have been written.
func (w *Writer) Write(a *Artifacts) ([]string, error) {
	log := w.cfg.Log()
	all := a.All()
	paths := make([]string, 0, len(all))
	if w.cfg.DryRun {
		for _, f := range all {
			log.Debug("dry run, skipping write", "path", f.Path, "bytes", len(f.Content))
			paths = append(paths, f.Path)
		}
		return paths, nil
	}
	// Directories first, so a failure here leaves no file behind.
	for _, f := range all {
		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
			return nil, NewGenerationError("write", f.Path, "create directory", err)
		}
	}
	for _, f := range all {
		if err := os.WriteFile(f.Path, f.Content, 0o644); err != nil {
			return paths, NewGenerationError("write", f.Path, "write file", err)
		}
		w.metrics.FilesGenerated++
		w.metrics.TotalBytes += int64(len(f.Content))
		log.Debug("artifact written", "path", f.Path, "bytes", len(f.Content))
		paths = append(paths, f.Path)
	}
	return paths, nil
}
