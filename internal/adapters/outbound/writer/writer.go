// Package writer materializes rendered artifacts onto the filesystem.
package writer

import (
	"os"
	"path/filepath"

	"github.com/modgen/modgen/internal/domain"
)

// FileWriter implements domain.Materializer under a fixed output root.
// Directory creation is idempotent; existing files are overwritten in full.
// Overwriting is deliberate regenerate-from-scratch policy, so re-running a
// generation discards any manual edits to the generated files.
type FileWriter struct {
	root string
}

// New creates a FileWriter rooted at outputRoot (created on first write).
func New(outputRoot string) *FileWriter {
	return &FileWriter{root: outputRoot}
}

// Materialize writes each artifact in input order, fail-fast. On error the
// report returned covers the files written before the failure; nothing is
// rolled back.
func (w *FileWriter) Materialize(artifacts []domain.GeneratedArtifact) (domain.GenerationReport, error) {
	report := make(domain.GenerationReport, 0, len(artifacts))
	created := make(map[string]bool)

	for _, a := range artifacts {
		target := filepath.Join(w.root, filepath.FromSlash(a.RelPath))

		dir := filepath.Dir(target)
		if !created[dir] {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return report, &domain.FilesystemError{Op: "mkdir", Path: dir, Err: err}
			}
			created[dir] = true
		}

		if err := os.WriteFile(target, []byte(a.Content), 0644); err != nil {
			return report, &domain.FilesystemError{Op: "write", Path: target, Err: err}
		}

		report = append(report, domain.ReportEntry{
			RelPath:  a.RelPath,
			ByteSize: len(a.Content), // byte length, not code points
		})
	}

	return report, nil
}
