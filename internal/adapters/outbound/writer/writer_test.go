package writer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modgen/modgen/internal/adapters/outbound/writer"
	"github.com/modgen/modgen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize_WritesFilesInOrder(t *testing.T) {
	root := t.TempDir()
	w := writer.New(root)

	artifacts := []domain.GeneratedArtifact{
		{Kind: domain.KindRoute, RelPath: "modules/user/user.route.ts", Content: "route"},
		{Kind: domain.KindController, RelPath: "modules/user/user.controller.ts", Content: "controller"},
	}

	report, err := w.Materialize(artifacts)
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, "modules/user/user.route.ts", report[0].RelPath)
	assert.Equal(t, len("route"), report[0].ByteSize)
	assert.Equal(t, "modules/user/user.controller.ts", report[1].RelPath)

	data, err := os.ReadFile(filepath.Join(root, "modules", "user", "user.route.ts"))
	require.NoError(t, err)
	assert.Equal(t, "route", string(data))
}

func TestMaterialize_ByteSizeIsEncodingAware(t *testing.T) {
	root := t.TempDir()
	w := writer.New(root)

	// "héllo" is 5 code points but 6 bytes in UTF-8.
	report, err := w.Materialize([]domain.GeneratedArtifact{
		{Kind: domain.KindModel, RelPath: "modules/user/user.model.ts", Content: "héllo"},
	})
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, 6, report[0].ByteSize)
}

func TestMaterialize_IdempotentDirectories(t *testing.T) {
	root := t.TempDir()
	w := writer.New(root)

	artifacts := []domain.GeneratedArtifact{
		{Kind: domain.KindRoute, RelPath: "modules/user/user.route.ts", Content: "v1"},
	}

	_, err := w.Materialize(artifacts)
	require.NoError(t, err)

	// Re-running against the existing directory tree must not error.
	_, err = w.Materialize(artifacts)
	require.NoError(t, err)
}

func TestMaterialize_OverwriteReplacesContentFully(t *testing.T) {
	root := t.TempDir()
	w := writer.New(root)

	long := []domain.GeneratedArtifact{
		{Kind: domain.KindRoute, RelPath: "modules/user/user.route.ts", Content: "a much longer first version of the file"},
	}
	short := []domain.GeneratedArtifact{
		{Kind: domain.KindRoute, RelPath: "modules/user/user.route.ts", Content: "short"},
	}

	_, err := w.Materialize(long)
	require.NoError(t, err)

	report, err := w.Materialize(short)
	require.NoError(t, err)
	assert.Equal(t, len("short"), report[0].ByteSize)

	// No residual bytes from the first write may survive.
	data, err := os.ReadFile(filepath.Join(root, "modules", "user", "user.route.ts"))
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestMaterialize_FailFastKeepsPartialReport(t *testing.T) {
	root := t.TempDir()
	w := writer.New(root)

	// A regular file where the second artifact needs a directory forces the
	// mkdir to fail after the first artifact is already on disk.
	require.NoError(t, os.WriteFile(filepath.Join(root, "blocked"), []byte("file"), 0644))

	artifacts := []domain.GeneratedArtifact{
		{Kind: domain.KindRoute, RelPath: "modules/user/user.route.ts", Content: "route"},
		{Kind: domain.KindController, RelPath: "blocked/user.controller.ts", Content: "controller"},
		{Kind: domain.KindModel, RelPath: "modules/user/user.model.ts", Content: "model"},
	}

	report, err := w.Materialize(artifacts)
	require.Error(t, err)

	var fsErr *domain.FilesystemError
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, "mkdir", fsErr.Op)

	// The partial report names exactly the file written before the failure.
	require.Len(t, report, 1)
	assert.Equal(t, "modules/user/user.route.ts", report[0].RelPath)

	// Fail-fast: the third artifact was never written.
	_, statErr := os.Stat(filepath.Join(root, "modules", "user", "user.model.ts"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMaterialize_Empty(t *testing.T) {
	w := writer.New(t.TempDir())

	report, err := w.Materialize(nil)
	require.NoError(t, err)
	assert.Empty(t, report)
}
