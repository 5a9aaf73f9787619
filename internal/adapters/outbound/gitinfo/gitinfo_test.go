package gitinfo_test

import (
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modgen/modgen/internal/adapters/outbound/gitinfo"
)

func TestIsGitRepo_FalseForPlainDirectory(t *testing.T) {
	adapter := gitinfo.New()
	assert.False(t, adapter.IsGitRepo(t.TempDir()))
}

func TestIsGitRepo_TrueAfterInit(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	assert.True(t, gitinfo.New().IsGitRepo(dir))
}

func TestCommitHash_ErrorsOutsideRepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}

func TestCommitHash_ErrorsWithoutCommits(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	// Fresh repo has no HEAD yet.
	_, err = gitinfo.New().CommitHash(dir)
	assert.Error(t, err)
}
