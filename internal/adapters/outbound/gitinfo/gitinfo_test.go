package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/seokraft/seokraft/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGitRepo(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")

	gi := gitinfo.New()
	assert.True(t, gi.IsGitRepo(dir))
}

func TestIsGitRepo_PlainDirectory(t *testing.T) {
	gi := gitinfo.New()
	assert.False(t, gi.IsGitRepo(t.TempDir()))
}

func TestIsGitRepo_NestedContentDir(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	nested := filepath.Join(dir, "content", "pages")
	require.NoError(t, os.MkdirAll(nested, 0755))

	gi := gitinfo.New()
	assert.True(t, gi.IsGitRepo(nested))
}

func TestCommitHash(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	f := filepath.Join(dir, "home.seo.yaml")
	require.NoError(t, os.WriteFile(f, []byte("title: Home\n"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "add page metadata")

	gi := gitinfo.New()
	hash, err := gi.CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
}

func TestCommitHash_NotGitRepo(t *testing.T) {
	gi := gitinfo.New()
	_, err := gi.CommitHash(t.TempDir())
	assert.Error(t, err)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
