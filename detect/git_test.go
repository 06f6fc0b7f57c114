package detect_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubforge/pompub"
	"github.com/pubforge/pompub/detect"
)

func writeGitConfig(t *testing.T, remote string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	content := fmt.Sprintf(`[core]
	repositoryformatversion = 0
[remote "origin"]
	url = %s
	fetch = +refs/heads/*:refs/remotes/origin/*
[remote "upstream"]
	url = https://example.com/other/repo.git
`, remote)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "config"), []byte(content), 0o644))
	return dir
}

func TestGitRemoteDetect(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		want   string
	}{
		{"https", "https://github.com/pubforge/widget.git", "https://github.com/pubforge/widget"},
		{"https no suffix", "https://github.com/pubforge/widget", "https://github.com/pubforge/widget"},
		{"ssh", "ssh://git@github.com/pubforge/widget.git", "https://github.com/pubforge/widget"},
		{"scp like", "git@github.com:pubforge/widget.git", "https://github.com/pubforge/widget"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeGitConfig(t, tt.remote)

			p, err := detect.GitRemote{}.Detect(pompub.ProjectContext{Dir: dir})
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.ProjectInfo.URL)
			assert.Equal(t, tt.want, p.ProjectInfo.SCM.URL)
		})
	}
}

func TestGitRemoteDetectUnsupportedRemote(t *testing.T) {
	dir := writeGitConfig(t, "/srv/git/widget.git")

	p, err := detect.GitRemote{}.Detect(pompub.ProjectContext{Dir: dir})
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestGitRemoteDetectNoCheckout(t *testing.T) {
	p, err := detect.GitRemote{}.Detect(pompub.ProjectContext{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestGitRemoteDetectNoProjectDir(t *testing.T) {
	p, err := detect.GitRemote{}.Detect(pompub.ProjectContext{})
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}
