package pompub

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmartDefaultsRequireProjectContext(t *testing.T) {
	p := loadSmartDefaults(DefaultConfig(), ProjectContext{})
	assert.True(t, p.IsEmpty())
}

func TestSmartDefaultsProjectNameFromDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "widget")
	p := loadSmartDefaults(DefaultConfig(), ProjectContext{Dir: dir})
	assert.Equal(t, "widget", p.ProjectInfo.Name)

	merged := DefaultConfig()
	merged.ProjectInfo.Name = "explicit"
	p = loadSmartDefaults(merged, ProjectContext{Dir: dir})
	assert.Empty(t, p.ProjectInfo.Name)
}

func TestSmartDefaultsLicense(t *testing.T) {
	proj := ProjectContext{Dir: t.TempDir()}

	p := loadSmartDefaults(DefaultConfig(), proj)
	assert.Equal(t, defaultLicenseName, p.ProjectInfo.License.Name)
	assert.Equal(t, defaultLicenseURL, p.ProjectInfo.License.URL)
	assert.Equal(t, defaultLicenseDist, p.ProjectInfo.License.Distribution)

	// Any pre-existing license field suppresses the whole fallback triple.
	merged := DefaultConfig()
	merged.ProjectInfo.License.Name = "MIT License"
	p = loadSmartDefaults(merged, proj)
	assert.Empty(t, p.ProjectInfo.License.Name)
	assert.Empty(t, p.ProjectInfo.License.URL)
}

func TestSmartDefaultsSCMConnections(t *testing.T) {
	proj := ProjectContext{Dir: t.TempDir()}

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"bare", "https://github.com/pubforge/widget", "scm:git:https://github.com/pubforge/widget.git"},
		{"dot git", "https://github.com/pubforge/widget.git", "scm:git:https://github.com/pubforge/widget.git"},
		{"trailing slash", "https://github.com/pubforge/widget/", "scm:git:https://github.com/pubforge/widget.git"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := DefaultConfig()
			merged.ProjectInfo.SCM.URL = tt.url

			p := loadSmartDefaults(merged, proj)
			assert.Equal(t, tt.want, p.ProjectInfo.SCM.Connection)
			assert.Equal(t, tt.want, p.ProjectInfo.SCM.DeveloperConnection)
		})
	}
}

func TestSmartDefaultsSCMConnectionsKeepExisting(t *testing.T) {
	merged := DefaultConfig()
	merged.ProjectInfo.SCM.URL = "https://github.com/pubforge/widget"
	merged.ProjectInfo.SCM.Connection = "scm:git:custom"

	p := loadSmartDefaults(merged, ProjectContext{Dir: t.TempDir()})
	assert.Empty(t, p.ProjectInfo.SCM.Connection)
	assert.NotEmpty(t, p.ProjectInfo.SCM.DeveloperConnection)
}

func TestSmartDefaultsKeyringOnlyWithKeyID(t *testing.T) {
	proj := ProjectContext{Dir: t.TempDir()}

	p := loadSmartDefaults(DefaultConfig(), proj)
	assert.Empty(t, p.Signing.SecretKeyRingFile)

	merged := DefaultConfig()
	merged.Signing.KeyID = "ABCD1234"
	p = loadSmartDefaults(merged, proj)
	assert.Contains(t, p.Signing.SecretKeyRingFile, "secring.gpg")

	// Never defaults secret material.
	assert.Empty(t, p.Signing.Password)
	assert.Empty(t, p.Credentials.Username)
	assert.Empty(t, p.Credentials.Password)
}
