package pompub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.properties")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParsePropertiesFile(t *testing.T) {
	path := writeTestProperties(t, `
# deployment account
SONATYPE_USERNAME=deploy
SONATYPE_PASSWORD=hunter2

POM_NAME=widget
POM_DESCRIPTION=A widget library
POM_URL=https://github.com/pubforge/widget
POM_SCM_URL=https://github.com/pubforge/widget
POM_LICENCE_NAME=MIT License

signing.keyId=ABCD1234
autoPublish=true
dryRun=false
`)

	p, warnings, err := parsePropertiesFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "deploy", p.Credentials.Username)
	assert.Equal(t, "hunter2", p.Credentials.Password)
	assert.Equal(t, "widget", p.ProjectInfo.Name)
	assert.Equal(t, "A widget library", p.ProjectInfo.Description)
	assert.Equal(t, "https://github.com/pubforge/widget", p.ProjectInfo.URL)
	assert.Equal(t, "MIT License", p.ProjectInfo.License.Name)
	assert.Equal(t, "ABCD1234", p.Signing.KeyID)

	require.NotNil(t, p.Publishing.AutoPublish)
	assert.True(t, *p.Publishing.AutoPublish)
	// An explicit false is set, not absent.
	require.NotNil(t, p.Publishing.DryRun)
	assert.False(t, *p.Publishing.DryRun)
	assert.Nil(t, p.Publishing.Aggregation)
}

func TestParsePropertiesFileIgnoresUnmappedKeys(t *testing.T) {
	path := writeTestProperties(t, `
POM_NAME=widget
org.gradle.jvmargs=-Xmx2g
kotlin.code.style=official
`)

	p, warnings, err := parsePropertiesFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "widget", p.ProjectInfo.Name)
}

func TestParsePropertiesFileBlankValueIsUnset(t *testing.T) {
	path := writeTestProperties(t, "POM_NAME=\nPOM_DESCRIPTION=   \nSONATYPE_USERNAME=deploy\n")

	p, warnings, err := parsePropertiesFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, p.ProjectInfo.Name)
	assert.Empty(t, p.ProjectInfo.Description)
	assert.Equal(t, "deploy", p.Credentials.Username)
}

func TestParsePropertiesFileMalformedBool(t *testing.T) {
	path := writeTestProperties(t, "aggregation=yes please\nPOM_NAME=widget\n")

	p, warnings, err := parsePropertiesFile(path)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t, SourceProperties, warnings[0].Source)
	assert.Equal(t, "aggregation", warnings[0].Key)
	assert.Contains(t, warnings[0].Message, "invalid boolean")

	// The malformed field stays unset, the rest of the file still loads.
	assert.Nil(t, p.Publishing.Aggregation)
	assert.Equal(t, "widget", p.ProjectInfo.Name)
}

func TestParsePropertiesFileAssemblesDeveloper(t *testing.T) {
	path := writeTestProperties(t, `
POM_DEVELOPER_ID=alice
POM_DEVELOPER_NAME=Alice Example
POM_DEVELOPER_EMAIL=alice@example.com
POM_DEVELOPER_ORGANIZATION=Example Org
POM_DEVELOPER_ORGANIZATION_URL=https://example.com
`)

	p, warnings, err := parsePropertiesFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Len(t, p.ProjectInfo.Developers, 1)
	dev := p.ProjectInfo.Developers[0]
	assert.Equal(t, "alice", dev.ID)
	assert.Equal(t, "Alice Example", dev.Name)
	assert.Equal(t, "alice@example.com", dev.Email)
	assert.Equal(t, "Example Org", dev.Organization)
	assert.Equal(t, "https://example.com", dev.OrganizationURL)
}

func TestParsePropertiesFileNoDeveloperKeys(t *testing.T) {
	path := writeTestProperties(t, "POM_NAME=widget\n")

	p, _, err := parsePropertiesFile(path)
	require.NoError(t, err)
	assert.Nil(t, p.ProjectInfo.Developers)
}

func TestParsePropertiesFileDuplicateKeyLastWins(t *testing.T) {
	path := writeTestProperties(t, "POM_NAME=first\nPOM_NAME=second\n")

	p, _, err := parsePropertiesFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", p.ProjectInfo.Name)
}

func TestParsePropertiesFileMissing(t *testing.T) {
	_, _, err := parsePropertiesFile(filepath.Join(t.TempDir(), "nope.properties"))
	require.Error(t, err)
}
