package pompub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubforge/pompub"
)

func TestSourcePrecedenceOrder(t *testing.T) {
	ordered := []pompub.Source{
		pompub.SourceDefaults,
		pompub.SourceSmartDefaults,
		pompub.SourceAutoDetected,
		pompub.SourceEnvironment,
		pompub.SourceProperties,
		pompub.SourceDSL,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
}

func TestSourceStringRoundTrip(t *testing.T) {
	for s := pompub.SourceDefaults; s <= pompub.SourceDSL; s++ {
		parsed, err := pompub.ParseSource(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := pompub.ParseSource("carrier-pigeon")
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := pompub.DefaultConfig()

	assert.True(t, cfg.Publishing.Aggregation)
	assert.False(t, cfg.Publishing.AutoPublish)
	assert.False(t, cfg.Publishing.DryRun)
	assert.True(t, cfg.Validation.Enabled)
	assert.False(t, cfg.Validation.RequireCredentials)
	assert.True(t, cfg.AutoDetection.Enabled)
	assert.Equal(t, pompub.SchemaVersion, cfg.Metadata.SchemaVersion)
	assert.Empty(t, cfg.Credentials.Username)
	assert.Empty(t, cfg.ProjectInfo.Name)
}

func TestPartialIsEmpty(t *testing.T) {
	assert.True(t, pompub.Partial{}.IsEmpty())

	var withString pompub.Partial
	withString.ProjectInfo.Name = "widget"
	assert.False(t, withString.IsEmpty())

	// An explicit false is a set field.
	var withBool pompub.Partial
	withBool.Publishing.AutoPublish = pompub.Bool(false)
	assert.False(t, withBool.IsEmpty())

	var withList pompub.Partial
	withList.ProjectInfo.Developers = []pompub.Developer{{ID: "alice"}}
	assert.False(t, withList.IsEmpty())
}

func TestPartialClone(t *testing.T) {
	var p pompub.Partial
	p.ProjectInfo.Developers = []pompub.Developer{{ID: "alice"}}
	p.Publishing.Publications = []string{"maven"}
	p.Publishing.DryRun = pompub.Bool(true)

	c := p.Clone()
	p.ProjectInfo.Developers[0].ID = "mutated"
	p.Publishing.Publications[0] = "mutated"
	*p.Publishing.DryRun = false

	assert.Equal(t, "alice", c.ProjectInfo.Developers[0].ID)
	assert.Equal(t, "maven", c.Publishing.Publications[0])
	assert.True(t, *c.Publishing.DryRun)
}

func TestConfigValue(t *testing.T) {
	cfg := pompub.DefaultConfig()
	cfg.Credentials.Username = "deploy"
	cfg.ProjectInfo.Developers = []pompub.Developer{{ID: "alice"}}

	v, ok := cfg.Value(pompub.PathCredentialsUsername)
	require.True(t, ok)
	assert.Equal(t, "deploy", v)

	v, ok = cfg.Value(pompub.PathAggregation)
	require.True(t, ok)
	assert.Equal(t, true, v)

	v, ok = cfg.Value(pompub.PathDevelopers)
	require.True(t, ok)
	assert.Equal(t, []pompub.Developer{{ID: "alice"}}, v)

	_, ok = cfg.Value("no.such.path")
	assert.False(t, ok)
}

func TestConfigValueCoversEveryFieldPath(t *testing.T) {
	cfg := pompub.DefaultConfig()
	for _, path := range pompub.FieldPaths() {
		_, ok := cfg.Value(path)
		assert.True(t, ok, path)
	}
}

func TestRedactValue(t *testing.T) {
	assert.Equal(t, pompub.Redacted, pompub.RedactValue(pompub.PathCredentialsPassword, "hunter2"))
	assert.Equal(t, pompub.Redacted, pompub.RedactValue(pompub.PathSigningPass, "key-pass"))
	// Empty secrets stay visibly empty.
	assert.Equal(t, "", pompub.RedactValue(pompub.PathCredentialsPassword, ""))
	assert.Equal(t, "deploy", pompub.RedactValue(pompub.PathCredentialsUsername, "deploy"))
}

func TestDeveloperIsZero(t *testing.T) {
	assert.True(t, pompub.Developer{}.IsZero())
	assert.False(t, pompub.Developer{Email: "alice@example.com"}.IsZero())
}
