package pompub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubforge/pompub"
)

func TestBuilder(t *testing.T) {
	p := pompub.NewBuilder().
		Credentials("deploy", "hunter2").
		ProjectName("widget").
		Description("A widget library").
		ProjectURL("https://github.com/pubforge/widget").
		SCM("https://github.com/pubforge/widget", "", "").
		License("MIT License", "https://opensource.org/licenses/MIT", "repo").
		Developer(pompub.Developer{ID: "alice"}).
		Developer(pompub.Developer{ID: "bob"}).
		Signing("ABCD1234", "key-pass", "").
		AutoPublish(true).
		DryRun(false).
		Publications("maven", "kotlinMultiplatform").
		ExcludeModules("samples").
		Build()

	assert.Equal(t, "deploy", p.Credentials.Username)
	assert.Equal(t, "widget", p.ProjectInfo.Name)
	assert.Equal(t, "MIT License", p.ProjectInfo.License.Name)
	require.Len(t, p.ProjectInfo.Developers, 2)
	assert.Equal(t, "ABCD1234", p.Signing.KeyID)

	require.NotNil(t, p.Publishing.AutoPublish)
	assert.True(t, *p.Publishing.AutoPublish)
	// DryRun(false) is an explicit assignment, not an omission.
	require.NotNil(t, p.Publishing.DryRun)
	assert.False(t, *p.Publishing.DryRun)
	assert.Nil(t, p.Publishing.Aggregation)

	assert.Equal(t, []string{"maven", "kotlinMultiplatform"}, p.Publishing.Publications)
	assert.Equal(t, []string{"samples"}, p.Publishing.ExcludeModules)
}

func TestBuilderBuildDetaches(t *testing.T) {
	b := pompub.NewBuilder().Developer(pompub.Developer{ID: "alice"})
	first := b.Build()

	b.Developer(pompub.Developer{ID: "bob"}).ProjectName("widget")
	second := b.Build()

	assert.Len(t, first.ProjectInfo.Developers, 1)
	assert.Empty(t, first.ProjectInfo.Name)
	assert.Len(t, second.ProjectInfo.Developers, 2)
	assert.Equal(t, "widget", second.ProjectInfo.Name)
}

func TestBuilderExplicitFalseWinsInResolve(t *testing.T) {
	explicit := pompub.NewBuilder().
		ProjectName("widget").
		ValidationEnabled(true).
		Aggregation(false).
		Build()

	res := pompub.NewEngine().Resolve(pompub.ResolveRequest{Explicit: &explicit})
	assert.False(t, res.Config.Publishing.Aggregation)
}
