package pompub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPartialOverridesSetFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Credentials.Username = "old"
	cfg.ProjectInfo.Name = "old-name"

	var p Partial
	p.Credentials.Username = "new"
	p.Signing.KeyID = "ABCD1234"

	out := applyPartial(cfg, p)

	assert.Equal(t, "new", out.Credentials.Username)
	assert.Equal(t, "ABCD1234", out.Signing.KeyID)
	// Fields the partial does not set keep the accumulator's value.
	assert.Equal(t, "old-name", out.ProjectInfo.Name)
	// The input is never mutated.
	assert.Equal(t, "old", cfg.Credentials.Username)
}

func TestApplyPartialExplicitFalseOverrides(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.Publishing.Aggregation)

	var explicit Partial
	explicit.Publishing.Aggregation = Bool(false)
	out := applyPartial(cfg, explicit)
	assert.False(t, out.Publishing.Aggregation)

	var silent Partial
	out = applyPartial(cfg, silent)
	assert.True(t, out.Publishing.Aggregation)
}

func TestApplyPartialReplacesListsWholesale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProjectInfo.Developers = []Developer{{ID: "alice"}, {ID: "bob"}}
	cfg.Publishing.Publications = []string{"maven"}

	var p Partial
	p.ProjectInfo.Developers = []Developer{{ID: "carol"}}
	p.Publishing.Publications = []string{"jvm", "js"}

	out := applyPartial(cfg, p)

	assert.Equal(t, []Developer{{ID: "carol"}}, out.ProjectInfo.Developers)
	assert.Equal(t, []string{"jvm", "js"}, out.Publishing.Publications)

	// An empty incoming list means "not set" and keeps the existing one.
	out = applyPartial(cfg, Partial{})
	assert.Len(t, out.ProjectInfo.Developers, 2)
}

func TestMergePartialLaterOverridesEarlier(t *testing.T) {
	var a, b Partial
	a.ProjectInfo.URL = "https://a.example"
	a.ProjectInfo.Description = "from a"
	b.ProjectInfo.URL = "https://b.example"
	b.Publishing.DryRun = Bool(true)

	out := mergePartial(a, b)

	assert.Equal(t, "https://b.example", out.ProjectInfo.URL)
	assert.Equal(t, "from a", out.ProjectInfo.Description)
	require.NotNil(t, out.Publishing.DryRun)
	assert.True(t, *out.Publishing.DryRun)
}

func TestMergePartialDetachesFromInputs(t *testing.T) {
	var a, b Partial
	a.ProjectInfo.Developers = []Developer{{ID: "alice"}}
	b.Publishing.AutoPublish = Bool(true)

	out := mergePartial(a, b)

	a.ProjectInfo.Developers[0].ID = "mutated"
	*b.Publishing.AutoPublish = false

	assert.Equal(t, "alice", out.ProjectInfo.Developers[0].ID)
	assert.True(t, *out.Publishing.AutoPublish)
}
