package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(StageDef{Domain: "first"})
	Register(StageDef{Domain: "second"})
	Register(StageDef{Domain: "third"})

	stages := Stages()
	require.Len(t, stages, 3)
	assert.Equal(t, "first", stages[0].Domain)
	assert.Equal(t, "second", stages[1].Domain)
	assert.Equal(t, "third", stages[2].Domain)
	assert.Equal(t, 3, Count())
}

func TestRegistryKindLookup(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(StageDef{
		Domain: "weight",
		Kinds: []KindDef{
			{Kind: "null_weight", Description: "weight missing", Severity: SeverityCritical},
		},
	})

	k, ok := LookupKind("null_weight")
	require.True(t, ok)
	assert.Equal(t, SeverityCritical, k.Severity)
	assert.Equal(t, "weight missing", k.Description)

	_, ok = LookupKind("no_such_kind")
	assert.False(t, ok)

	stage, ok := StageByDomain("weight")
	require.True(t, ok)
	assert.Len(t, stage.Kinds, 1)

	_, ok = StageByDomain("no_such_domain")
	assert.False(t, ok)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "critical", SeverityCritical.String())
	assert.Equal(t, "advisory", SeverityAdvisory.String())
	assert.Equal(t, "unknown", Severity(99).String())
}

func TestParseSeverity(t *testing.T) {
	s, ok := ParseSeverity("critical")
	assert.True(t, ok)
	assert.Equal(t, SeverityCritical, s)

	s, ok = ParseSeverity("advisory")
	assert.True(t, ok)
	assert.Equal(t, SeverityAdvisory, s)

	_, ok = ParseSeverity("fatal")
	assert.False(t, ok)
}
