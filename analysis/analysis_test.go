package analysis

import (
	"testing"

	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tNUM chevrogo.TokType = iota + 1
	tLBRACK
	tRBRACK
	tCOMMA
)

type arrayGrammar struct{}

func arrayDefs() []gast.RuleDef {
	array := gast.NewRule("array", "array := '[' (NUM (',' NUM)*)? ']'",
		gast.T(1, tLBRACK),
		gast.Opt(1, gast.T(2, tNUM), gast.Rep(1, gast.T(3, tCOMMA), gast.T(4, tNUM))),
		gast.T(5, tRBRACK),
	)
	return []gast.RuleDef{{Name: "array", Rule: array}}
}

func TestAnalyzeSuccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.analysis")
	defer teardown()

	classID := ClassID(arrayGrammar{})
	res, err := Analyze(classID, "array", arrayDefs(), Config{MaxLookahead: 2})
	require.NoError(t, err)
	require.NotNil(t, res.Follow)
	require.NotNil(t, res.Lookahead)
	assert.True(t, res.Follow.EOF().Contains(chevrogo.EOFType))

	entry := res.Lookahead.Entry(gast.OptionKind, 1, "array")
	require.NotNil(t, entry)
	found := false
	for _, p := range entry.Paths {
		if len(p) >= 1 && p[0] == tNUM {
			found = true
		}
	}
	assert.True(t, found)
}

type dupRuleGrammar struct{}

func TestAnalyzeReturnsAggregateError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.analysis")
	defer teardown()

	classID := ClassID(dupRuleGrammar{})
	defs := []gast.RuleDef{
		{Name: "foo", Rule: gast.NewRule("foo", "", gast.T(1, tNUM))},
		{Name: "foo", Rule: gast.NewRule("foo", "", gast.T(1, tNUM))},
	}
	_, err := Analyze(classID, "foo", defs, Config{})
	require.Error(t, err)
	var agg *AggregateError
	require.ErrorAs(t, err, &agg)
	assert.Equal(t, gast.DuplicateRuleName, agg.Errs[0].Kind)
}

func TestClassIDRejectsAnonymous(t *testing.T) {
	assert.Panics(t, func() {
		ClassID(struct{}{})
	})
}

type cachedGrammar struct{}

func TestAnalyzeCachesAcrossCalls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.analysis")
	defer teardown()

	classID := ClassID(cachedGrammar{})
	defs := arrayDefsNamed("array2")
	res1, err := Analyze(classID, "array2", defs, Config{})
	require.NoError(t, err)
	res2, err := Analyze(classID, "array2", defs, Config{})
	require.NoError(t, err)
	assert.Same(t, res1, res2)
}

func arrayDefsNamed(name string) []gast.RuleDef {
	r := gast.NewRule(name, "", gast.T(1, tNUM))
	return []gast.RuleDef{{Name: name, Rule: r}}
}
