package resolve

import (
	"testing"

	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestResolveBindsNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.resolve")
	defer teardown()

	numRule := gast.NewRule("num", "", gast.T(1, 1))
	topRule := gast.NewRule("top", "", gast.N(1, "num"))
	rules := map[string]*gast.Rule{"top": topRule, "num": numRule}

	errs := Resolve(rules)
	assert.Empty(t, errs)

	nt := topRule.Definition[0].(*gast.NonTerminal)
	assert.Same(t, numRule, nt.ResolvedRuleRef)
}

func TestResolveReportsUnresolved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.resolve")
	defer teardown()

	topRule := gast.NewRule("top", "", gast.N(1, "missing"))
	rules := map[string]*gast.Rule{"top": topRule}

	errs := Resolve(rules)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, gast.UnresolvedSubruleRef, errs[0].Kind)
		assert.Equal(t, "top", errs[0].RuleName)
	}
}
