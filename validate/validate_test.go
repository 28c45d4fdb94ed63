package validate

import (
	"testing"

	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/chevrogo/resolve"
	"github.com/stretchr/testify/assert"
)

const (
	tA chevrogo.TokType = iota + 1
	tB
)

func TestValidateRegistrationInvalidName(t *testing.T) {
	defs := []gast.RuleDef{{Name: "1bad", Rule: gast.NewRule("1bad", "")}}
	_, _, errs := ValidateRegistration(defs)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, gast.InvalidRuleName, errs[0].Kind)
	}
}

func TestValidateRegistrationDuplicate(t *testing.T) {
	defs := []gast.RuleDef{
		{Name: "foo", Rule: gast.NewRule("foo", "", gast.T(1, tA))},
		{Name: "foo", Rule: gast.NewRule("foo", "", gast.T(1, tB))},
	}
	rules, _, errs := ValidateRegistration(defs)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, gast.DuplicateRuleName, errs[0].Kind)
	}
	assert.Len(t, rules, 1)
}

func TestValidateRegistrationInvalidOverride(t *testing.T) {
	defs := []gast.RuleDef{{Name: "foo", Rule: gast.NewRule("foo", ""), Override: true}}
	_, _, errs := ValidateRegistration(defs)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, gast.InvalidRuleOverride, errs[0].Kind)
	}
}

func TestCheckDuplicateProductions(t *testing.T) {
	r := gast.NewRule("foo", "", gast.T(1, tA), gast.T(1, tB))
	errs := checkDuplicateProductions("foo", r, nil)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, gast.DuplicateProductions, errs[0].Kind)
	}
}

func TestCheckDuplicateProductionsIgnored(t *testing.T) {
	r := gast.NewRule("foo", "", gast.T(1, tA), gast.T(1, tB))
	ignored := gast.IgnoredIssues{"foo": {"CONSUME:1": true}}
	errs := checkDuplicateProductions("foo", r, ignored)
	assert.Empty(t, errs)
}

func TestCheckNoneLastEmptyAlt(t *testing.T) {
	r := gast.NewRule("foo", "", gast.Alt(1, gast.Seq(), gast.Seq(gast.T(1, tA))))
	errs := checkNoneLastEmptyAlt("foo", r)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, gast.NoneLastEmptyAlt, errs[0].Kind)
	}
}

func TestCheckAmbiguousAlts(t *testing.T) {
	r := gast.NewRule("foo", "", gast.Alt(1, gast.Seq(gast.T(1, tA)), gast.Seq(gast.T(2, tA))))
	errs := checkAmbiguousAlts("foo", r, 1, nil)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, gast.AmbiguousAlts, errs[0].Kind)
		assert.Equal(t, []int{1, 2}, errs[0].Alternatives)
	}
}

func TestCheckLeftRecursion(t *testing.T) {
	// expr := expr a | a   (direct left recursion)
	expr := gast.NewRule("expr", "", gast.Alt(1,
		gast.Seq(gast.N(1, "expr"), gast.T(1, tA)),
		gast.Seq(gast.T(2, tA)),
	))
	rules := map[string]*gast.Rule{"expr": expr}
	resolve.Resolve(rules)
	errs := checkLeftRecursion(rules)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, gast.LeftRecursion, errs[0].Kind)
		assert.Equal(t, "expr", errs[0].RuleName)
	}
}

func TestValidateGrammarSkipsUnresolved(t *testing.T) {
	r := gast.NewRule("foo", "", gast.N(1, "missing"))
	rules := map[string]*gast.Rule{"foo": r}
	errs := ValidateGrammar(rules, 2, nil)
	assert.Empty(t, errs)
}
