package analysis

import (
	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/chevrogo/resolve"
	"github.com/npillmayer/chevrogo/validate"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chevrogo.analysis'.
func tracer() tracing.Trace {
	return tracing.Select("chevrogo.analysis")
}

const defaultMaxLookahead = 5

// Config configures a single self-analysis run.
type Config struct {
	// MaxLookahead bounds the length of lookahead paths the lookahead
	// builder precomputes. Defaults to 5 if <= 0.
	MaxLookahead int
	// IgnoredIssues silences specific DUPLICATE_PRODUCTIONS / AMBIGUOUS_ALTS
	// findings; see gast.IgnoredIssues.
	IgnoredIssues gast.IgnoredIssues
	// DeferErrors, if true, makes Analyze return a non-nil Result (with
	// DefinitionErrs populated) even when definition errors were found,
	// instead of returning a fatal error. Follow/Lookahead are left nil
	// in that case, since they are only meaningful for a grammar that
	// resolved and validated cleanly.
	DeferErrors bool
}

// Result is the output of one self-analysis run, shared (via the
// process-wide cache) by every parser instance of the same grammar class.
type Result struct {
	ClassID        string
	Rules          map[string]*gast.Rule
	TopRule        string
	Overridden     map[string]bool
	Follow         *FollowTable
	Lookahead      *LookaheadTable
	DefinitionErrs []gast.DefinitionError
}

// Analyze runs (or, on repeat calls for the same classID, reuses) the
// self-analysis pipeline for a grammar class: clone → resolve → validate
// → FOLLOW → lookahead. The very first call for a given classID pays the
// cost; every later call — across every parser instance of that class —
// just returns the cached Result.
func Analyze(classID string, topRule string, defs []gast.RuleDef, cfg Config) (*Result, error) {
	e := entryFor(classID)
	checkConsistentRegistration(classID, e, topRule, defs)
	e.once.Do(func() {
		tracer().Debugf("analysis: first Analyze for class %q, running self-analysis", classID)
		e.result, e.err = doAnalyze(classID, topRule, defs, cfg)
	})
	if e.err != nil && !cfg.DeferErrors {
		return nil, e.err
	}
	return e.result, nil
}

func doAnalyze(classID, topRule string, defs []gast.RuleDef, cfg Config) (*Result, error) {
	k := cfg.MaxLookahead
	if k <= 0 {
		k = defaultMaxLookahead
	}

	cloned := make([]gast.RuleDef, len(defs))
	for i, d := range defs {
		cloned[i] = gast.RuleDef{Name: d.Name, Rule: d.Rule.Clone(), Override: d.Override}
	}

	rules, overridden, regErrs := validate.ValidateRegistration(cloned)
	var allErrs []gast.DefinitionError
	allErrs = append(allErrs, regErrs...)

	resErrs := resolve.Resolve(rules)
	allErrs = append(allErrs, resErrs...)

	if len(regErrs) == 0 && len(resErrs) == 0 {
		allErrs = append(allErrs, validate.ValidateGrammar(rules, k, cfg.IgnoredIssues)...)
	}

	result := &Result{
		ClassID:        classID,
		Rules:          rules,
		TopRule:        topRule,
		Overridden:     overridden,
		DefinitionErrs: allErrs,
	}

	if len(allErrs) == 0 {
		result.Follow = computeFollow(rules, topRule)
		result.Lookahead = buildLookahead(rules, k)
		return result, nil
	}

	tracer().Errorf("analysis: class %q has %d definition error(s)", classID, len(allErrs))
	return result, &AggregateError{Errs: allErrs}
}
