package resolve

import (
	"fmt"

	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chevrogo.resolve'.
func tracer() tracing.Trace {
	return tracing.Select("chevrogo.resolve")
}

// resolveVisitor walks a rule and binds every NonTerminal it finds against
// the grammar's rule map, recording an UnresolvedSubruleRef error for
// names that aren't registered.
type resolveVisitor struct {
	gast.BaseVisitor
	rules    map[string]*gast.Rule
	ruleName string
	errs     []gast.DefinitionError
}

func (v *resolveVisitor) VisitNonTerminal(n *gast.NonTerminal) {
	target, ok := v.rules[n.Name]
	if !ok {
		v.errs = append(v.errs, gast.DefinitionError{
			Kind:       gast.UnresolvedSubruleRef,
			RuleName:   v.ruleName,
			DSLKind:    gast.SubRuleKind,
			Occurrence: n.OccurrenceInParent,
			Message:    fmt.Sprintf("subrule %q has no matching rule definition", n.Name),
		})
		return
	}
	n.ResolvedRuleRef = target
}

// Resolve binds every NonTerminal's ResolvedRuleRef across all of rules.
// It mutates the rules in place (they are expected to already be a
// per-class cached clone — see package analysis) and returns any
// UnresolvedSubruleRef errors found, one per dangling reference.
func Resolve(rules map[string]*gast.Rule) []gast.DefinitionError {
	var errs []gast.DefinitionError
	for name, r := range rules {
		v := &resolveVisitor{rules: rules, ruleName: name}
		gast.WalkRule(v, r)
		errs = append(errs, v.errs...)
	}
	if len(errs) > 0 {
		tracer().Debugf("resolve: %d unresolved subrule reference(s)", len(errs))
	}
	return errs
}
