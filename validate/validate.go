package validate

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/chevrogo/gast/iteratable"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chevrogo.validate'.
func tracer() tracing.Trace {
	return tracing.Select("chevrogo.validate")
}

var ruleNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateRegistration checks rule names and override declarations across
// defs (which, being a list rather than a map, may legitimately contain
// duplicates) and returns the deduplicated rule map, the set of rule
// names that successfully overrode an earlier registration, and any
// registration errors found. The first registration of a given name
// wins; later duplicates are flagged but dropped, except a later one
// declared as an override, which replaces the earlier rule.
func ValidateRegistration(defs []gast.RuleDef) (map[string]*gast.Rule, map[string]bool, []gast.DefinitionError) {
	rules := make(map[string]*gast.Rule, len(defs))
	overridden := make(map[string]bool)
	var errs []gast.DefinitionError

	for _, d := range defs {
		if !ruleNamePattern.MatchString(d.Name) {
			errs = append(errs, gast.DefinitionError{
				Kind:     gast.InvalidRuleName,
				RuleName: d.Name,
				Message:  fmt.Sprintf("rule name %q does not match [A-Za-z_][A-Za-z0-9_]*", d.Name),
			})
			continue
		}
		_, exists := rules[d.Name]
		switch {
		case d.Override && !exists:
			errs = append(errs, gast.DefinitionError{
				Kind:     gast.InvalidRuleOverride,
				RuleName: d.Name,
				Message:  fmt.Sprintf("rule %q declared as an override but shadows no inherited rule", d.Name),
			})
		case d.Override:
			overridden[d.Name] = true
			rules[d.Name] = d.Rule
		case exists:
			errs = append(errs, gast.DefinitionError{
				Kind:     gast.DuplicateRuleName,
				RuleName: d.Name,
				Message:  fmt.Sprintf("rule %q already registered in this class", d.Name),
			})
		default:
			rules[d.Name] = d.Rule
		}
	}
	return rules, overridden, errs
}

// ValidateGrammar runs the remaining structural checks (I2, I5, I6, I7)
// against an already-resolved rule map. It tolerates (and skips further
// checks on) any rule that still contains an unresolved NonTerminal.
func ValidateGrammar(rules map[string]*gast.Rule, maxLookahead int, ignored gast.IgnoredIssues) []gast.DefinitionError {
	var errs []gast.DefinitionError
	for name, r := range rules {
		if hasUnresolvedRef(r) {
			tracer().Debugf("validate: skipping rule %q, still has unresolved subrule refs", name)
			continue
		}
		errs = append(errs, checkDuplicateProductions(name, r, ignored)...)
		errs = append(errs, checkNoneLastEmptyAlt(name, r)...)
		errs = append(errs, checkAmbiguousAlts(name, r, maxLookahead, ignored)...)
	}
	errs = append(errs, checkLeftRecursion(rules)...)
	return errs
}

type unresolvedFinder struct {
	gast.BaseVisitor
	found bool
}

func (v *unresolvedFinder) VisitNonTerminal(n *gast.NonTerminal) {
	if n.ResolvedRuleRef == nil {
		v.found = true
	}
}

func hasUnresolvedRef(r *gast.Rule) bool {
	v := &unresolvedFinder{}
	gast.WalkRule(v, r)
	return v.found
}

// --- I2: DUPLICATE_PRODUCTIONS ----------------------------------------------

type occurrenceKey struct {
	kind gast.DSLKind
	occ  int
}

type occurrenceCollector struct {
	gast.BaseVisitor
	counts map[occurrenceKey]int
}

func (c *occurrenceCollector) record(p gast.Production) {
	if kind, occ, ok := gast.OccurrenceOf(p); ok {
		c.counts[occurrenceKey{kind, occ}]++
	}
}

func (c *occurrenceCollector) VisitNonTerminal(n *gast.NonTerminal)   { c.record(n) }
func (c *occurrenceCollector) VisitTerminal(n *gast.Terminal)         { c.record(n) }
func (c *occurrenceCollector) VisitOption(n *gast.Option)             { c.record(n) }
func (c *occurrenceCollector) VisitRepetition(n *gast.Repetition)     { c.record(n) }
func (c *occurrenceCollector) VisitRepetitionMandatory(n *gast.RepetitionMandatory) {
	c.record(n)
}
func (c *occurrenceCollector) VisitRepetitionWithSeparator(n *gast.RepetitionWithSeparator) {
	c.record(n)
}
func (c *occurrenceCollector) VisitRepetitionMandatoryWithSeparator(n *gast.RepetitionMandatoryWithSeparator) {
	c.record(n)
}
func (c *occurrenceCollector) VisitAlternation(n *gast.Alternation) { c.record(n) }

func checkDuplicateProductions(ruleName string, r *gast.Rule, ignored gast.IgnoredIssues) []gast.DefinitionError {
	c := &occurrenceCollector{counts: map[occurrenceKey]int{}}
	gast.WalkRule(c, r)
	var errs []gast.DefinitionError
	for key, n := range c.counts {
		if n <= 1 {
			continue
		}
		if ignored.Ignores(ruleName, key.kind, key.occ) {
			continue
		}
		errs = append(errs, gast.DefinitionError{
			Kind:       gast.DuplicateProductions,
			RuleName:   ruleName,
			DSLKind:    key.kind,
			Occurrence: key.occ,
			Message:    fmt.Sprintf("occurrence %d of %s is used %d times in rule %q", key.occ, key.kind, n, ruleName),
		})
	}
	return errs
}

// --- I6: NONE_LAST_EMPTY_ALT -------------------------------------------------

func checkNoneLastEmptyAlt(ruleName string, r *gast.Rule) []gast.DefinitionError {
	var errs []gast.DefinitionError
	var v alternationFinder
	gast.WalkRule(&v, r)
	for _, a := range v.found {
		last := len(a.Definition) - 1
		for i, alt := range a.Definition {
			if len(alt.Definition) == 0 && i != last {
				errs = append(errs, gast.DefinitionError{
					Kind:       gast.NoneLastEmptyAlt,
					RuleName:   ruleName,
					DSLKind:    gast.OrKind,
					Occurrence: a.OccurrenceInParent,
					Message:    fmt.Sprintf("empty alternative %d of OR occurrence %d must be last", i+1, a.OccurrenceInParent),
				})
			}
		}
	}
	return errs
}

// --- I7: AMBIGUOUS_ALTS ------------------------------------------------------

func checkAmbiguousAlts(ruleName string, r *gast.Rule, maxLookahead int, ignored gast.IgnoredIssues) []gast.DefinitionError {
	var errs []gast.DefinitionError
	var v alternationFinder
	gast.WalkRule(&v, r)
	for _, a := range v.found {
		if ignored.Ignores(ruleName, gast.OrKind, a.OccurrenceInParent) {
			continue
		}
		altPaths := make([]map[string]bool, len(a.Definition))
		for i := range a.Definition {
			altPaths[i] = map[string]bool{}
			for _, p := range gast.FirstPaths(a.Definition[i].Definition, maxLookahead) {
				altPaths[i][pathKeyString(p)] = true
			}
		}
		for i := 0; i < len(a.Definition); i++ {
			for j := i + 1; j < len(a.Definition); j++ {
				if pathSetsOverlap(altPaths[i], altPaths[j]) {
					errs = append(errs, gast.DefinitionError{
						Kind:         gast.AmbiguousAlts,
						RuleName:     ruleName,
						DSLKind:      gast.OrKind,
						Occurrence:   a.OccurrenceInParent,
						Alternatives: []int{i + 1, j + 1},
						Message: fmt.Sprintf("alternatives %d and %d of OR occurrence %d share a lookahead path",
							i+1, j+1, a.OccurrenceInParent),
					})
				}
			}
		}
	}
	return errs
}

func pathSetsOverlap(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

func pathKeyString(p []chevrogo.TokType) string {
	b := make([]byte, 0, len(p)*4)
	for _, tt := range p {
		b = append(b, byte(tt), byte(tt>>8), byte(tt>>16), byte(tt>>24))
	}
	return string(b)
}

type alternationFinder struct {
	gast.BaseVisitor
	found []*gast.Alternation
}

func (v *alternationFinder) VisitAlternation(n *gast.Alternation) {
	v.found = append(v.found, n)
}

// --- I5: LEFT_RECURSION ------------------------------------------------------

func checkLeftRecursion(rules map[string]*gast.Rule) []gast.DefinitionError {
	var errs []gast.DefinitionError
	for name, r := range rules {
		reachable := firstReachable(r)
		if reachable.Contains(name) {
			errs = append(errs, gast.DefinitionError{
				Kind:     gast.LeftRecursion,
				RuleName: name,
				Message:  fmt.Sprintf("rule %q is left-recursive", name),
			})
		}
	}
	return errs
}

// firstReachable returns the set of rule names reachable as a "first"
// non-terminal from r's own definition: names N such that some path
// through r can reach a call to N before consuming any terminal. This is
// the teacher's closure-over-a-set technique (lr/tables.go's
// closureSet), repurposed from "LR item closure" to "rules reachable
// without consuming a terminal".
func firstReachable(r *gast.Rule) *iteratable.Set {
	visited := iteratable.NewStrings()
	var visit func(seq []gast.Production)
	visit = func(seq []gast.Production) {
		for _, p := range seq {
			switch n := p.(type) {
			case *gast.NonTerminal:
				if n.ResolvedRuleRef != nil && !visited.Contains(n.Name) {
					visited.Add(n.Name)
					visit(n.ResolvedRuleRef.Definition)
				}
			case *gast.Option:
				visit(n.Definition)
			case *gast.Repetition:
				visit(n.Definition)
			case *gast.RepetitionMandatory:
				visit(n.Definition)
			case *gast.RepetitionWithSeparator:
				visit(n.Definition)
			case *gast.RepetitionMandatoryWithSeparator:
				visit(n.Definition)
			case *gast.Alternation:
				for i := range n.Definition {
					visit(n.Definition[i].Definition)
				}
			}
			if !gast.Nullable(p) {
				return
			}
		}
	}
	visit(r.Definition)
	return visited
}
