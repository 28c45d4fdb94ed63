package analysis

import (
	"fmt"

	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/gast"
)

// EOFFollowKey is the sentinel FOLLOW-table key denoting the FOLLOW set of
// the top rule (which is always just {EOF}).
const EOFFollowKey = "EOF_FOLLOW_KEY"

// FollowKey builds the FOLLOW-table key for rule calleeName, invoked at
// occurrence occ from callerName.
func FollowKey(calleeName string, occ int, callerName string) string {
	return fmt.Sprintf("%s%dIN%s", calleeName, occ, callerName)
}

// FollowTable holds, for every NonTerminal call site (ruleName, occurrence,
// callerName), the set of terminal token types that may immediately follow
// a successful match of that occurrence.
type FollowTable struct {
	byKey map[string]*gast.TokenSet
}

// Get returns the FOLLOW set for the given call site, or an empty set if
// none was recorded (can happen for an occurrence that is never actually
// invoked, e.g. dead code in a grammar).
func (t *FollowTable) Get(calleeName string, occ int, callerName string) *gast.TokenSet {
	return t.getKey(FollowKey(calleeName, occ, callerName))
}

func (t *FollowTable) getKey(key string) *gast.TokenSet {
	if s, ok := t.byKey[key]; ok {
		return s
	}
	return gast.NewTokenSet()
}

// EOF returns the FOLLOW set of the top rule, {EOF}.
func (t *FollowTable) EOF() *gast.TokenSet {
	return t.getKey(EOFFollowKey)
}

type callSite struct {
	caller string
	occ    int
}

// follower computes the FOLLOW table for a whole grammar via classical
// fixpoint iteration: FOLLOW(R, N@occ IN caller) depends on FOLLOW(R)
// (the union of FOLLOW over every call site of R), which in turn depends
// on the very table being built, so passes repeat until nothing grows.
//
// Grounded on the teacher's lr/tables.go Follow-set role (there, used to
// build SLR(1) reduce actions via lrgen.ga.Follow(rule.LHS)); here the
// same FOLLOW concept is recomputed per call site rather than per rule,
// since recovery needs to know what follows *this particular* subrule
// invocation, not just the rule in general.
type follower struct {
	rules     map[string]*gast.Rule
	topRule   string
	table     map[string]*gast.TokenSet
	callSites map[string][]callSite
	changed   bool
}

func computeFollow(rules map[string]*gast.Rule, topRule string) *FollowTable {
	f := &follower{
		rules:     rules,
		topRule:   topRule,
		table:     map[string]*gast.TokenSet{},
		callSites: map[string][]callSite{},
	}
	f.collectCallSites()
	f.table[EOFFollowKey] = gast.NewTokenSet(chevrogo.EOFType)

	const maxPasses = 1000
	for i := 0; i < maxPasses; i++ {
		f.changed = false
		for name, r := range rules {
			f.walkSeq(name, r.Definition, f.ruleFollowFn(name))
		}
		if !f.changed {
			break
		}
	}
	return &FollowTable{byKey: f.table}
}

func (f *follower) collectCallSites() {
	for name, r := range f.rules {
		v := &callSiteVisitor{caller: name, sites: f.callSites}
		gast.WalkRule(v, r)
	}
}

type callSiteVisitor struct {
	gast.BaseVisitor
	caller string
	sites  map[string][]callSite
}

func (v *callSiteVisitor) VisitNonTerminal(n *gast.NonTerminal) {
	v.sites[n.Name] = append(v.sites[n.Name], callSite{caller: v.caller, occ: n.OccurrenceInParent})
}

// ruleFollowFn returns, lazily, the FOLLOW(R) used as the fallback
// continuation at the very end of R's own body: EOF if R is the top rule,
// plus the union of the table's current entries for every known call
// site of R.
func (f *follower) ruleFollowFn(ruleName string) func() *gast.TokenSet {
	return func() *gast.TokenSet {
		s := gast.NewTokenSet()
		if ruleName == f.topRule {
			s.Add(chevrogo.EOFType)
		}
		for _, cs := range f.callSites[ruleName] {
			key := FollowKey(ruleName, cs.occ, cs.caller)
			if existing, ok := f.table[key]; ok {
				s.UnionInPlace(existing)
			}
		}
		return s
	}
}

func (f *follower) record(key string, s *gast.TokenSet) {
	existing, ok := f.table[key]
	if !ok {
		f.table[key] = s.Copy()
		if !s.Empty() {
			f.changed = true
		}
		return
	}
	if existing.UnionInPlace(s) {
		f.changed = true
	}
}

// walkSeq processes seq right-to-left, threading a lazy "continuation"
// function: tail() gives the FOLLOW contribution of whatever comes after
// the entire seq. Each NonTerminal found is recorded against its own
// lazily-computed continuation.
func (f *follower) walkSeq(ruleName string, seq []gast.Production, tail func() *gast.TokenSet) {
	next := tail
	for i := len(seq) - 1; i >= 0; i-- {
		p := seq[i]
		after := next
		f.walkProd(ruleName, p, after)

		pCopy := p
		prevNext := next
		next = func() *gast.TokenSet {
			s := gast.First(pCopy)
			if gast.Nullable(pCopy) {
				s = s.Union(prevNext())
			}
			return s
		}
	}
}

func (f *follower) walkProd(ruleName string, p gast.Production, after func() *gast.TokenSet) {
	switch n := p.(type) {
	case *gast.NonTerminal:
		f.record(FollowKey(n.Name, n.OccurrenceInParent, ruleName), after())
	case *gast.Option:
		f.walkSeq(ruleName, n.Definition, after)
	case *gast.Repetition:
		f.walkSeq(ruleName, n.Definition, repeatTail(n.Definition, after))
	case *gast.RepetitionMandatory:
		f.walkSeq(ruleName, n.Definition, repeatTail(n.Definition, after))
	case *gast.RepetitionWithSeparator:
		f.walkSeq(ruleName, n.Definition, sepTail(n.Separator, after))
	case *gast.RepetitionMandatoryWithSeparator:
		f.walkSeq(ruleName, n.Definition, sepTail(n.Separator, after))
	case *gast.Alternation:
		for i := range n.Definition {
			f.walkSeq(ruleName, n.Definition[i].Definition, after)
		}
	}
}

// repeatTail is the continuation used inside a repetition body: after one
// iteration, the parser either starts another (FIRST(body) again) or
// stops (after()).
func repeatTail(body []gast.Production, after func() *gast.TokenSet) func() *gast.TokenSet {
	return func() *gast.TokenSet {
		return gast.FirstSeq(body).Union(after())
	}
}

// sepTail is the continuation used inside a separated repetition body:
// after one iteration, the parser either sees the separator (to continue)
// or stops (after()).
func sepTail(sep chevrogo.TokType, after func() *gast.TokenSet) func() *gast.TokenSet {
	return func() *gast.TokenSet {
		return gast.NewTokenSet(sep).Union(after())
	}
}
