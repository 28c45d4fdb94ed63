package analysis

import (
	"fmt"

	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/gast"
)

// LookaheadKey builds the lookahead-table key for a DSL construct at the
// given kind and occurrence, inside ruleName.
func LookaheadKey(kind gast.DSLKind, occ int, ruleName string) string {
	return fmt.Sprintf("%s%dIN%s", kind, occ, ruleName)
}

// Entry holds the k-token paths that signal "enter this construct" for a
// non-OR repeatable/optional construct (OPTION, MANY, MANY_SEP,
// AT_LEAST_ONE, AT_LEAST_ONE_SEP).
type Entry struct {
	Paths [][]chevrogo.TokType
}

// OrEntry holds, per alternative, the k-token paths that select it.
type OrEntry struct {
	AltPaths [][][]chevrogo.TokType
}

// LookaheadTable holds every construct's precomputed decision data plus an
// index back to the GAST node itself (needed by in-repetition recovery,
// which must inspect the construct's body to compute an expected next
// terminal — see package walker).
type LookaheadTable struct {
	entries   map[string]*Entry
	orEntries map[string]*OrEntry
	nodes     map[string]gast.Production
}

// Entry returns the lookahead entry for a non-OR construct, or nil.
func (t *LookaheadTable) Entry(kind gast.DSLKind, occ int, ruleName string) *Entry {
	return t.entries[LookaheadKey(kind, occ, ruleName)]
}

// OrEntry returns the lookahead entry for an OR construct, or nil.
func (t *LookaheadTable) OrEntry(occ int, ruleName string) *OrEntry {
	return t.orEntries[LookaheadKey(gast.OrKind, occ, ruleName)]
}

// NodeFor returns the GAST node backing a given construct, or nil.
func (t *LookaheadTable) NodeFor(kind gast.DSLKind, occ int, ruleName string) gast.Production {
	return t.nodes[LookaheadKey(kind, occ, ruleName)]
}

// buildLookahead walks every rule and precomputes lookahead paths for
// every repeatable/optional/choice construct it finds, bounded to k
// tokens of lookahead.
func buildLookahead(rules map[string]*gast.Rule, k int) *LookaheadTable {
	t := &LookaheadTable{
		entries:   map[string]*Entry{},
		orEntries: map[string]*OrEntry{},
		nodes:     map[string]gast.Production{},
	}
	for name, r := range rules {
		v := &lookaheadVisitor{ruleName: name, k: k, table: t}
		gast.WalkRule(v, r)
	}
	return t
}

type lookaheadVisitor struct {
	gast.BaseVisitor
	ruleName string
	k        int
	table    *LookaheadTable
}

func (v *lookaheadVisitor) record(kind gast.DSLKind, occ int, def []gast.Production, node gast.Production) {
	key := LookaheadKey(kind, occ, v.ruleName)
	v.table.entries[key] = &Entry{Paths: gast.FirstPaths(def, v.k)}
	v.table.nodes[key] = node
}

func (v *lookaheadVisitor) VisitOption(n *gast.Option) {
	v.record(gast.OptionKind, n.OccurrenceInParent, n.Definition, n)
}

func (v *lookaheadVisitor) VisitRepetition(n *gast.Repetition) {
	v.record(gast.ManyKind, n.OccurrenceInParent, n.Definition, n)
}

func (v *lookaheadVisitor) VisitRepetitionMandatory(n *gast.RepetitionMandatory) {
	v.record(gast.AtLeastOneKind, n.OccurrenceInParent, n.Definition, n)
}

func (v *lookaheadVisitor) VisitRepetitionWithSeparator(n *gast.RepetitionWithSeparator) {
	v.record(gast.ManySepKind, n.OccurrenceInParent, n.Definition, n)
}

func (v *lookaheadVisitor) VisitRepetitionMandatoryWithSeparator(n *gast.RepetitionMandatoryWithSeparator) {
	v.record(gast.AtLeastOneSepKind, n.OccurrenceInParent, n.Definition, n)
}

func (v *lookaheadVisitor) VisitAlternation(n *gast.Alternation) {
	key := LookaheadKey(gast.OrKind, n.OccurrenceInParent, v.ruleName)
	altPaths := make([][][]chevrogo.TokType, len(n.Definition))
	for i := range n.Definition {
		altPaths[i] = gast.FirstPaths(n.Definition[i].Definition, v.k)
	}
	v.table.orEntries[key] = &OrEntry{AltPaths: altPaths}
	v.table.nodes[key] = n
}
