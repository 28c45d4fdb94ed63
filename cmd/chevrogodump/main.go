/*
Command chevrogodump dumps the self-analysis result of the jsongrammar
example — FOLLOW sets at every SUBRULE call site and lookahead paths at
every OPTION/MANY/AT_LEAST_ONE/OR construct — as a tree on the terminal.

It exists to make the otherwise-invisible output of the analysis package
inspectable: a grammar author staring at a NoViableAltError wants to know
what the parser thought was reachable at that point, and this is that
view.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/analysis"
	"github.com/npillmayer/chevrogo/examples/jsongrammar"
	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/chevrogo/parser"
	"github.com/pterm/pterm"
)

func main() {
	result, err := jsongrammar.Analyze(parser.DefaultConfig())
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(fmt.Sprintf("class %q, top rule %q, %d rule(s)",
		result.ClassID, result.TopRule, len(result.Rules)))

	ll := pterm.LeveledList{}
	for _, name := range sortedRuleNames(result.Rules) {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: name})
		for _, line := range dumpRule(result, name) {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: line})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func sortedRuleNames(rules map[string]*gast.Rule) []string {
	names := make([]string, 0, len(rules))
	for n := range rules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// dumpRule walks a single rule's GAST, collecting one human-readable line
// per SUBRULE call site (its FOLLOW set) and per lookahead-bearing
// construct (its decision paths).
func dumpRule(result *analysis.Result, ruleName string) []string {
	d := &dumper{ruleName: ruleName, result: result}
	gast.WalkRule(d, result.Rules[ruleName])
	return d.lines
}

type dumper struct {
	gast.BaseVisitor
	ruleName string
	result   *analysis.Result
	lines    []string
}

func (d *dumper) VisitNonTerminal(n *gast.NonTerminal) {
	fs := d.result.Follow.Get(n.Name, n.OccurrenceInParent, d.ruleName)
	d.lines = append(d.lines, fmt.Sprintf("SUBRULE %s@%d  FOLLOW=%s",
		n.Name, n.OccurrenceInParent, renderTokenSet(fs)))
}

func (d *dumper) VisitOption(n *gast.Option) {
	d.recordEntry(gast.OptionKind, n.OccurrenceInParent)
}

func (d *dumper) VisitRepetition(n *gast.Repetition) {
	d.recordEntry(gast.ManyKind, n.OccurrenceInParent)
}

func (d *dumper) VisitRepetitionMandatory(n *gast.RepetitionMandatory) {
	d.recordEntry(gast.AtLeastOneKind, n.OccurrenceInParent)
}

func (d *dumper) VisitRepetitionWithSeparator(n *gast.RepetitionWithSeparator) {
	d.recordEntry(gast.ManySepKind, n.OccurrenceInParent)
}

func (d *dumper) VisitRepetitionMandatoryWithSeparator(n *gast.RepetitionMandatoryWithSeparator) {
	d.recordEntry(gast.AtLeastOneSepKind, n.OccurrenceInParent)
}

func (d *dumper) VisitAlternation(n *gast.Alternation) {
	or := d.result.Lookahead.OrEntry(n.OccurrenceInParent, d.ruleName)
	d.lines = append(d.lines, fmt.Sprintf("OR@%d  %d alternative(s)  %s",
		n.OccurrenceInParent, len(n.Definition), renderOrPaths(or)))
}

func (d *dumper) recordEntry(kind gast.DSLKind, occ int) {
	e := d.result.Lookahead.Entry(kind, occ, d.ruleName)
	d.lines = append(d.lines, fmt.Sprintf("%s@%d  %s", kind, occ, renderPaths(e)))
}

func renderTokenSet(ts *gast.TokenSet) string {
	vals := ts.Values()
	names := make([]string, len(vals))
	for i, tt := range vals {
		names[i] = jsongrammar.TokTypeName(tt)
	}
	return "{" + strings.Join(names, ",") + "}"
}

func renderPaths(e *analysis.Entry) string {
	if e == nil {
		return "-"
	}
	return renderPathList(e.Paths)
}

func renderOrPaths(e *analysis.OrEntry) string {
	if e == nil {
		return "-"
	}
	parts := make([]string, len(e.AltPaths))
	for i, alt := range e.AltPaths {
		parts[i] = fmt.Sprintf("alt%d=%s", i+1, renderPathList(alt))
	}
	return strings.Join(parts, "  ")
}

func renderPathList(paths [][]chevrogo.TokType) string {
	parts := make([]string, len(paths))
	for i, path := range paths {
		names := make([]string, len(path))
		for j, tt := range path {
			names[j] = jsongrammar.TokTypeName(tt)
		}
		parts[i] = strings.Join(names, " ")
	}
	return "[" + strings.Join(parts, "|") + "]"
}
