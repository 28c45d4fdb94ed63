package gast

import (
	"fmt"

	"github.com/npillmayer/chevrogo"
)

// Production is the common interface of every node that may appear inside
// a rule's Definition. Rule and Flat are deliberately not Productions:
// Rule is the top-level, name-addressed container every NonTerminal
// refers back to, and Flat is only ever used as one branch of an
// Alternation.
type Production interface {
	isProduction()
	Clone() Production
}

// DSLKind identifies which parser DSL primitive a Production corresponds
// to. It is the "kind" half of the (kind, occurrence) pair invariant I2
// requires to be unique within a rule.
type DSLKind int

const (
	ConsumeKind DSLKind = iota
	SubRuleKind
	OptionKind
	ManyKind
	ManySepKind
	AtLeastOneKind
	AtLeastOneSepKind
	OrKind
)

func (k DSLKind) String() string {
	switch k {
	case ConsumeKind:
		return "CONSUME"
	case SubRuleKind:
		return "SUBRULE"
	case OptionKind:
		return "OPTION"
	case ManyKind:
		return "MANY"
	case ManySepKind:
		return "MANY_SEP"
	case AtLeastOneKind:
		return "AT_LEAST_ONE"
	case AtLeastOneSepKind:
		return "AT_LEAST_ONE_SEP"
	case OrKind:
		return "OR"
	default:
		return fmt.Sprintf("DSLKind(%d)", int(k))
	}
}

// maxOccurrence is the highest occurrence index the parser DSL allows per
// (rule, kind) pair — mirrors chevrotain's CONSUME1..CONSUME5 ceiling.
const maxOccurrence = 5

func checkOccurrence(occ int) {
	if occ < 1 || occ > maxOccurrence {
		panic(fmt.Sprintf("chevrogo/gast: occurrence index %d out of range [1,%d]", occ, maxOccurrence))
	}
}

// Rule is a named grammar production: the top-level unit a parser's
// SubRule/Parse calls address by name.
type Rule struct {
	Name         string
	Definition   []Production
	OriginalText string
}

// Clone returns a deep copy of r with ResolvedRuleRef links cleared; the
// copy must be re-resolved before use (invariant I1).
func (r *Rule) Clone() *Rule {
	return &Rule{Name: r.Name, OriginalText: r.OriginalText, Definition: cloneAll(r.Definition)}
}

// Flat is a plain concatenation of productions, used as the branches of an
// Alternation (each alternative is one Flat).
type Flat struct {
	Definition []Production
}

func (f Flat) Clone() Flat {
	return Flat{Definition: cloneAll(f.Definition)}
}

// NonTerminal is a call to another rule (SUBRULE).
type NonTerminal struct {
	Name               string
	OccurrenceInParent int
	ResolvedRuleRef    *Rule
}

func (*NonTerminal) isProduction() {}
func (n *NonTerminal) Clone() Production {
	return &NonTerminal{Name: n.Name, OccurrenceInParent: n.OccurrenceInParent}
}

// Terminal is a single-token match (CONSUME).
type Terminal struct {
	TokenType          chevrogo.TokType
	OccurrenceInParent int
}

func (*Terminal) isProduction() {}
func (t *Terminal) Clone() Production {
	return &Terminal{TokenType: t.TokenType, OccurrenceInParent: t.OccurrenceInParent}
}

// Option is an optional sub-sequence, matched zero or one times (OPTION).
type Option struct {
	Definition         []Production
	OccurrenceInParent int
}

func (*Option) isProduction() {}
func (o *Option) Clone() Production {
	return &Option{Definition: cloneAll(o.Definition), OccurrenceInParent: o.OccurrenceInParent}
}

// Repetition is a sub-sequence matched zero or more times (MANY).
type Repetition struct {
	Definition         []Production
	OccurrenceInParent int
}

func (*Repetition) isProduction() {}
func (r *Repetition) Clone() Production {
	return &Repetition{Definition: cloneAll(r.Definition), OccurrenceInParent: r.OccurrenceInParent}
}

// RepetitionMandatory is a sub-sequence matched one or more times
// (AT_LEAST_ONE).
type RepetitionMandatory struct {
	Definition         []Production
	OccurrenceInParent int
}

func (*RepetitionMandatory) isProduction() {}
func (r *RepetitionMandatory) Clone() Production {
	return &RepetitionMandatory{Definition: cloneAll(r.Definition), OccurrenceInParent: r.OccurrenceInParent}
}

// RepetitionWithSeparator is a sub-sequence matched zero or more times,
// with Separator consumed between iterations (MANY_SEP).
type RepetitionWithSeparator struct {
	Definition         []Production
	Separator          chevrogo.TokType
	OccurrenceInParent int
}

func (*RepetitionWithSeparator) isProduction() {}
func (r *RepetitionWithSeparator) Clone() Production {
	return &RepetitionWithSeparator{
		Definition:         cloneAll(r.Definition),
		Separator:          r.Separator,
		OccurrenceInParent: r.OccurrenceInParent,
	}
}

// RepetitionMandatoryWithSeparator is a sub-sequence matched one or more
// times, with Separator consumed between iterations (AT_LEAST_ONE_SEP).
type RepetitionMandatoryWithSeparator struct {
	Definition         []Production
	Separator          chevrogo.TokType
	OccurrenceInParent int
}

func (*RepetitionMandatoryWithSeparator) isProduction() {}
func (r *RepetitionMandatoryWithSeparator) Clone() Production {
	return &RepetitionMandatoryWithSeparator{
		Definition:         cloneAll(r.Definition),
		Separator:          r.Separator,
		OccurrenceInParent: r.OccurrenceInParent,
	}
}

// Alternation is a choice between Flat branches (OR); at most the last
// branch may be a literal empty alternative (invariant I6).
type Alternation struct {
	Definition         []Flat
	OccurrenceInParent int
}

func (*Alternation) isProduction() {}
func (a *Alternation) Clone() Production {
	defs := make([]Flat, len(a.Definition))
	for i, f := range a.Definition {
		defs[i] = f.Clone()
	}
	return &Alternation{Definition: defs, OccurrenceInParent: a.OccurrenceInParent}
}

func cloneAll(ps []Production) []Production {
	if ps == nil {
		return nil
	}
	out := make([]Production, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}

// OccurrenceOf returns the DSL kind and occurrence index carried by p.
// ok is false for productions that aren't individually occurrence-keyed
// (there are none among the Production variants; Rule/Flat, which lack an
// occurrence, aren't Productions at all).
func OccurrenceOf(p Production) (kind DSLKind, occurrence int, ok bool) {
	switch n := p.(type) {
	case *Terminal:
		return ConsumeKind, n.OccurrenceInParent, true
	case *NonTerminal:
		return SubRuleKind, n.OccurrenceInParent, true
	case *Option:
		return OptionKind, n.OccurrenceInParent, true
	case *Repetition:
		return ManyKind, n.OccurrenceInParent, true
	case *RepetitionMandatory:
		return AtLeastOneKind, n.OccurrenceInParent, true
	case *RepetitionWithSeparator:
		return ManySepKind, n.OccurrenceInParent, true
	case *RepetitionMandatoryWithSeparator:
		return AtLeastOneSepKind, n.OccurrenceInParent, true
	case *Alternation:
		return OrKind, n.OccurrenceInParent, true
	}
	return 0, 0, false
}

// Children returns the nested sub-sequence of p, or nil for leaves
// (Terminal, NonTerminal) and for Alternation (whose branches are Flat,
// not Production — see Alternation.Definition directly).
func Children(p Production) []Production {
	switch n := p.(type) {
	case *Option:
		return n.Definition
	case *Repetition:
		return n.Definition
	case *RepetitionMandatory:
		return n.Definition
	case *RepetitionWithSeparator:
		return n.Definition
	case *RepetitionMandatoryWithSeparator:
		return n.Definition
	}
	return nil
}
