package gast

import "github.com/npillmayer/chevrogo"

// TokenTypeRegistry maps a token-type name to its TokType constant. A
// grammar's Builder uses it to translate the textual token names it was
// written against into the scanner's actual constants, so the GAST itself
// never hard-codes a specific scanner's numbering.
type TokenTypeRegistry interface {
	TokenType(name string) (chevrogo.TokType, bool)
}

type mapRegistry map[string]chevrogo.TokType

func (m mapRegistry) TokenType(name string) (chevrogo.TokType, bool) {
	tt, ok := m[name]
	return tt, ok
}

// NewTokenTypeRegistry builds a TokenTypeRegistry from a name→TokType map.
// "EOF" is always available, injected with chevrogo.EOFType regardless of
// what m contains.
func NewTokenTypeRegistry(m map[string]chevrogo.TokType) TokenTypeRegistry {
	reg := make(mapRegistry, len(m)+1)
	for k, v := range m {
		reg[k] = v
	}
	reg["EOF"] = chevrogo.EOFType
	return reg
}

// Builder produces the GAST for a single named rule. This is the
// equivalent, in this module, of the reflection-based extraction a
// host language with runtime introspection of function bodies could do
// automatically: here a Builder is handed the rule name and a token-type
// registry, and returns the GAST directly.
type Builder interface {
	Build(ruleName string, tokens TokenTypeRegistry) (*Rule, error)
}

// FuncBuilder adapts a plain function into a Builder. f may ignore
// ruleName and leave Rule.Name unset; Build fills it in from the
// registration name if so.
type FuncBuilder func(tokens TokenTypeRegistry) *Rule

// Build implements Builder.
func (f FuncBuilder) Build(ruleName string, tokens TokenTypeRegistry) (*Rule, error) {
	r := f(tokens)
	if r.Name == "" {
		r.Name = ruleName
	}
	return r, nil
}

// --- Combinators for constructing a Rule's GAST directly -------------------
//
// A grammar can either implement Builder with hand-rolled logic, or use
// these combinators (typically inside a FuncBuilder) to build the GAST as
// a plain Go value, mirroring the rule's actual parser-DSL code one-to-one.

// NewRule builds a Rule from a name, its original source text (for error
// messages/dumps) and its sequence of productions.
func NewRule(name, originalText string, def ...Production) *Rule {
	return &Rule{Name: name, OriginalText: originalText, Definition: def}
}

// T builds a Terminal (CONSUME) production at the given occurrence.
func T(occ int, tt chevrogo.TokType) *Terminal {
	checkOccurrence(occ)
	return &Terminal{TokenType: tt, OccurrenceInParent: occ}
}

// N builds a NonTerminal (SUBRULE) production referring to ruleName.
func N(occ int, ruleName string) *NonTerminal {
	checkOccurrence(occ)
	return &NonTerminal{Name: ruleName, OccurrenceInParent: occ}
}

// Opt builds an Option (OPTION) production.
func Opt(occ int, def ...Production) *Option {
	checkOccurrence(occ)
	return &Option{Definition: def, OccurrenceInParent: occ}
}

// Rep builds a Repetition (MANY) production.
func Rep(occ int, def ...Production) *Repetition {
	checkOccurrence(occ)
	return &Repetition{Definition: def, OccurrenceInParent: occ}
}

// Rep1 builds a RepetitionMandatory (AT_LEAST_ONE) production.
func Rep1(occ int, def ...Production) *RepetitionMandatory {
	checkOccurrence(occ)
	return &RepetitionMandatory{Definition: def, OccurrenceInParent: occ}
}

// RepSep builds a RepetitionWithSeparator (MANY_SEP) production.
func RepSep(occ int, sep chevrogo.TokType, def ...Production) *RepetitionWithSeparator {
	checkOccurrence(occ)
	return &RepetitionWithSeparator{Definition: def, Separator: sep, OccurrenceInParent: occ}
}

// Rep1Sep builds a RepetitionMandatoryWithSeparator (AT_LEAST_ONE_SEP)
// production.
func Rep1Sep(occ int, sep chevrogo.TokType, def ...Production) *RepetitionMandatoryWithSeparator {
	checkOccurrence(occ)
	return &RepetitionMandatoryWithSeparator{Definition: def, Separator: sep, OccurrenceInParent: occ}
}

// Seq groups a sequence of productions into one Alternation branch.
func Seq(def ...Production) Flat {
	return Flat{Definition: def}
}

// Alt builds an Alternation (OR) production from its branches. Per
// invariant I6, only the last branch may be a literal empty Seq().
func Alt(occ int, alts ...Flat) *Alternation {
	checkOccurrence(occ)
	return &Alternation{Definition: alts, OccurrenceInParent: occ}
}
