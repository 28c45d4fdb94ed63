package walker

import (
	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/gast"
)

// NextTerminal returns a terminal token type that can begin a fresh match
// of p, used by in-repetition recovery as its "expected next token" hint.
// ok is false when p cannot be reduced to any concrete terminal (an
// unresolved subrule reference, or a production that is structurally
// empty).
func NextTerminal(p gast.Production) (chevrogo.TokType, bool) {
	switch n := p.(type) {
	case *gast.Terminal:
		return n.TokenType, true
	case *gast.NonTerminal:
		if n.ResolvedRuleRef == nil {
			return 0, false
		}
		return FirstOfSeq(n.ResolvedRuleRef.Definition)
	case *gast.Option:
		return FirstOfSeq(n.Definition)
	case *gast.Repetition:
		return FirstOfSeq(n.Definition)
	case *gast.RepetitionMandatory:
		return FirstOfSeq(n.Definition)
	case *gast.RepetitionWithSeparator:
		return FirstOfSeq(n.Definition)
	case *gast.RepetitionMandatoryWithSeparator:
		return FirstOfSeq(n.Definition)
	case *gast.Alternation:
		for i := range n.Definition {
			if tt, ok := FirstOfSeq(n.Definition[i].Definition); ok {
				return tt, ok
			}
		}
		return 0, false
	}
	return 0, false
}

// FirstOfSeq walks seq left to right, returning the first terminal any
// element can yield.
func FirstOfSeq(seq []gast.Production) (chevrogo.TokType, bool) {
	for _, p := range seq {
		if tt, ok := NextTerminal(p); ok {
			return tt, ok
		}
	}
	return 0, false
}
