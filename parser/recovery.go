package parser

import (
	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/chevrogo/walker"
)

// inRuleRecover attempts single-token recovery for a CONSUME that just
// mismatched. Per the FOLLOW set of the current rule's call site (see
// currentFollow): if LA(1) already belongs to it, the expected token was
// never actually there to begin with — a
// synthetic token of the expected type is manufactured in place, without
// consuming anything (insertion), so the caller can proceed as though it
// had been found. Otherwise, if LA(2) is of the expected type, LA(1) is
// treated as a spurious extra token and skipped (deletion). Past both of
// those, the caller is better served by between-rules re-sync.
func (p *Parser) inRuleRecover(expected chevrogo.TokType) (chevrogo.Token, bool) {
	follow := p.currentFollow()
	if follow != nil && follow.Contains(p.LA(1).TokType()) {
		return chevrogo.SyntheticToken(expected, p.LA(1)), true
	}
	if p.LA(2).TokType() == expected {
		p.advance() // drop the unexpected token
		return p.advance(), true
	}
	return nil, false
}

// performResync skips tokens from the input until LA(1) is a member of
// the union of FOLLOW sets across every frame currently on the rule call
// stack, or EOF is reached. It returns every token
// it skipped, for RecognitionError.ResyncedTokens.
//
// Grounded on chevrotain's "stack of FOLLOW sets" re-sync strategy
// (§4.9 of the module's design notes): a token that is valid at any
// enclosing rule's current position is a safe place to resume, so the
// union (not just the innermost rule's FOLLOW) is used.
func (p *Parser) performResync() []chevrogo.Token {
	union := p.combinedFollow()
	var skipped []chevrogo.Token
	for !chevrogo.IsEOF(p.LA(1)) && !union.Contains(p.LA(1).TokType()) {
		skipped = append(skipped, p.advance())
	}
	return skipped
}

func (p *Parser) combinedFollow() *gast.TokenSet {
	union := gast.NewTokenSet(chevrogo.EOFType)
	if p.result.Follow == nil {
		return union
	}
	for i := range p.ruleNameStack {
		name := p.ruleNameStack[i]
		occ := p.ruleOccStack[i]
		if i == 0 {
			union.UnionInPlace(p.result.Follow.EOF())
			continue
		}
		caller := p.ruleNameStack[i-1]
		union.UnionInPlace(p.result.Follow.Get(name, occ, caller))
	}
	return union
}

// inRepetitionRecover looks up the terminal that could begin a fresh
// iteration of the MANY/AT_LEAST_ONE(_SEP) occurrence identified by kind
// and occ, via the construct's precomputed lookahead-table node.
func (p *Parser) inRepetitionRecover(kind gast.DSLKind, occ int) (chevrogo.TokType, bool) {
	if p.result.Lookahead == nil {
		return 0, false
	}
	node := p.result.Lookahead.NodeFor(kind, occ, p.currentRuleName())
	if node == nil {
		return 0, false
	}
	return walker.NextTerminal(node)
}

// repetitionRecoveryOutcome is the verdict recoverInRepetition reaches
// for a MANY/AT_LEAST_ONE(_SEP) iteration whose body() just failed.
type repetitionRecoveryOutcome int

const (
	// repetitionPropagate means recovery could not help; the caller
	// should return the original body error unchanged.
	repetitionPropagate repetitionRecoveryOutcome = iota
	// repetitionStop means LA(1) already belongs to the FOLLOW set of the
	// enclosing rule's call site; the caller should stop looping and
	// report success.
	repetitionStop
	// repetitionRetry means one token was skipped as spurious; the
	// caller should loop back and retry body().
	repetitionRetry
)

// recoverInRepetition implements tier 2 recovery (§4.9): called when
// body() has just failed inside a MANY/AT_LEAST_ONE(_SEP) iteration. If
// LA(1) is already in the FOLLOW set of the enclosing rule's call site
// (currentFollow), the repetition is treated as cleanly finished. Otherwise, if the construct's own lookahead table
// names a terminal that could start a fresh iteration, LA(1) is skipped
// as a spurious token and the caller retries. Anything else propagates.
func (p *Parser) recoverInRepetition(kind gast.DSLKind, occ int) repetitionRecoveryOutcome {
	if !p.cfg.RecoveryEnabled || p.backtracking() {
		return repetitionPropagate
	}
	follow := p.currentFollow()
	if follow != nil && follow.Contains(p.LA(1).TokType()) {
		return repetitionStop
	}
	if chevrogo.IsEOF(p.LA(1)) {
		return repetitionPropagate
	}
	if _, ok := p.inRepetitionRecover(kind, occ); !ok {
		return repetitionPropagate
	}
	p.advance()
	return repetitionRetry
}
