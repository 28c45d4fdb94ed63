package parser

import (
	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/analysis"
	"github.com/npillmayer/chevrogo/gast"
)

// Consume matches LA(1) against tt, advances past it, and returns it. If
// LA(1) is not of type tt, a MismatchedTokenError is recorded and in-rule
// recovery (single-token insertion or deletion) is attempted when enabled;
// the error is returned only when no recovery took place.
func Consume(p *Parser, occ int, tt chevrogo.TokType) (chevrogo.Token, error) {
	la := p.LA(1)
	if la.TokType() == tt {
		return p.advance(), nil
	}

	names, occs := p.ruleStackSnapshot()
	err := &MismatchedTokenError{baseError: baseError{tok: la, ruleStack: names, ruleOccStack: occs}, Expected: tt}

	if p.backtracking() {
		return nil, err
	}
	if p.cfg.RecoveryEnabled {
		if tok, ok := p.inRuleRecover(tt); ok {
			tracer().Debugf("parser: in-rule recovery inserted/skipped around CONSUME%d(%v) in %s", occ, tt, p.currentRuleName())
			p.recordError(err)
			return tok, nil
		}
	}
	p.recordError(err)
	return nil, err
}

// SubRule invokes a nested rule body, pushing (name, occ) onto the rule
// call stack for the duration of the call. If body fails and rcfg allows
// between-rules re-sync, performResync consumes tokens up to the union of
// FOLLOW sets across the live call stack and the call is reported as
// recovered rather than fatal.
func SubRule(p *Parser, occ int, name string, body RuleFunc, rcfg RuleConfig) (interface{}, error) {
	p.pushRule(name, occ)
	v, err := body(p)
	if err == nil {
		p.popRule()
		return v, nil
	}

	resyncEnabled := rcfg.ResyncEnabled || len(p.ruleNameStack) == 1
	if p.backtracking() || !resyncEnabled {
		p.popRule()
		return v, err
	}

	skipped := p.performResync()
	if re, ok := err.(RecognitionError); ok {
		setResynced(re, skipped)
	}
	p.popRule()
	tracer().Debugf("parser: between-rules re-sync in %s skipped %d token(s)", name, len(skipped))
	return rcfg.recoveryValue(), nil
}

// Option matches zero or one repetitions of body, entering it only when
// the precomputed lookahead paths for this occurrence match LA.
func Option(p *Parser, occ int, body func() error) (bool, error) {
	entry := p.lookaheadEntry(gast.OptionKind, occ)
	if entry == nil || !gast.MatchesAny(entry.Paths, p.laFunc()) {
		return false, nil
	}
	if err := body(); err != nil {
		return true, err
	}
	return true, nil
}

// OrAlt is one alternative passed to Or. Predicate, if set, is a semantic
// gate that must also return true for the alternative to be chosen.
type OrAlt struct {
	Predicate func() bool
	Body      func() (interface{}, error)
}

// Or selects and runs the first alternative whose precomputed lookahead
// paths match LA and whose Predicate (if any) holds. No match is a
// NoViableAltError.
func Or(p *Parser, occ int, alts []OrAlt) (interface{}, error) {
	entry := p.orLookaheadEntry(occ)
	la := p.laFunc()
	if entry != nil {
		for i, alt := range alts {
			if i >= len(entry.AltPaths) {
				break
			}
			if gast.MatchesAny(entry.AltPaths[i], la) && (alt.Predicate == nil || alt.Predicate()) {
				return alt.Body()
			}
		}
	}
	names, occs := p.ruleStackSnapshot()
	err := &NoViableAltError{
		baseError: baseError{tok: p.LA(1), ruleStack: names, ruleOccStack: occs},
		Message:   "lookahead matches none of the alternatives",
	}
	p.recordError(err)
	return nil, err
}

// Many matches body zero or more times, guided by the precomputed
// lookahead paths for this occurrence.
func Many(p *Parser, occ int, body func() error) error {
	entry := p.lookaheadEntry(gast.ManyKind, occ)
	if entry == nil {
		return nil
	}
	la := p.laFunc()
	for gast.MatchesAny(entry.Paths, la) {
		before := p.pos
		if err := body(); err != nil {
			switch p.recoverInRepetition(gast.ManyKind, occ) {
			case repetitionRetry:
				continue
			case repetitionStop:
				return nil
			default:
				return err
			}
		}
		if p.pos == before {
			break // body matched epsilon; avoid looping forever
		}
	}
	return nil
}

// ManySep matches body zero or more times, separated by sep.
func ManySep(p *Parser, occ int, sep chevrogo.TokType, body func() error) error {
	entry := p.lookaheadEntry(gast.ManySepKind, occ)
	if entry == nil {
		return nil
	}
	la := p.laFunc()
	first := true
	for {
		if !first {
			if p.LA(1).TokType() != sep {
				break
			}
			p.advance()
		} else if !gast.MatchesAny(entry.Paths, la) {
			break
		}
		if err := body(); err != nil {
			switch p.recoverInRepetition(gast.ManySepKind, occ) {
			case repetitionRetry:
				continue
			case repetitionStop:
				return nil
			default:
				return err
			}
		}
		first = false
	}
	return nil
}

// AtLeastOne matches body one or more times; zero matches is an
// EarlyExitError.
func AtLeastOne(p *Parser, occ int, body func() error) error {
	entry := p.lookaheadEntry(gast.AtLeastOneKind, occ)
	if entry == nil || !gast.MatchesAny(entry.Paths, p.laFunc()) {
		return p.earlyExit(occ)
	}
	for {
		before := p.pos
		if err := body(); err != nil {
			switch p.recoverInRepetition(gast.AtLeastOneKind, occ) {
			case repetitionRetry:
				continue
			case repetitionStop:
				return nil
			default:
				return err
			}
		}
		if p.pos == before || !gast.MatchesAny(entry.Paths, p.laFunc()) {
			break
		}
	}
	return nil
}

// AtLeastOneSep matches body one or more times separated by sep; zero
// matches is an EarlyExitError.
func AtLeastOneSep(p *Parser, occ int, sep chevrogo.TokType, body func() error) error {
	entry := p.lookaheadEntry(gast.AtLeastOneSepKind, occ)
	if entry == nil || !gast.MatchesAny(entry.Paths, p.laFunc()) {
		return p.earlyExit(occ)
	}
	for {
		if err := body(); err != nil {
			switch p.recoverInRepetition(gast.AtLeastOneSepKind, occ) {
			case repetitionRetry:
				continue
			case repetitionStop:
				return nil
			default:
				return err
			}
		}
		if p.LA(1).TokType() != sep {
			break
		}
		p.advance()
	}
	return nil
}

func (p *Parser) earlyExit(occ int) error {
	names, occs := p.ruleStackSnapshot()
	err := &EarlyExitError{
		baseError: baseError{tok: p.LA(1), ruleStack: names, ruleOccStack: occs},
		Message:   "expected at least one iteration",
	}
	p.recordError(err)
	return err
}

// laFunc adapts Parser.LA to the func(int) TokType shape gast.MatchesAny
// expects.
func (p *Parser) laFunc() func(int) chevrogo.TokType {
	return func(k int) chevrogo.TokType { return p.LA(k).TokType() }
}

func (p *Parser) lookaheadEntry(kind gast.DSLKind, occ int) *analysis.Entry {
	if p.result.Lookahead == nil {
		return nil
	}
	return p.result.Lookahead.Entry(kind, occ, p.currentRuleName())
}

func (p *Parser) orLookaheadEntry(occ int) *analysis.OrEntry {
	if p.result.Lookahead == nil {
		return nil
	}
	return p.result.Lookahead.OrEntry(occ, p.currentRuleName())
}
