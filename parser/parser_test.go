package parser

import (
	"testing"

	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/analysis"
	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tNUM chevrogo.TokType = iota + 1
	tCOMMA
	tEND
)

func tok(tt chevrogo.TokType, image string) chevrogo.Token {
	return chevrogo.NewToken(tt, image, 1, 1, 0, len(image))
}

type singleConsumeGrammar struct{}
type insertionGrammar struct{}
type deletionGrammar struct{}
type fatalMismatchGrammar struct{}
type subruleGrammar struct{}
type orSelectGrammar struct{}
type orFailGrammar struct{}
type manyGrammar struct{}
type atLeastOneGrammar struct{}
type backtrackGrammar struct{}
type manyRepRecoveryGrammar struct{}
type manyRepRecoveryStopGrammar struct{}
type resetGrammar struct{}

func TestConsumeSuccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	defs := []gast.RuleDef{{Name: "top", Rule: gast.NewRule("top", "", gast.T(1, tNUM))}}
	p, err := New(analysis.ClassID(singleConsumeGrammar{}), "top", defs, []chevrogo.Token{tok(tNUM, "7")}, DefaultConfig())
	require.NoError(t, err)

	v, err := p.Parse("top", func(p *Parser) (interface{}, error) {
		return Consume(p, 1, tNUM)
	})
	require.NoError(t, err)
	assert.Equal(t, "7", v.(chevrogo.Token).Image())
}

func TestConsumeMismatchInsertionRecovery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	// No tokens at all: LA(1) is the EOF sentinel, which is exactly
	// top's FOLLOW set, so the missing tNUM is inserted rather than
	// some token downstream being deleted.
	top := gast.NewRule("top", "", gast.T(1, tNUM))
	defs := []gast.RuleDef{{Name: "top", Rule: top}}
	cfg := DefaultConfig()
	cfg.RecoveryEnabled = true
	p, err := New(analysis.ClassID(insertionGrammar{}), "top", defs, nil, cfg)
	require.NoError(t, err)

	v, err := p.Parse("top", func(p *Parser) (interface{}, error) {
		return Consume(p, 1, tNUM)
	})
	require.NoError(t, err)
	require.Len(t, p.Errors(), 1)
	var mt *MismatchedTokenError
	require.ErrorAs(t, p.Errors()[0], &mt)

	inserted := v.(chevrogo.Token)
	assert.Equal(t, tNUM, inserted.TokType())
	recovered, ok := inserted.(chevrogo.Recovered)
	require.True(t, ok)
	assert.True(t, recovered.InsertedInRecovery())
}

func TestConsumeMismatchDeletionRecovery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	top := gast.NewRule("top", "", gast.T(1, tNUM))
	defs := []gast.RuleDef{{Name: "top", Rule: top}}
	cfg := DefaultConfig()
	cfg.RecoveryEnabled = true
	tokens := []chevrogo.Token{tok(tCOMMA, ","), tok(tNUM, "9")}
	p, err := New(analysis.ClassID(deletionGrammar{}), "top2", defs, tokens, cfg)
	require.NoError(t, err)

	v, err := p.Parse("top2", func(p *Parser) (interface{}, error) {
		return Consume(p, 1, tNUM)
	})
	require.NoError(t, err)
	assert.Equal(t, "9", v.(chevrogo.Token).Image())
	require.Len(t, p.Errors(), 1)
	var mt *MismatchedTokenError
	require.ErrorAs(t, p.Errors()[0], &mt)
}

func TestConsumeMismatchWithoutRecoveryIsFatal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	top := gast.NewRule("top", "", gast.T(1, tNUM))
	defs := []gast.RuleDef{{Name: "top3", Rule: top}}
	p, err := New(analysis.ClassID(fatalMismatchGrammar{}), "top3", defs, []chevrogo.Token{tok(tCOMMA, ",")}, DefaultConfig())
	require.NoError(t, err)

	_, err = p.Parse("top3", func(p *Parser) (interface{}, error) {
		return Consume(p, 1, tNUM)
	})
	require.Error(t, err)
	var mt *MismatchedTokenError
	require.ErrorAs(t, err, &mt)
	assert.Len(t, p.Errors(), 1)
}

func TestSubRuleBetweenRulesResync(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	inner := gast.NewRule("inner", "", gast.T(1, tNUM))
	top := gast.NewRule("top", "", gast.N(1, "inner"), gast.T(1, tEND))
	defs := []gast.RuleDef{
		{Name: "top", Rule: top},
		{Name: "inner", Rule: inner},
	}
	p, err := New(analysis.ClassID(subruleGrammar{}), "top", defs, []chevrogo.Token{tok(tEND, "end")}, DefaultConfig())
	require.NoError(t, err)

	innerBody := func(p *Parser) (interface{}, error) {
		return Consume(p, 1, tNUM)
	}
	_, err = p.Parse("top", func(p *Parser) (interface{}, error) {
		if _, err := SubRule(p, 1, "inner", innerBody, DefaultRuleConfig()); err != nil {
			return nil, err
		}
		return Consume(p, 1, tEND)
	})
	require.NoError(t, err)
	require.Len(t, p.Errors(), 1)
	var mt *MismatchedTokenError
	require.ErrorAs(t, p.Errors()[0], &mt)
}

func TestOrSelectsAlternative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	top := gast.NewRule("top", "", gast.Alt(1,
		gast.Seq(gast.T(1, tNUM)),
		gast.Seq(gast.T(2, tCOMMA)),
	))
	defs := []gast.RuleDef{{Name: "top", Rule: top}}
	p, err := New(analysis.ClassID(orSelectGrammar{}), "top", defs, []chevrogo.Token{tok(tCOMMA, ",")}, DefaultConfig())
	require.NoError(t, err)

	v, err := p.Parse("top", func(p *Parser) (interface{}, error) {
		return Or(p, 1, []OrAlt{
			{Body: func() (interface{}, error) { return Consume(p, 1, tNUM) }},
			{Body: func() (interface{}, error) { return Consume(p, 2, tCOMMA) }},
		})
	})
	require.NoError(t, err)
	assert.Equal(t, ",", v.(chevrogo.Token).Image())
}

func TestOrNoViableAlt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	top := gast.NewRule("top", "", gast.Alt(1,
		gast.Seq(gast.T(1, tNUM)),
		gast.Seq(gast.T(2, tCOMMA)),
	))
	defs := []gast.RuleDef{{Name: "top4", Rule: top}}
	p, err := New(analysis.ClassID(orFailGrammar{}), "top4", defs, []chevrogo.Token{tok(tEND, "end")}, DefaultConfig())
	require.NoError(t, err)

	_, err = p.Parse("top4", func(p *Parser) (interface{}, error) {
		return Or(p, 1, []OrAlt{
			{Body: func() (interface{}, error) { return Consume(p, 1, tNUM) }},
			{Body: func() (interface{}, error) { return Consume(p, 2, tCOMMA) }},
		})
	})
	var nva *NoViableAltError
	require.ErrorAs(t, err, &nva)
}

func TestMany(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	top := gast.NewRule("top", "", gast.Rep(1, gast.T(1, tNUM)))
	defs := []gast.RuleDef{{Name: "top", Rule: top}}
	tokens := []chevrogo.Token{tok(tNUM, "1"), tok(tNUM, "2")}
	p, err := New(analysis.ClassID(manyGrammar{}), "top", defs, tokens, DefaultConfig())
	require.NoError(t, err)

	count := 0
	_, err = p.Parse("top", func(p *Parser) (interface{}, error) {
		err := Many(p, 1, func() error {
			_, err := Consume(p, 1, tNUM)
			count++
			return err
		})
		return nil, err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// TestManyInRepetitionRecoverySkipsStrayToken exercises tier-2 recovery
// (§4.9): a stray token inside a MANY of NUM COMMA pairs can't be fixed
// by in-rule insertion/deletion (it matches neither FOLLOW(top) nor the
// expected COMMA), so Many consults the construct's lookahead node via
// walker.NextTerminal, skips it, and retries the iteration. Lookahead is
// bounded to one token so that "2 ?" still enters the MANY body; with a
// longer lookahead the MANY decision needs NUM COMMA and exits instead.
func TestManyInRepetitionRecoverySkipsStrayToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	top := gast.NewRule("top", "", gast.Rep(1, gast.T(1, tNUM), gast.T(2, tCOMMA)))
	defs := []gast.RuleDef{{Name: "top", Rule: top}}
	cfg := DefaultConfig()
	cfg.RecoveryEnabled = true
	cfg.MaxLookahead = 1
	tokens := []chevrogo.Token{
		tok(tNUM, "1"), tok(tCOMMA, ","),
		tok(tNUM, "2"), tok(tEND, "?"),
		tok(tNUM, "3"), tok(tCOMMA, ","),
	}
	p, err := New(analysis.ClassID(manyRepRecoveryGrammar{}), "top", defs, tokens, cfg)
	require.NoError(t, err)

	var seen []string
	_, err = p.Parse("top", func(p *Parser) (interface{}, error) {
		return nil, Many(p, 1, func() error {
			n, err := Consume(p, 1, tNUM)
			if err != nil {
				return err
			}
			seen = append(seen, n.Image())
			_, err = Consume(p, 2, tCOMMA)
			return err
		})
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, seen)
	require.Len(t, p.Errors(), 1)
	var mt *MismatchedTokenError
	require.ErrorAs(t, p.Errors()[0], &mt)
}

// TestRecoverInRepetitionStopsAtFollow tests recoverInRepetition directly:
// once LA(1) already belongs to what follows the repetition, it reports
// the construct as cleanly finished instead of trying to skip anything.
func TestRecoverInRepetitionStopsAtFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	top := gast.NewRule("top", "", gast.Rep(1, gast.T(1, tNUM)))
	defs := []gast.RuleDef{{Name: "top", Rule: top}}
	cfg := DefaultConfig()
	cfg.RecoveryEnabled = true
	p, err := New(analysis.ClassID(manyRepRecoveryStopGrammar{}), "top", defs, nil, cfg)
	require.NoError(t, err)

	p.pushRule("top", 1)
	defer p.popRule()
	assert.Equal(t, repetitionStop, p.recoverInRepetition(gast.ManyKind, 1))
}

func TestAtLeastOneEarlyExit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	top := gast.NewRule("top", "", gast.Rep1(1, gast.T(1, tNUM)))
	defs := []gast.RuleDef{{Name: "top", Rule: top}}
	p, err := New(analysis.ClassID(atLeastOneGrammar{}), "top", defs, []chevrogo.Token{tok(tEND, "end")}, DefaultConfig())
	require.NoError(t, err)

	_, err = p.Parse("top", func(p *Parser) (interface{}, error) {
		err := AtLeastOne(p, 1, func() error {
			_, err := Consume(p, 1, tNUM)
			return err
		})
		return nil, err
	})
	var ee *EarlyExitError
	require.ErrorAs(t, err, &ee)
}

func TestBacktrackRestoresState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	top := gast.NewRule("top", "", gast.T(1, tNUM))
	defs := []gast.RuleDef{{Name: "top5", Rule: top}}
	p, err := New(analysis.ClassID(backtrackGrammar{}), "top5", defs, []chevrogo.Token{tok(tNUM, "3")}, DefaultConfig())
	require.NoError(t, err)

	ok := Backtrack(p, func() error {
		_, err := Consume(p, 1, tCOMMA)
		return err
	})
	assert.False(t, ok)
	assert.Empty(t, p.Errors())
	assert.Equal(t, "3", p.LA(1).Image())

	consumed, err := Consume(p, 1, tNUM)
	require.NoError(t, err)
	assert.Equal(t, "3", consumed.Image())
}

func TestRuleStackAccessorsAndReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chevrogo.parser")
	defer teardown()

	inner := gast.NewRule("inner", "", gast.T(1, tNUM))
	top := gast.NewRule("top", "", gast.N(1, "inner"))
	defs := []gast.RuleDef{
		{Name: "top", Rule: top},
		{Name: "inner", Rule: inner},
	}
	p, err := New(analysis.ClassID(resetGrammar{}), "top", defs, []chevrogo.Token{tok(tNUM, "1")}, DefaultConfig())
	require.NoError(t, err)

	var namesDuringInner []string
	var occsDuringInner []int
	innerBody := func(p *Parser) (interface{}, error) {
		namesDuringInner = p.RuleStack()
		occsDuringInner = p.RuleOccurrenceStack()
		return Consume(p, 1, tNUM)
	}
	_, err = p.Parse("top", func(p *Parser) (interface{}, error) {
		return SubRule(p, 1, "inner", innerBody, DefaultRuleConfig())
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"top", "inner"}, namesDuringInner)
	assert.Equal(t, []int{1, 1}, occsDuringInner)
	assert.Empty(t, p.RuleStack())

	p.Reset([]chevrogo.Token{tok(tNUM, "9")})
	assert.Empty(t, p.RuleStack())
	assert.Empty(t, p.Errors())
	v, err := p.Parse("top", func(p *Parser) (interface{}, error) {
		return SubRule(p, 1, "inner", innerBody, DefaultRuleConfig())
	})
	require.NoError(t, err)
	assert.Equal(t, "9", v.(chevrogo.Token).Image())
}
