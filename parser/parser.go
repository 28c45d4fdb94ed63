package parser

import (
	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/analysis"
	"github.com/npillmayer/chevrogo/gast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chevrogo.parser'.
func tracer() tracing.Trace {
	return tracing.Select("chevrogo.parser")
}

// RuleFunc is the shape of a hand-written rule body: given the parser
// driving it, produce a value or a recognition error.
type RuleFunc func(p *Parser) (interface{}, error)

// Parser drives one parse of a token sequence against a self-analyzed
// grammar class. It is not safe for concurrent use.
//
// Grounded on the teacher's lr/earley/earley.go Parser struct (scanner +
// position + per-state bookkeeping fields, an Errors slice collected
// across the run rather than aborting on the first failure).
type Parser struct {
	cfg    Config
	result *analysis.Result

	tokens []chevrogo.Token
	pos    int

	errors []RecognitionError

	ruleNameStack []string
	ruleOccStack  []int

	btDepth int
}

// New builds a Parser for one run of classID's grammar over tokens. The
// very first call for a given classID runs the (resolve, validate,
// FOLLOW, lookahead) self-analysis pipeline; every later call, for any
// Parser instance of that class, reuses the cached analysis.Result.
func New(classID string, topRule string, defs []gast.RuleDef, tokens []chevrogo.Token, cfg Config) (*Parser, error) {
	result, err := analysis.Analyze(classID, topRule, defs, analysis.Config{
		MaxLookahead:  cfg.MaxLookahead,
		IgnoredIssues: cfg.IgnoredIssues,
	})
	if err != nil {
		return nil, err
	}
	return &Parser{cfg: cfg, result: result, tokens: tokens}, nil
}

// LA returns the k-th lookahead token (1-based): LA(1) is the next token
// to be consumed. Positions beyond the end of the token sequence yield
// the EOF sentinel.
func (p *Parser) LA(k int) chevrogo.Token {
	idx := p.pos + k - 1
	if idx < 0 || idx >= len(p.tokens) {
		offset := 0
		if len(p.tokens) > 0 {
			offset = p.tokens[len(p.tokens)-1].EndOffset()
		}
		return chevrogo.EOFToken(offset)
	}
	return p.tokens[idx]
}

// advance consumes and returns LA(1).
func (p *Parser) advance() chevrogo.Token {
	tok := p.LA(1)
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// currentRuleName returns the name of the rule currently executing, or ""
// at the top of the stack.
func (p *Parser) currentRuleName() string {
	if len(p.ruleNameStack) == 0 {
		return ""
	}
	return p.ruleNameStack[len(p.ruleNameStack)-1]
}

// currentFollow returns the FOLLOW set of the currently executing rule's
// call site (as invoked from its caller), used by in-rule and
// in-repetition recovery to decide whether to give up on the current
// rule rather than consume more tokens.
func (p *Parser) currentFollow() *gast.TokenSet {
	if p.result.Follow == nil || len(p.ruleNameStack) == 0 {
		return nil
	}
	name := p.ruleNameStack[len(p.ruleNameStack)-1]
	occ := p.ruleOccStack[len(p.ruleOccStack)-1]
	if len(p.ruleNameStack) == 1 {
		return p.result.Follow.EOF()
	}
	caller := p.ruleNameStack[len(p.ruleNameStack)-2]
	return p.result.Follow.Get(name, occ, caller)
}

// backtracking reports whether the parser is currently inside a
// Backtrack attempt, i.e. a speculative sub-parse whose errors must not
// be recorded or recovered from — only reported back as a plain failure.
func (p *Parser) backtracking() bool {
	return p.btDepth > 0
}

// recordError appends err to the parser's error list, unless a
// speculative Backtrack attempt is in progress.
func (p *Parser) recordError(err RecognitionError) {
	if p.backtracking() {
		return
	}
	p.errors = append(p.errors, err)
}

// Errors returns every recognition error recorded during the run so far.
func (p *Parser) Errors() []RecognitionError {
	return append([]RecognitionError(nil), p.errors...)
}

func (p *Parser) ruleStackSnapshot() ([]string, []int) {
	return append([]string(nil), p.ruleNameStack...), append([]int(nil), p.ruleOccStack...)
}

// RuleStack returns the names of the rules currently on the call stack,
// outermost first.
func (p *Parser) RuleStack() []string {
	names, _ := p.ruleStackSnapshot()
	return names
}

// RuleOccurrenceStack returns the occurrence index each rule on the call
// stack was invoked at, outermost first, aligned with RuleStack.
func (p *Parser) RuleOccurrenceStack() []int {
	_, occs := p.ruleStackSnapshot()
	return occs
}

// Reset rewinds the parser to run again from the start of a (possibly
// new) token sequence, discarding position, call stack and recorded
// errors from any previous run. The cached grammar analysis is kept.
func (p *Parser) Reset(tokens []chevrogo.Token) {
	p.tokens = tokens
	p.pos = 0
	p.errors = nil
	p.ruleNameStack = nil
	p.ruleOccStack = nil
	p.btDepth = 0
}

func (p *Parser) pushRule(name string, occ int) {
	p.ruleNameStack = append(p.ruleNameStack, name)
	p.ruleOccStack = append(p.ruleOccStack, occ)
}

func (p *Parser) popRule() {
	p.ruleNameStack = p.ruleNameStack[:len(p.ruleNameStack)-1]
	p.ruleOccStack = p.ruleOccStack[:len(p.ruleOccStack)-1]
}

// Parse runs the top rule over the whole token sequence and checks that
// every token was consumed. An error returned by body is passed back to
// the caller as is: Parse itself performs no between-rules re-sync.
func (p *Parser) Parse(topRuleName string, body RuleFunc) (interface{}, error) {
	p.pushRule(topRuleName, 1)
	v, err := body(p)
	p.popRule()
	if err != nil {
		return v, err
	}
	if !chevrogo.IsEOF(p.LA(1)) {
		names, occs := p.ruleStackSnapshot()
		e := &NotAllInputParsedError{baseError{tok: p.LA(1), ruleStack: names, ruleOccStack: occs}}
		p.recordError(e)
		return v, e
	}
	return v, nil
}
