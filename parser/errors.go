package parser

import (
	"fmt"

	"github.com/npillmayer/chevrogo"
)

// RecognitionError is the common interface of every parse-time error kind
// (MismatchedToken, NoViableAlt, EarlyExit, NotAllInputParsed). It carries
// enough context — the offending token, the rule call stack at the point
// of failure, and (once recovery has run) the tokens skipped during
// between-rules re-sync — to build a useful diagnostic.
type RecognitionError interface {
	error
	Token() chevrogo.Token
	RuleStack() []string
	RuleOccurrenceStack() []int
	ResyncedTokens() []chevrogo.Token
}

type baseError struct {
	tok            chevrogo.Token
	ruleStack      []string
	ruleOccStack   []int
	resyncedTokens []chevrogo.Token
}

func (e *baseError) Token() chevrogo.Token { return e.tok }

func (e *baseError) RuleStack() []string {
	return append([]string(nil), e.ruleStack...)
}

func (e *baseError) RuleOccurrenceStack() []int {
	return append([]int(nil), e.ruleOccStack...)
}

func (e *baseError) ResyncedTokens() []chevrogo.Token {
	return e.resyncedTokens
}

func (e *baseError) setResynced(toks []chevrogo.Token) {
	e.resyncedTokens = toks
}

// MismatchedTokenError reports that CONSUME expected one terminal type and
// found another.
type MismatchedTokenError struct {
	baseError
	Expected chevrogo.TokType
}

func (e *MismatchedTokenError) Error() string {
	return fmt.Sprintf("mismatched token: expected type %v, found %q (type %v)",
		e.Expected, e.tok.Image(), e.tok.TokType())
}

// NoViableAltError reports that no OR alternative both matched the
// lookahead and passed its gate predicate (if it had one).
type NoViableAltError struct {
	baseError
	Message string
}

func (e *NoViableAltError) Error() string {
	return fmt.Sprintf("no viable alternative at %q: %s", e.tok.Image(), e.Message)
}

// EarlyExitError reports that an AT_LEAST_ONE / AT_LEAST_ONE_SEP construct
// matched zero iterations.
type EarlyExitError struct {
	baseError
	Message string
}

func (e *EarlyExitError) Error() string {
	return fmt.Sprintf("early exit at %q: %s", e.tok.Image(), e.Message)
}

// NotAllInputParsedError reports that the top rule succeeded but LA(1) was
// not EOF.
type NotAllInputParsedError struct {
	baseError
}

func (e *NotAllInputParsedError) Error() string {
	return fmt.Sprintf("not all input parsed: unexpected %q (type %v) after top rule", e.tok.Image(), e.tok.TokType())
}

func setResynced(re RecognitionError, toks []chevrogo.Token) {
	if s, ok := re.(interface{ setResynced([]chevrogo.Token) }); ok {
		s.setResynced(toks)
	}
}
