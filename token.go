package chevrogo

import "fmt"

// TokType is a category type for a Token. No constants are defined here;
// it is up to a concrete grammar (and its scanner) to define them. EOFType
// is the one reserved value every scanner/parser pairing must agree on.
type TokType int

// EOFType marks the synthetic end-of-input token every token sequence is
// implicitly terminated with, regardless of what the scanner produced.
const EOFType TokType = -1

// TokTypeStringer is provided by a scanner/grammar pairing to render a
// TokType for diagnostics and tracing.
type TokTypeStringer func(TokType) string

// Token is the contract the parsing engine requires of every lexical
// token, however it was produced. CONSUME and the lookahead machinery
// only ever observe a grammar through this interface.
type Token interface {
	TokType() TokType
	Image() string
	Line() int
	Column() int
	StartOffset() int
	EndOffset() int
}

// TokenRetriever fetches a token by index into some backing sequence.
type TokenRetriever func(int) Token

// IsEOF reports whether t carries the EOF sentinel type.
func IsEOF(t Token) bool {
	return t == nil || t.TokType() == EOFType
}

// Recovered is implemented by tokens manufactured during single-token
// insertion recovery (§4.9): such a token was never present in the input,
// it stands in for one the parser expected but didn't find.
type Recovered interface {
	Token
	InsertedInRecovery() bool
}

// simpleToken is a minimal, comparable Token implementation used for the
// EOF sentinel and for tokens synthesized by in-rule recovery.
type simpleToken struct {
	tokType   TokType
	image     string
	line      int
	column    int
	start     int
	end       int
	recovered bool
}

func (t *simpleToken) TokType() TokType          { return t.tokType }
func (t *simpleToken) Image() string             { return t.image }
func (t *simpleToken) Line() int                 { return t.line }
func (t *simpleToken) Column() int               { return t.column }
func (t *simpleToken) StartOffset() int          { return t.start }
func (t *simpleToken) EndOffset() int            { return t.end }
func (t *simpleToken) InsertedInRecovery() bool  { return t.recovered }

func (t *simpleToken) String() string {
	return fmt.Sprintf("%v(%q)@%d:%d", t.tokType, t.image, t.line, t.column)
}

// NewToken builds a plain Token value. Most callers will have their own
// scanner-specific Token implementation; this is mainly a convenience for
// tests and for the recovery machinery below.
func NewToken(tt TokType, image string, line, column, start, end int) Token {
	return &simpleToken{tokType: tt, image: image, line: line, column: column, start: start, end: end}
}

// EOFToken manufactures the sentinel token returned whenever LA(k) is
// asked for a position beyond the end of the token sequence.
func EOFToken(offset int) Token {
	return &simpleToken{tokType: EOFType, image: "", start: offset, end: offset}
}

// SyntheticToken manufactures a token of type tt standing in for one the
// parser expected but never received, positioned at near's location. Used
// by single-token insertion recovery; never consumes input.
func SyntheticToken(tt TokType, near Token) Token {
	tok := &simpleToken{tokType: tt, image: "", recovered: true}
	if near != nil {
		tok.line, tok.column, tok.start, tok.end = near.Line(), near.Column(), near.StartOffset(), near.StartOffset()
	}
	return tok
}
