package gast

import (
	"testing"

	"github.com/npillmayer/chevrogo"
	"github.com/stretchr/testify/assert"
)

const (
	tNUM chevrogo.TokType = iota + 1
	tCOMMA
	tLBRACK
	tRBRACK
)

func TestCloneClearsResolvedRuleRef(t *testing.T) {
	target := NewRule("num", "", T(1, tNUM))
	n := N(1, "num")
	n.ResolvedRuleRef = target
	cloned := n.Clone().(*NonTerminal)
	assert.Nil(t, cloned.ResolvedRuleRef)
	assert.Equal(t, "num", cloned.Name)
}

func TestOccurrenceOf(t *testing.T) {
	term := T(2, tNUM)
	kind, occ, ok := OccurrenceOf(term)
	assert.True(t, ok)
	assert.Equal(t, ConsumeKind, kind)
	assert.Equal(t, 2, occ)
}

func TestNullable(t *testing.T) {
	opt := Opt(1, T(1, tNUM))
	assert.True(t, Nullable(opt))

	man := Rep1(1, T(1, tNUM))
	assert.False(t, Nullable(man))
}

func TestFirstSeq(t *testing.T) {
	seq := []Production{Opt(1, T(1, tCOMMA)), T(2, tNUM)}
	first := FirstSeq(seq)
	assert.True(t, first.Contains(tCOMMA))
	assert.True(t, first.Contains(tNUM))
}

func TestFirstPathsArray(t *testing.T) {
	// [ (NUM (COMMA NUM)*)? ]
	body := []Production{
		T(1, tLBRACK),
		Opt(1, Rep1Sep(1, tCOMMA, T(2, tNUM))),
		T(2, tRBRACK),
	}
	paths := FirstPaths(body, 2)
	found := false
	for _, p := range paths {
		if len(p) == 2 && p[0] == tLBRACK && p[1] == tNUM {
			found = true
		}
	}
	assert.True(t, found, "expected a [LBRACK, NUM] path, got %v", paths)
}
