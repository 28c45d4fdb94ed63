package gast

import (
	"github.com/npillmayer/chevrogo"
	"github.com/npillmayer/chevrogo/gast/iteratable"
)

func tokTypeComparator(a, b interface{}) int {
	ta, tb := a.(chevrogo.TokType), b.(chevrogo.TokType)
	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	default:
		return 0
	}
}

// TokenSet is a set of token types, used throughout the analysis pipeline
// for FIRST and FOLLOW sets. It is a thin, typed wrapper over
// gast/iteratable.Set.
type TokenSet struct {
	set *iteratable.Set
}

// NewTokenSet builds a TokenSet containing the given token types.
func NewTokenSet(tt ...chevrogo.TokType) *TokenSet {
	s := &TokenSet{set: iteratable.New(tokTypeComparator)}
	for _, t := range tt {
		s.set.Add(t)
	}
	return s
}

// Add inserts tt into the set.
func (s *TokenSet) Add(tt chevrogo.TokType) {
	s.set.Add(tt)
}

// Contains reports whether tt is a member.
func (s *TokenSet) Contains(tt chevrogo.TokType) bool {
	return s.set.Contains(tt)
}

// Size returns the number of members.
func (s *TokenSet) Size() int {
	return s.set.Size()
}

// Empty reports whether the set has no members.
func (s *TokenSet) Empty() bool {
	return s.set.Empty()
}

// Values returns the members in a deterministic order.
func (s *TokenSet) Values() []chevrogo.TokType {
	vals := s.set.Values()
	out := make([]chevrogo.TokType, len(vals))
	for i, v := range vals {
		out[i] = v.(chevrogo.TokType)
	}
	return out
}

// Copy returns an independent copy of s.
func (s *TokenSet) Copy() *TokenSet {
	cp := NewTokenSet()
	cp.set = s.set.Copy()
	return cp
}

// UnionInPlace merges other into s and reports whether s grew.
func (s *TokenSet) UnionInPlace(other *TokenSet) bool {
	if other == nil {
		return false
	}
	before := s.set.Size()
	s.set.Union(other.set)
	return s.set.Size() != before
}

// Union returns a new TokenSet holding the members of both s and other.
func (s *TokenSet) Union(other *TokenSet) *TokenSet {
	cp := s.Copy()
	cp.UnionInPlace(other)
	return cp
}
