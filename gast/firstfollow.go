package gast

// Nullable reports whether p can derive the empty string. It assumes the
// grammar has already passed the left-recursion check (validate package);
// on an unresolved NonTerminal it conservatively returns true so the
// caller's FIRST computation keeps widening rather than stopping early.
func Nullable(p Production) bool {
	return nullable(p, nil)
}

// NullableSeq reports whether every element of seq is nullable, i.e.
// whether the whole sequence can derive the empty string.
func NullableSeq(seq []Production) bool {
	for _, p := range seq {
		if !Nullable(p) {
			return false
		}
	}
	return true
}

func nullableSeqSeen(seq []Production, seen map[*Rule]bool) bool {
	for _, p := range seq {
		if !nullable(p, seen) {
			return false
		}
	}
	return true
}

func nullable(p Production, seen map[*Rule]bool) bool {
	switch n := p.(type) {
	case *Terminal:
		return false
	case *NonTerminal:
		if n.ResolvedRuleRef == nil {
			return true
		}
		if seen[n.ResolvedRuleRef] {
			return false
		}
		seen2 := extend(seen, n.ResolvedRuleRef)
		return nullableSeqSeen(n.ResolvedRuleRef.Definition, seen2)
	case *Option:
		return true
	case *Repetition:
		return true
	case *RepetitionMandatory:
		return nullableSeqSeen(n.Definition, seen)
	case *RepetitionWithSeparator:
		return true
	case *RepetitionMandatoryWithSeparator:
		return nullableSeqSeen(n.Definition, seen)
	case *Alternation:
		for i := range n.Definition {
			if nullableSeqSeen(n.Definition[i].Definition, seen) {
				return true
			}
		}
		return false
	}
	return false
}

// First returns the single-token FIRST set of p.
func First(p Production) *TokenSet {
	return first(p, nil)
}

// FirstSeq returns the single-token FIRST set of a whole sequence,
// correctly widening past nullable prefix elements.
func FirstSeq(seq []Production) *TokenSet {
	return firstSeqSeen(seq, nil)
}

func firstSeqSeen(seq []Production, seen map[*Rule]bool) *TokenSet {
	out := NewTokenSet()
	for _, p := range seq {
		out.UnionInPlace(first(p, seen))
		if !nullable(p, seen) {
			break
		}
	}
	return out
}

func first(p Production, seen map[*Rule]bool) *TokenSet {
	switch n := p.(type) {
	case *Terminal:
		return NewTokenSet(n.TokenType)
	case *NonTerminal:
		if n.ResolvedRuleRef == nil {
			return NewTokenSet()
		}
		if seen[n.ResolvedRuleRef] {
			return NewTokenSet()
		}
		seen2 := extend(seen, n.ResolvedRuleRef)
		return firstSeqSeen(n.ResolvedRuleRef.Definition, seen2)
	case *Option:
		return firstSeqSeen(n.Definition, seen)
	case *Repetition:
		return firstSeqSeen(n.Definition, seen)
	case *RepetitionMandatory:
		return firstSeqSeen(n.Definition, seen)
	case *RepetitionWithSeparator:
		return firstSeqSeen(n.Definition, seen)
	case *RepetitionMandatoryWithSeparator:
		return firstSeqSeen(n.Definition, seen)
	case *Alternation:
		out := NewTokenSet()
		for i := range n.Definition {
			out.UnionInPlace(firstSeqSeen(n.Definition[i].Definition, seen))
		}
		return out
	}
	return NewTokenSet()
}

func extend(seen map[*Rule]bool, r *Rule) map[*Rule]bool {
	out := make(map[*Rule]bool, len(seen)+1)
	for k, v := range seen {
		out[k] = v
	}
	out[r] = true
	return out
}
