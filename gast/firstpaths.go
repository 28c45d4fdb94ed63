package gast

import "github.com/npillmayer/chevrogo"

// FirstPaths enumerates the distinct token-type sequences, each of length
// up to k, that can appear at the very start of whatever seq derives. A
// path shorter than k means the alternative is fully determined before k
// tokens of lookahead are available (e.g. seq can only ever produce one
// or two tokens total); it still participates in prefix matching against
// an actual lookahead window.
//
// This is the shared engine behind the lookahead builder's per-occurrence
// decision tables (package analysis) and the validator's ambiguous-
// alternatives check (package validate) — both need "what k-token prefixes
// can this construct start with", just for different occurrences.
func FirstPaths(seq []Production, k int) [][]chevrogo.TokType {
	return pathsFrom(seq, k, nil)
}

func pathsFrom(seq []Production, k int, visiting map[*Rule]bool) [][]chevrogo.TokType {
	if k <= 0 || len(seq) == 0 {
		return [][]chevrogo.TokType{nil}
	}
	head, rest := seq[0], seq[1:]
	var out [][]chevrogo.TokType
	for _, hp := range prodPaths(head, k, visiting) {
		remaining := k - len(hp)
		if remaining <= 0 {
			out = append(out, hp)
			continue
		}
		for _, rp := range pathsFrom(rest, remaining, visiting) {
			out = append(out, concatPath(hp, rp))
		}
	}
	return dedupPaths(out)
}

func prodPaths(p Production, k int, visiting map[*Rule]bool) [][]chevrogo.TokType {
	switch n := p.(type) {
	case *Terminal:
		return [][]chevrogo.TokType{{n.TokenType}}
	case *NonTerminal:
		if n.ResolvedRuleRef == nil || visiting[n.ResolvedRuleRef] {
			return [][]chevrogo.TokType{nil}
		}
		return pathsFrom(n.ResolvedRuleRef.Definition, k, extend(visiting, n.ResolvedRuleRef))
	case *Option:
		return dedupPaths(append([][]chevrogo.TokType{nil}, pathsFrom(n.Definition, k, visiting)...))
	case *Repetition:
		return dedupPaths(append([][]chevrogo.TokType{nil}, pathsFrom(n.Definition, k, visiting)...))
	case *RepetitionMandatory:
		return pathsFrom(n.Definition, k, visiting)
	case *RepetitionWithSeparator:
		return dedupPaths(append([][]chevrogo.TokType{nil}, pathsFrom(n.Definition, k, visiting)...))
	case *RepetitionMandatoryWithSeparator:
		return pathsFrom(n.Definition, k, visiting)
	case *Alternation:
		var out [][]chevrogo.TokType
		for i := range n.Definition {
			out = append(out, pathsFrom(n.Definition[i].Definition, k, visiting)...)
		}
		return dedupPaths(out)
	}
	return [][]chevrogo.TokType{nil}
}

func concatPath(a, b []chevrogo.TokType) []chevrogo.TokType {
	out := make([]chevrogo.TokType, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func pathKey(p []chevrogo.TokType) string {
	b := make([]byte, 0, len(p)*4+1)
	for _, tt := range p {
		b = append(b, byte(tt), byte(tt>>8), byte(tt>>16), byte(tt>>24))
	}
	return string(b)
}

func dedupPaths(paths [][]chevrogo.TokType) [][]chevrogo.TokType {
	seen := make(map[string]bool, len(paths))
	out := make([][]chevrogo.TokType, 0, len(paths))
	for _, p := range paths {
		key := pathKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// MatchesAny reports whether the lookahead window produced by la matches
// at least one of paths as a prefix. la(i) must return the i-th lookahead
// token (1-based, as in the parser's LA(k)). The empty path always
// matches, which is what makes an epsilon alternative (invariant I6)
// always selectable.
func MatchesAny(paths [][]chevrogo.TokType, la func(int) chevrogo.TokType) bool {
	for _, p := range paths {
		if MatchesPath(p, la) {
			return true
		}
	}
	return false
}

// MatchesPath reports whether path is a prefix of the lookahead window.
func MatchesPath(path []chevrogo.TokType, la func(int) chevrogo.TokType) bool {
	for i, tt := range path {
		if la(i+1) != tt {
			return false
		}
	}
	return true
}
