package gast

import "fmt"

// ErrorKind enumerates the definition-time (grammar-shape) error kinds the
// resolver and validator can raise.
type ErrorKind int

const (
	InvalidRuleName ErrorKind = iota
	DuplicateRuleName
	InvalidRuleOverride
	DuplicateProductions
	UnresolvedSubruleRef
	LeftRecursion
	NoneLastEmptyAlt
	AmbiguousAlts
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidRuleName:
		return "INVALID_RULE_NAME"
	case DuplicateRuleName:
		return "DUPLICATE_RULE_NAME"
	case InvalidRuleOverride:
		return "INVALID_RULE_OVERRIDE"
	case DuplicateProductions:
		return "DUPLICATE_PRODUCTIONS"
	case UnresolvedSubruleRef:
		return "UNRESOLVED_SUBRULE_REF"
	case LeftRecursion:
		return "LEFT_RECURSION"
	case NoneLastEmptyAlt:
		return "NONE_LAST_EMPTY_ALT"
	case AmbiguousAlts:
		return "AMBIGUOUS_ALTS"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// DefinitionError describes a single definition-time grammar defect.
type DefinitionError struct {
	Kind         ErrorKind
	RuleName     string
	Message      string
	DSLKind      DSLKind
	Occurrence   int
	Alternatives []int // alternative indices involved, for AmbiguousAlts
}

func (e *DefinitionError) Error() string {
	if e.RuleName == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: rule %q: %s", e.Kind, e.RuleName, e.Message)
}

// RuleDef is a single rule registration, as submitted to the resolver and
// validator. Registrations are kept as a list rather than pre-deduplicated
// into a map so that duplicate names are still observable (a map could
// never expose DUPLICATE_RULE_NAME on its own).
type RuleDef struct {
	Name     string
	Rule     *Rule
	Override bool
}

// IgnoredIssues silences specific (rule, kind:occurrence) validator
// findings that a grammar author has reviewed and accepted, keyed first by
// rule name then by "<DSLKind>:<occurrence>".
type IgnoredIssues map[string]map[string]bool

// Ignores reports whether issue kind/occurrence in ruleName was
// deliberately silenced.
func (ii IgnoredIssues) Ignores(ruleName string, kind DSLKind, occurrence int) bool {
	if ii == nil {
		return false
	}
	return ii[ruleName][fmt.Sprintf("%s:%d", kind, occurrence)]
}
