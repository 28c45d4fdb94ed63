package iteratable

import (
	"github.com/emirpasic/gods/sets/treeset"
	godsutils "github.com/emirpasic/gods/utils"
)

// Set is a destructive, ordered set of comparable values. It wraps a gods
// treeset so membership tests and single insertions are O(log n) and the
// iteration order is deterministic, which matters for reproducible error
// messages and dumps.
type Set struct {
	tree       *treeset.Set
	comparator godsutils.Comparator
	cursor     int
}

// New creates an empty Set ordered by comparator.
func New(comparator godsutils.Comparator) *Set {
	return &Set{tree: treeset.NewWith(comparator), comparator: comparator}
}

// NewStrings creates a Set of strings.
func NewStrings(values ...string) *Set {
	s := New(godsutils.StringComparator)
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// NewInts creates a Set of ints.
func NewInts(values ...int) *Set {
	s := New(godsutils.IntComparator)
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v, if not already present.
func (s *Set) Add(v interface{}) {
	s.tree.Add(v)
}

// Remove deletes v from the set.
func (s *Set) Remove(v interface{}) {
	s.tree.Remove(v)
}

// Contains reports whether v is a member.
func (s *Set) Contains(v interface{}) bool {
	return s.tree.Contains(v)
}

// Size returns the number of members.
func (s *Set) Size() int {
	return s.tree.Size()
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return s.tree.Empty()
}

// Values returns the members in comparator order.
func (s *Set) Values() []interface{} {
	return s.tree.Values()
}

// Union adds every member of other to s, in place.
func (s *Set) Union(other *Set) {
	if other == nil {
		return
	}
	for _, v := range other.Values() {
		s.tree.Add(v)
	}
}

// Copy returns an independent copy of s.
func (s *Set) Copy() *Set {
	cp := New(s.comparator)
	cp.Union(s)
	return cp
}

// IterateOnce resets the destructive iteration cursor to the beginning.
// Repeated Next/Item calls walk the set in comparator order, including
// members Add-ed to the set after IterateOnce was called but before the
// cursor reaches them — the property fixpoint computations (reachability,
// closure) over a growing set rely on.
func (s *Set) IterateOnce() {
	s.cursor = 0
}

// Next advances the cursor and reports whether an Item is available.
func (s *Set) Next() bool {
	if s.cursor >= s.tree.Size() {
		return false
	}
	s.cursor++
	return true
}

// Item returns the value at the current cursor position. Only valid after
// a Next call returned true.
func (s *Set) Item() interface{} {
	return s.tree.Values()[s.cursor-1]
}
