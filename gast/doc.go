/*
Package gast defines the grammar abstract syntax tree: the tagged-variant
node types a grammar's rules are built out of (Rule, Flat, NonTerminal,
Terminal, Option, Repetition, RepetitionMandatory, RepetitionWithSeparator,
RepetitionMandatoryWithSeparator, Alternation), a Visitor/Walk pair for
traversing them, deep Clone, and the small set of pure structural queries
(Nullable, First, FirstPaths) the resolver, validator and analysis packages
all build on.

gast never resolves, validates or analyzes a grammar by itself — it only
describes the shape of one and offers the read-only queries every other
package needs in common, so that "is this production nullable" or "what can
appear first" isn't reimplemented three times.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gast
