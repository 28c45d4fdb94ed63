/*
Package parser implements the LL(k) recursive-descent parser runtime: the
DSL primitives a hand-written (or generated) rule body calls — Consume,
SubRule, Option, Or, Many, ManySep, AtLeastOne, AtLeastOneSep, Backtrack —
plus the rule-wrapper state machine and the three-tier error-recovery
scheme (in-rule single-token recovery, in-repetition recovery, between-
rules re-sync) built on top of the FOLLOW and lookahead tables package
analysis precomputes.

A parser instance is single-threaded, cooperative and not safe for
concurrent use: every DSL primitive runs to completion synchronously, and
LA is a pure read of the token sequence. Rule bodies are plain Go
functions of type RuleFunc, propagating failure via a normal (value,
error) return rather than a panic/recover or exception mechanism — a
deliberate redesign from the exception-based original (see the module's
design notes): Go's explicit error return already gives the "does this
alternative fail" signal Backtrack and the rule wrapper need, without
resorting to control-flow-by-panic.

Grounded on the teacher's lr/earley/earley.go and lr/glr/glr.go Parser
struct shapes (scanner/state fields, an Error hook, tracer()-based
per-decision logging), retargeted from "build a parse forest" to
"execute a recursive-descent rule body with lookahead and recovery".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser
