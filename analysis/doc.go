/*
Package analysis is the self-analysis orchestrator: given a grammar
class's rule registrations, it clones them into a process-wide,
sync.Once-gated cache, runs resolve then validate, and — if both produced
zero errors — computes the FOLLOW-set table and the lookahead tables
every parser built against that grammar class will share.

This mirrors the role the teacher's lr.Analysis(g) plays for an SLR(1)
grammar (computing FIRST/FOLLOW once and caching the result), generalized
from "build one set of parser tables" to "build the per-occurrence FOLLOW
and lookahead data an LL(k) recursive-descent parser consults at runtime".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package analysis
