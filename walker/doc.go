/*
Package walker implements a small grammar walker used by the parser's
in-repetition recovery (spec'd orchestration §4.9): given the GAST node a
MANY/AT_LEAST_ONE/*_SEP construct is built from, NextTerminal returns the
terminal token type recovery should expect to see at the start of another
iteration.

Grounded on the teacher's parse-forest visitor style (lr/sppf/visit.go),
adapted from "visit a parse forest node" to "visit a grammar production
node" — a lighter-weight, heuristic sibling of gast.FirstPaths: it wants
a single representative terminal to resync toward, not the full set of
k-token paths.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package walker
