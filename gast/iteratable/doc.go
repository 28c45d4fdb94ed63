/*
Package iteratable implements a small iteratable container data structure
used by the grammar-analysis packages (left-recursion detection, FOLLOW-set
accumulation). Suitable mainly for algorithms around scanners, parsers and
grammar analysis, which are often more straightforward to describe as set
constructions and operations.

Unusually, all set operations are destructive.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
