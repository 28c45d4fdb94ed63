/*
Package chevrogo defines the external contracts shared by every other
package in the module: the token and span types a scanner must produce,
and nothing else. chevrogo itself never lexes, never builds a grammar
and never parses — those are the jobs of gast, analysis and parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chevrogo
