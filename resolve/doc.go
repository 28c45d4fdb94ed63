/*
Package resolve binds every gast.NonTerminal occurrence in a grammar to
the gast.Rule it names, populating ResolvedRuleRef. It runs right after
the registration checks of self-analysis (spec'd orchestration step 2): nothing downstream —
validation, FOLLOW computation, lookahead building, parsing — can run
against a grammar whose subrule references aren't resolved.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resolve
