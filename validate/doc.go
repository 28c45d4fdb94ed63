/*
Package validate runs the structural checks the resolver doesn't: rule
registration sanity (names, duplicates, overrides) and grammar-shape
invariants (duplicate occurrence indices, left recursion, alternative
ordering, alternative ambiguity).

ValidateRegistration must run first, against the raw registration list,
since it is the one pass allowed to see duplicate names (a map could
never expose that on its own). ValidateGrammar runs afterwards, once the
resolver has bound every subrule reference, and only if registration and
resolution both produced zero errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package validate
