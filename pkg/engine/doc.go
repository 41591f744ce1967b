/*
Package engine implements changed-path filter evaluation.

A filter is a named, ordered list of glob patterns with optional leading
"!" negation. For one path, patterns are scanned in declaration order and
the last matching pattern decides inclusion. Filter definitions are parsed
from a small line-oriented format ("name:" followed by "- pattern" lines),
and a set of filters is aggregated over a changed-file list into one
boolean per filter under an any-match or all-match quantifier.

The engine is pure: no I/O, no environment access, no shared mutable
state. Compiled patterns and filters are immutable and safe to share
across goroutines.
*/
package engine
