// Package filter implements path-pattern-gated handler wrappers.
//
// A filter carries a pattern of literal and wildcard segments and a wrapper
// function. Patterns are matched per request against the concrete path,
// independently of the route tree. Both "*" and "{name}" segments act as
// anonymous single-segment wildcards in a pattern (the name is ignored,
// nothing is bound), and a trailing "*" greedily matches all remaining
// segments.
package filter
