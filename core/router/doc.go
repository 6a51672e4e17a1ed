// Package router builds the route tree from a declared Api and dispatches
// requests against it.
//
// Construction happens once, at build or cold-start time: the flat route
// list is folded into a prefix tree of fixed, variable and static nodes,
// each carrying a per-method map of handlers already wrapped in their filter
// chain. Construction validates the declaration as a whole: duplicate
// (method, path) pairs, conflicting variable names at one position and
// malformed static-file nodes are all reported together, so a broken API
// never serves traffic.
//
// Once built, the tree is immutable. Match walks it without locks or
// allocation beyond the bindings map, so any number of requests may be
// dispatched concurrently. Literal children are always tried before the
// variable child, making "/foo/bar" win over "/foo/{x}" for a request to
// "/foo/bar".
package router
