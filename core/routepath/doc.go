// Package routepath provides the segment model shared by route declarations,
// filter patterns and the request dispatcher.
//
// A path is an ordered list of slash-delimited segments. Each segment is
// either a literal that matches by exact text, or a variable written as
// "{name}" that matches any single segment and binds its text under that
// name. Splitting tolerates leading, trailing and duplicate slashes, so
// "/users/", "users" and "//users" all split to the same segment list.
//
// Route paths follow a strict grammar enforced at declaration time: "/" or
// one or more "/literal" or "/{name}" parts, with literal characters limited
// to [A-Za-z0-9_\-~.()]. Filter patterns additionally allow a bare "*"
// segment; in a filter, both "*" and "{name}" act as anonymous wildcards.
package routepath
