package routepath

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind discriminates segment variants.
type Kind uint8

const (
	// KindLiteral matches a segment by exact text.
	KindLiteral Kind = iota
	// KindVariable matches any single segment and binds its text to a name.
	KindVariable
)

var (
	variableRe = regexp.MustCompile(`^\{(\w+)\}$`)
	literalRe  = regexp.MustCompile(`^[A-Za-z0-9_\-~.()]+$`)
)

// Segment is one slash-delimited unit of a path, parsed once and immutable.
type Segment struct {
	kind  Kind
	value string // literal text, or the variable name without braces
}

// Literal constructs a literal segment without grammar validation.
func Literal(text string) Segment {
	return Segment{kind: KindLiteral, value: text}
}

// Variable constructs a variable segment bound to name.
func Variable(name string) Segment {
	return Segment{kind: KindVariable, value: name}
}

// Parse classifies a single slash-delimited token. A token of the form
// "{name}" (name = one or more word characters) becomes a variable; any
// other token is kept verbatim as a literal.
func Parse(token string) Segment {
	if m := variableRe.FindStringSubmatch(token); m != nil {
		return Segment{kind: KindVariable, value: m[1]}
	}
	return Segment{kind: KindLiteral, value: token}
}

// Kind reports the segment variant.
func (s Segment) Kind() Kind { return s.kind }

// IsVariable reports whether the segment binds a path variable.
func (s Segment) IsVariable() bool { return s.kind == KindVariable }

// Value returns the literal text for literal segments, or the variable name
// for variable segments.
func (s Segment) Value() string { return s.value }

// String renders the segment in path syntax.
func (s Segment) String() string {
	if s.kind == KindVariable {
		return "{" + s.value + "}"
	}
	return s.value
}

// Tokens splits a path into its raw slash-delimited tokens. Empty tokens
// produced by leading, trailing or duplicate slashes are dropped, so "/"
// yields an empty slice.
func Tokens(path string) []string {
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Split parses a path into its ordered segment list.
func Split(path string) []Segment {
	tokens := Tokens(path)
	segs := make([]Segment, len(tokens))
	for i, t := range tokens {
		segs[i] = Parse(t)
	}
	return segs
}

// Join renders a segment list back into canonical path syntax. An empty
// list renders as "/".
func Join(segs []Segment) string {
	if len(segs) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// ValidateRoute checks a route path against the strict route grammar:
// "/" alone, or one or more "/literal" or "/{name}" parts.
func ValidateRoute(path string) error {
	return validate(path, true, false)
}

// ValidateStatic checks a static-files path. Variable segments are not
// permitted because a file prefix must be concrete.
func ValidateStatic(path string) error {
	return validate(path, false, false)
}

// ValidateFilter checks a filter pattern, which permits literal segments,
// "{name}" wildcards and bare "*" wildcards.
func ValidateFilter(pattern string) error {
	return validate(pattern, true, true)
}

func validate(path string, allowVariables, allowStars bool) error {
	if path == "" || path[0] != '/' {
		return fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPath, path)
	}
	for _, token := range Tokens(path) {
		switch {
		case variableRe.MatchString(token):
			if !allowVariables {
				return fmt.Errorf("%w: %q contains variable segment %q", ErrInvalidPath, path, token)
			}
		case token == "*":
			if !allowStars {
				return fmt.Errorf("%w: %q contains wildcard segment", ErrInvalidPath, path)
			}
		case literalRe.MatchString(token):
			// valid literal
		default:
			return fmt.Errorf("%w: %q contains illegal segment %q", ErrInvalidPath, path, token)
		}
	}
	return nil
}
