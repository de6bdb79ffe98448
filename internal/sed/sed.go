// Package sed provides sed-style text substitution for the line buffer.
//
// Supports the familiar s/old/new/ syntax with optional 'g' flag for global
// replacement. Alternate delimiters (s|old|new|) work too. Without 'g' only
// the first match on each line is replaced, as sed does. Only substitution
// commands are supported - other sed features are out of scope.
package sed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrInvalidExpr is returned when a sed expression is malformed.
	ErrInvalidExpr = errors.New("invalid sed expression")
	// ErrUnsupportedCommand is returned for non-substitution commands.
	ErrUnsupportedCommand = errors.New("only substitution (s) commands are supported")
	// ErrTextNotFound is returned when the search text is not in the buffer.
	ErrTextNotFound = errors.New("text not found")
)

// Replacer is the subset of service.Service that sed needs.
type Replacer interface {
	Replace(search, replace string, global bool) (int, error)
}

// Result contains the outcome of a sed operation.
type Result struct {
	Path  string `json:"path,omitempty"`
	Count int    `json:"count"`
}

// Expr represents a parsed sed expression.
type Expr struct {
	Old    string
	New    string
	Global bool // 'g' flag - replace all occurrences on each line
}

// Run parses expr and applies it to the buffer behind svc. path only labels
// the output. Zero matches return ErrTextNotFound; the buffer is unchanged
// but the attempt still occupies one undo entry.
func Run(ctx context.Context, w io.Writer, svc Replacer, path, expr string) (Result, error) {
	result := Result{Path: path}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	parsed, err := ParseExpr(expr)
	if err != nil {
		return result, err
	}

	n, err := svc.Replace(parsed.Old, parsed.New, parsed.Global)
	if err != nil {
		return result, err
	}
	result.Count = n
	if n == 0 {
		return result, fmt.Errorf("%w: %q", ErrTextNotFound, parsed.Old)
	}

	label := path
	if label == "" {
		label = "buffer"
	}
	fmt.Fprintf(w, "Edited %s (%d replaced)\n", label, n)
	return result, nil
}

// ParseExpr parses a sed substitution expression like s/old/new/ or s|old|new|g.
func ParseExpr(expr string) (Expr, error) {
	if len(expr) < 4 {
		return Expr{}, ErrInvalidExpr
	}

	if expr[0] != 's' {
		return Expr{}, ErrUnsupportedCommand
	}

	delim := expr[1]
	rest := expr[2:]

	parts := splitByDelim(rest, delim)
	if len(parts) < 2 {
		return Expr{}, fmt.Errorf("%w: expected s%cold%cnew%c", ErrInvalidExpr, delim, delim, delim)
	}
	if parts[0] == "" {
		return Expr{}, fmt.Errorf("%w: search text is empty", ErrInvalidExpr)
	}

	result := Expr{
		Old: parts[0],
		New: parts[1],
	}

	// Check for flags (third part after final delimiter)
	if len(parts) >= 3 {
		flags := parts[2]
		if strings.Contains(flags, "g") {
			result.Global = true
		}
	}

	return result, nil
}

// splitByDelim splits a string by delimiter, respecting escaped delimiters.
// Empty fields are kept so s/old// parses to an empty replacement.
func splitByDelim(s string, delim byte) []string {
	var parts []string
	var current strings.Builder
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			if c != delim && c != '\\' {
				current.WriteByte('\\')
			}
			current.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == delim {
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteByte(c)
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}
