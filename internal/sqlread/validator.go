package sqlread

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/glance/pkg/types"
)

// prohibitedKeywords are the tokens whose presence outside comments and
// string literals indicates write or DDL intent. Matched as whole words:
// a column named updated_at does not trip UPDATE.
var prohibitedKeywords = map[string]bool{
	"INSERT":   true,
	"UPDATE":   true,
	"DELETE":   true,
	"DROP":     true,
	"CREATE":   true,
	"ALTER":    true,
	"TRUNCATE": true,
	"REPLACE":  true,
	"ATTACH":   true,
	"DETACH":   true,
	"PRAGMA":   true,
}

// Query is a query string that has passed ValidateQuery. Once constructed
// it is guaranteed to begin, after comment stripping, with SELECT or WITH
// and to contain no prohibited keyword outside comments and literals.
type Query struct {
	text string
}

// String returns the original query text, not the stripped form.
func (q Query) String() string { return q.text }

// ValidateQuery decides whether raw may be executed against a live
// database. The gate runs in order: strip comments, check the statement
// shape, then scan for prohibited keywords with string literals also
// stripped so a literal like 'drop table' cannot trip the denylist.
// Multiple violations report the first keyword in left-to-right order.
//
// This is a best-effort lexical gate, not a SQL parser. It cannot catch
// every conceivable abuse of a statement that begins with SELECT, such as
// a call to a side-effecting user-defined function; the read-only
// connection mode is the second line of defense.
func ValidateQuery(raw string) (Query, error) {
	stripped := strings.TrimSpace(stripComments(raw))
	if stripped == "" {
		return Query{}, fmt.Errorf("query is empty after comment stripping: %w", types.ErrNotReadQuery)
	}

	word, _ := firstWord(stripped)
	if word == "" {
		// Starts with punctuation, e.g. a parenthesized statement.
		return Query{}, fmt.Errorf("query begins with %q, expected SELECT or WITH: %w",
			stripped[:1], types.ErrNotReadQuery)
	}
	if upper := strings.ToUpper(word); upper != "SELECT" && upper != "WITH" {
		return Query{}, fmt.Errorf("query begins with %q, expected SELECT or WITH: %w",
			word, types.ErrNotReadQuery)
	}

	scannable := stripStringLiterals(stripped)
	if kw := firstProhibitedKeyword(scannable); kw != "" {
		return Query{}, fmt.Errorf("query contains %s: %w", kw, types.ErrProhibitedKeyword)
	}

	return Query{text: raw}, nil
}

// stripComments removes -- line comments and non-nested /* */ block
// comments, replacing each with a single space so word boundaries
// survive. Comment markers inside string literals are left alone: the
// scanner tracks single- and double-quoted state, including SQLite's
// doubled-quote escapes. An unterminated block comment runs to the end
// of input.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	const (
		stateNormal = iota
		stateSingle
		stateDouble
	)
	state := stateNormal

	for i := 0; i < len(s); {
		c := s[i]

		switch state {
		case stateSingle:
			b.WriteByte(c)
			if c == '\'' {
				if i+1 < len(s) && s[i+1] == '\'' {
					b.WriteByte('\'')
					i += 2
					continue
				}
				state = stateNormal
			}
			i++

		case stateDouble:
			b.WriteByte(c)
			if c == '"' {
				if i+1 < len(s) && s[i+1] == '"' {
					b.WriteByte('"')
					i += 2
					continue
				}
				state = stateNormal
			}
			i++

		default:
			switch {
			case c == '-' && i+1 < len(s) && s[i+1] == '-':
				// Line comment: skip to end of line, keep the newline.
				for i < len(s) && s[i] != '\n' {
					i++
				}
				b.WriteByte(' ')
			case c == '/' && i+1 < len(s) && s[i+1] == '*':
				// Block comment, non-nested: skip past the first */.
				i += 2
				for i < len(s) {
					if s[i] == '*' && i+1 < len(s) && s[i+1] == '/' {
						i += 2
						break
					}
					i++
				}
				b.WriteByte(' ')
			case c == '\'':
				state = stateSingle
				b.WriteByte(c)
				i++
			case c == '"':
				state = stateDouble
				b.WriteByte(c)
				i++
			default:
				b.WriteByte(c)
				i++
			}
		}
	}
	return b.String()
}

// stripStringLiterals replaces each single- or double-quoted literal,
// quotes included, with a single space. Doubled quotes inside a literal
// are escapes, not terminators.
func stripStringLiterals(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '\'' && c != '"' {
			b.WriteByte(c)
			i++
			continue
		}

		quote := c
		i++
		for i < len(s) {
			if s[i] == quote {
				if i+1 < len(s) && s[i+1] == quote {
					i += 2
					continue
				}
				i++
				break
			}
			i++
		}
		b.WriteByte(' ')
	}
	return b.String()
}

// firstWord returns the first identifier-shaped token of s after leading
// whitespace, and the remainder.
func firstWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && isIdentByte(s[end]) {
		end++
	}
	return s[:end], s[end:]
}

// firstProhibitedKeyword tokenizes s into identifier-shaped words and
// returns the first denylisted one in scan order, or "".
func firstProhibitedKeyword(s string) string {
	i := 0
	for i < len(s) {
		if !isIdentByte(s[i]) {
			i++
			continue
		}
		start := i
		for i < len(s) && isIdentByte(s[i]) {
			i++
		}
		word := strings.ToUpper(s[start:i])
		if prohibitedKeywords[word] {
			return word
		}
	}
	return ""
}
