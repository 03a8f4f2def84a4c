package wiki

import (
	"fmt"
	"strings"
)

// guardState tracks where the inline-code scan is within a span.
type guardState int

const (
	scanNormal   guardState = iota // plain prose, backtick spans get protected
	scanLinkText                   // inside [...] link text, everything passes through
)

// savedSpan is one protected inline-code span and the placeholder token that
// stands in for it while the rewrite runs.
type savedSpan struct {
	token string
	code  string
}

// placeholderToken builds a token that cannot collide with user text: the
// NUL sentinel never appears in well-formed markdown.
func placeholderToken(i int) string {
	return fmt.Sprintf("\x00code%d\x00", i)
}

// guardInlineCode applies fn to text with standalone inline code shielded
// behind placeholder tokens.
//
// Backticks inside a link's display text are NOT protected: a link like
// [the `Config` class](./api.md) must still reach fn intact so its
// destination can be rewritten. Only backtick spans outside link brackets
// are swapped out, and restored verbatim after fn returns.
//
// Malformed input degrades to literal treatment: an unmatched '[' passes the
// rest of the span through unprotected, an unmatched backtick stays a plain
// character. Nothing here ever fails; the worst case is a skipped rewrite.
func guardInlineCode(text string, fn func(string) string) string {
	var out strings.Builder
	out.Grow(len(text))
	var saved []savedSpan

	state := scanNormal
	depth := 0
	pos := 0

	for pos < len(text) {
		switch state {
		case scanLinkText:
			c := text[pos]
			switch c {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					// A real link continues with '(' after optional blanks.
					look := pos + 1
					for look < len(text) && (text[look] == ' ' || text[look] == '\t') {
						look++
					}
					if look < len(text) && text[look] == '(' {
						out.WriteString(text[pos : look+1])
						pos = look + 1
						parens := 1
						for pos < len(text) && parens > 0 {
							switch text[pos] {
							case '(':
								parens++
							case ')':
								parens--
							}
							out.WriteByte(text[pos])
							pos++
						}
						state = scanNormal
						continue
					}
					// Just brackets, not a link.
					state = scanNormal
				}
			}
			out.WriteByte(c)
			pos++

		default: // scanNormal
			if text[pos] == '[' {
				state = scanLinkText
				depth = 1
				out.WriteByte('[')
				pos++
				continue
			}
			// Double backticks first so `` never parses as two empty spans.
			if strings.HasPrefix(text[pos:], "``") {
				if rel := strings.Index(text[pos+2:], "``"); rel >= 0 {
					end := pos + 2 + rel + 2
					token := placeholderToken(len(saved))
					saved = append(saved, savedSpan{token: token, code: text[pos:end]})
					out.WriteString(token)
					pos = end
					continue
				}
			}
			if text[pos] == '`' {
				if rel := strings.IndexByte(text[pos+1:], '`'); rel >= 0 {
					end := pos + 1 + rel + 1
					token := placeholderToken(len(saved))
					saved = append(saved, savedSpan{token: token, code: text[pos:end]})
					out.WriteString(token)
					pos = end
					continue
				}
			}
			out.WriteByte(text[pos])
			pos++
		}
	}

	transformed := fn(out.String())

	for _, s := range saved {
		transformed = strings.Replace(transformed, s.token, s.code, 1)
	}
	return transformed
}
