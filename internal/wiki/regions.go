package wiki

import "strings"

// Span is a slice of a document tagged as either fenced code (opaque) or
// ordinary prose (transformable). Concatenating the spans of a split in
// order reproduces the original document byte for byte.
type Span struct {
	Opaque bool
	Text   string
}

var fenceMarkers = []string{"```", "~~~"}

// SplitFences splits text into alternating opaque and transformable spans.
//
// A fenced block runs from an opening ``` or ~~~ marker to the nearest
// following marker of the same style, newlines included. An opening marker
// with no matching closer is not a fence at all: it stays ordinary text and
// scanning continues after it, so a dangling fence never swallows the rest
// of the document.
func SplitFences(text string) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String()})
			plain.Reset()
		}
	}

	pos := 0
	for pos < len(text) {
		open, marker := nextFence(text, pos)
		if open < 0 {
			plain.WriteString(text[pos:])
			break
		}
		rel := strings.Index(text[open+len(marker):], marker)
		if rel < 0 {
			// Unterminated fence: keep the marker as plain text and keep
			// scanning, the other fence style may still close properly.
			plain.WriteString(text[pos : open+len(marker)])
			pos = open + len(marker)
			continue
		}
		end := open + len(marker) + rel + len(marker)
		plain.WriteString(text[pos:open])
		flush()
		spans = append(spans, Span{Opaque: true, Text: text[open:end]})
		pos = end
	}
	flush()

	return spans
}

// nextFence returns the position and marker of the earliest fence marker at
// or after pos, or -1 when neither style occurs again.
func nextFence(text string, pos int) (int, string) {
	best := -1
	bestMarker := ""
	for _, marker := range fenceMarkers {
		if i := strings.Index(text[pos:], marker); i >= 0 {
			if best < 0 || pos+i < best {
				best = pos + i
				bestMarker = marker
			}
		}
	}
	return best, bestMarker
}

// applyOutsideFences runs fn over every transformable span and passes the
// opaque spans through untouched.
func applyOutsideFences(text string, fn func(string) string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, span := range SplitFences(text) {
		if span.Opaque {
			b.WriteString(span.Text)
		} else {
			b.WriteString(fn(span.Text))
		}
	}
	return b.String()
}
