package pages

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// WikiFileName converts a docs-relative markdown path to the flat filename
// the wiki stores it under.
//
// Examples:
//
//	"overview/getting-started.md"              -> "Overview-Getting-Started.md"
//	"features/inspector/inspector-button.md"   -> "Features-Inspector-Inspector-Button.md"
//
// Unlike wiki.PageName this only upper-cases the first letter of each word
// and leaves the rest of the word's casing alone, so an acronym in a source
// filename survives into the wiki filename.
func WikiFileName(relativePath string) string {
	name := strings.TrimSuffix(relativePath, ".md")
	name = strings.ReplaceAll(name, "/", "-")

	parts := strings.Split(name, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		parts[i] = string(unicode.ToUpper(r)) + part[size:]
	}

	return strings.Join(parts, "-") + ".md"
}
