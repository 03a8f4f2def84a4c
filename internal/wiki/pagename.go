package wiki

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PageRef is a flat wiki page target: the page name plus an optional anchor.
// The anchor, when present, includes its leading '#' and is carried verbatim.
type PageRef struct {
	Page   string
	Anchor string
}

// String renders the reference the way it appears in a link destination.
func (r PageRef) String() string {
	return r.Page + r.Anchor
}

// PageName maps a repository-relative markdown path to its wiki page name.
//
// Examples:
//
//	"../README.md"                      -> "Home"
//	"./docs/overview/roadmap.md"        -> "Overview-Roadmap"
//	"./docs/overview/roadmap.md#future" -> "Overview-Roadmap#future"
//	"./CHANGELOG.md"                    -> "CHANGELOG"
//
// The path is never resolved against a filesystem; any string shape is
// accepted and transformed mechanically.
func PageName(path string) PageRef {
	anchor := ""
	if i := strings.IndexByte(path, '#'); i >= 0 {
		anchor = path[i:]
		path = path[:i]
	}

	for {
		if strings.HasPrefix(path, "./") {
			path = path[2:]
			continue
		}
		if strings.HasPrefix(path, "../") {
			path = path[3:]
			continue
		}
		break
	}

	path = strings.TrimSuffix(path, ".md")

	// README becomes the wiki Home page; CHANGELOG keeps its conventional
	// all-caps name instead of being title-cased to "Changelog".
	if strings.EqualFold(path, "README") {
		return PageRef{Page: "Home", Anchor: anchor}
	}
	if strings.EqualFold(path, "CHANGELOG") {
		return PageRef{Page: "CHANGELOG", Anchor: anchor}
	}

	if len(path) >= 5 && strings.EqualFold(path[:5], "docs/") {
		path = path[5:]
	}

	segments := strings.Split(path, "/")
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		for _, word := range strings.Split(segment, "-") {
			if word == "" {
				continue
			}
			parts = append(parts, capitalize(word))
		}
	}

	return PageRef{Page: strings.Join(parts, "-"), Anchor: anchor}
}

// capitalize upper-cases the first rune and lower-cases the remainder,
// matching the casing the wiki uses for every hyphen-delimited word.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
