package linkcheck

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	wberrors "git.home.luguber.info/inful/wikibuilder/internal/errors"
)

// Issue is one broken or suspicious link found in a prepared wiki.
type Issue struct {
	Page        string // wiki page filename the link was found in
	Destination string
	Reason      string
}

// CheckWiki scans every markdown file in wikiDir and reports internal links
// that do not resolve. External links (http, https, mailto, protocol-relative)
// and pure anchors are out of scope here.
func CheckWiki(wikiDir string) ([]Issue, error) {
	matches, err := filepath.Glob(filepath.Join(wikiDir, "*.md"))
	if err != nil {
		return nil, wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to list wiki pages")
	}
	sort.Strings(matches)

	pageSet := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		pageSet[strings.TrimSuffix(filepath.Base(m), ".md")] = struct{}{}
	}

	var issues []Issue
	for _, m := range matches {
		body, err := os.ReadFile(m)
		if err != nil {
			return nil, wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to read wiki page").
				WithContext("page", filepath.Base(m))
		}

		links, err := ExtractLinks(body)
		if err != nil {
			return nil, wberrors.Wrap(err, wberrors.CategoryTransform, wberrors.SeverityError, "failed to parse wiki page").
				WithContext("page", filepath.Base(m))
		}

		page := filepath.Base(m)
		for _, link := range links {
			if issue, broken := classify(wikiDir, pageSet, link); broken {
				issue.Page = page
				issues = append(issues, issue)
			}
		}
	}

	return issues, nil
}

// classify decides whether a single link is a verifiable internal reference
// and, if so, whether it resolves.
func classify(wikiDir string, pageSet map[string]struct{}, link Link) (Issue, bool) {
	dest := link.Destination
	if dest == "" || isExternal(dest) || strings.HasPrefix(dest, "#") {
		return Issue{}, false
	}

	// Anchors do not participate in resolution.
	if i := strings.IndexByte(dest, '#'); i >= 0 {
		dest = dest[:i]
		if dest == "" {
			return Issue{}, false
		}
	}

	if link.Kind == LinkKindImage || strings.HasPrefix(dest, "images/") {
		if _, err := os.Stat(filepath.Join(wikiDir, filepath.FromSlash(dest))); err != nil {
			return Issue{Destination: link.Destination, Reason: "image file not found"}, true
		}
		return Issue{}, false
	}

	// Wiki page names are flat; a remaining path separator means the link
	// escaped the rewrite.
	if strings.Contains(dest, "/") {
		return Issue{Destination: link.Destination, Reason: "destination is not a flat wiki page name"}, true
	}

	if _, ok := pageSet[dest]; !ok {
		return Issue{Destination: link.Destination, Reason: "target page not found"}, true
	}
	return Issue{}, false
}

func isExternal(dest string) bool {
	return strings.HasPrefix(dest, "http://") ||
		strings.HasPrefix(dest, "https://") ||
		strings.HasPrefix(dest, "mailto:") ||
		strings.HasPrefix(dest, "//")
}
