package wiki

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Relative .md link: [text](./path.md) or [text](../path.md), with an
	// optional #anchor. Absolute URLs, bare anchors and non-.md targets do
	// not match and are left alone.
	relativeLinkRe = regexp.MustCompile(`\[([^\]]+)\]\((\.\.?/[^)]+\.md(?:#[^)]*)?)\)`)

	// Any inline image: ![alt](path).
	imageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
)

// RewriteLinks rewrites relative intra-repository markdown links to flat
// wiki page references. Fenced code blocks and standalone inline code pass
// through byte for byte; everything about the display text is preserved.
//
// The rewrite is idempotent: a destination that is already a wiki page name
// no longer ends in .md and never matches again.
func RewriteLinks(document string) string {
	return applyOutsideFences(document, func(span string) string {
		return guardInlineCode(span, rewriteLinkSpan)
	})
}

func rewriteLinkSpan(text string) string {
	return relativeLinkRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := relativeLinkRe.FindStringSubmatch(m)
		if len(sub) != 3 {
			return m
		}
		return fmt.Sprintf("[%s](%s)", sub[1], PageName(sub[2]))
	})
}

// RewriteImages normalizes image destinations to the wiki's flat images/
// folder. External URLs (http://, https://, protocol-relative //) and paths
// without an images/ component are left unchanged.
func RewriteImages(document string) string {
	return applyOutsideFences(document, func(span string) string {
		return guardInlineCode(span, rewriteImageSpan)
	})
}

func rewriteImageSpan(text string) string {
	return imageRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := imageRe.FindStringSubmatch(m)
		if len(sub) != 3 {
			return m
		}
		alt, path := sub[1], sub[2]
		if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "//") {
			return m
		}
		if idx := strings.Index(strings.ToLower(path), "images/"); idx >= 0 {
			return fmt.Sprintf("![%s](%s)", alt, path[idx:])
		}
		return m
	})
}

// Transform applies the full wiki rewrite to a document: links first, then
// image paths.
func Transform(document string) string {
	return RewriteImages(RewriteLinks(document))
}
