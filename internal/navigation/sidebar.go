// Package navigation assembles the wiki's _Sidebar.md and _Footer.md from
// the prepared page files and repository configuration.
package navigation

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/wikibuilder/internal/config"
)

// DisplayName converts a wiki page name to a human-readable link label:
// the top-level category prefix goes, a known subcategory prefix goes, and
// the remaining dashes become spaces.
//
//	"Features-Inspector-Inspector-Overview" -> "Inspector Overview"
//	"Overview-Getting-Started"              -> "Getting Started"
func DisplayName(wikiName string, subcategories []string) string {
	display := wikiName

	for _, prefix := range config.TopLevelCategories() {
		if strings.HasPrefix(display, prefix) {
			display = display[len(prefix):]
			break
		}
	}

	for _, prefix := range subcategories {
		if strings.HasPrefix(display, prefix) {
			display = display[len(prefix):]
			break
		}
	}

	return strings.ReplaceAll(display, "-", " ")
}

// pagesWithPrefix lists wiki page names (no .md extension) in wikiDir whose
// filename starts with prefix, sorted by name.
func pagesWithPrefix(wikiDir, prefix string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(wikiDir, prefix+"*.md"))
	if err != nil {
		return nil, err
	}

	var names []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		base := filepath.Base(m)
		names = append(names, strings.TrimSuffix(base, ".md"))
	}

	sort.Strings(names)
	return names, nil
}

// section renders one sidebar heading plus its page links. An empty section
// renders nothing at all, heading included.
func section(title string, pages []string, subcategories []string) []string {
	if len(pages) == 0 {
		return nil
	}

	lines := []string{"", "### " + title}
	for _, name := range pages {
		lines = append(lines, "- ["+DisplayName(name, subcategories)+"]("+name+")")
	}
	return lines
}

// Sidebar generates the complete _Sidebar.md content for a prepared wiki
// directory.
func Sidebar(wikiDir string, cfg config.SidebarConfig) (string, error) {
	lines := []string{"## " + cfg.Title, "", "### Getting Started", "- [Home](Home)"}

	// Overview pages live directly inside Getting Started.
	overview, err := pagesWithPrefix(wikiDir, "Overview-")
	if err != nil {
		return "", err
	}
	for _, name := range overview {
		lines = append(lines, "- ["+DisplayName(name, cfg.Subcategories)+"]("+name+")")
	}

	for _, sec := range cfg.Sections {
		names, err := pagesWithPrefix(wikiDir, sec.Prefix)
		if err != nil {
			return "", err
		}
		lines = append(lines, section(sec.Title, names, cfg.Subcategories)...)
	}

	// Project section always carries the changelog link.
	lines = append(lines, "", "### Project", "- [Changelog](CHANGELOG)")
	project, err := pagesWithPrefix(wikiDir, "Project-")
	if err != nil {
		return "", err
	}
	for _, name := range project {
		lines = append(lines, "- ["+DisplayName(name, cfg.Subcategories)+"]("+name+")")
	}

	return strings.Join(lines, "\n") + "\n", nil
}

// WriteSidebar renders the sidebar and writes it to _Sidebar.md in wikiDir.
func WriteSidebar(wikiDir string, cfg config.SidebarConfig) error {
	content, err := Sidebar(wikiDir, cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(wikiDir, "_Sidebar.md"), []byte(content), 0o644)
}
