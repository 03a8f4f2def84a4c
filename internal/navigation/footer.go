package navigation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/wikibuilder/internal/config"
)

// Footer generates the _Footer.md content shown under every wiki page.
func Footer(repo config.RepositoryConfig) string {
	repoURL := repo.RepoURL()

	lines := []string{
		"---",
		fmt.Sprintf("📦 [%s](%s) |", repo.Name, repoURL),
		fmt.Sprintf("📖 [Documentation](%s) |", repo.DocsURL()),
		fmt.Sprintf("🐛 [Issues](%s/issues) |", repoURL),
		fmt.Sprintf("📜 [MIT License](%s/blob/main/LICENSE)", repoURL),
	}

	return strings.Join(lines, "\n") + "\n"
}

// WriteFooter renders the footer and writes it to _Footer.md in wikiDir.
func WriteFooter(wikiDir string, repo config.RepositoryConfig) error {
	return os.WriteFile(filepath.Join(wikiDir, "_Footer.md"), []byte(Footer(repo)), 0o644)
}
