package pages

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourcePage is one markdown file scheduled for wiki publication.
type SourcePage struct {
	Path     string // absolute path to the source file
	WikiName string // destination filename, e.g. "Overview-Roadmap.md"
}

// SourceImage is one asset under docs/images scheduled for copying.
type SourceImage struct {
	Path         string // absolute path to the source file
	RelativePath string // path relative to docs/images, structure preserved
}

// rootPages maps well-known repository-root files to fixed wiki names.
var rootPages = []struct{ file, wikiName string }{
	{"README.md", "Home.md"},
	{"CHANGELOG.md", "CHANGELOG.md"},
	{"index.md", "Index.md"},
}

// DiscoverPages finds every markdown file destined for the wiki: the
// well-known root files plus everything under docs/, flattened through
// WikiFileName. Results are ordered root files first, then docs files in
// path order.
func DiscoverPages(sourceDir string) ([]SourcePage, error) {
	var found []SourcePage

	for _, rp := range rootPages {
		path := filepath.Join(sourceDir, rp.file)
		if _, err := os.Stat(path); err == nil {
			found = append(found, SourcePage{Path: path, WikiName: rp.wikiName})
		}
	}

	docsDir := filepath.Join(sourceDir, "docs")
	if _, err := os.Stat(docsDir); err != nil {
		return found, nil // a repository without docs/ still gets its root pages
	}

	var docsPages []SourcePage
	err := filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(docsDir, path)
		if err != nil {
			return err
		}
		docsPages = append(docsPages, SourcePage{
			Path:     path,
			WikiName: WikiFileName(filepath.ToSlash(rel)),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docsPages, func(i, j int) bool { return docsPages[i].Path < docsPages[j].Path })
	return append(found, docsPages...), nil
}

// DiscoverImages finds every asset under docs/images, preserving the
// directory structure below it. Unity-style .meta sidecar files are skipped.
func DiscoverImages(sourceDir string) ([]SourceImage, error) {
	imagesDir := filepath.Join(sourceDir, "docs", "images")
	if _, err := os.Stat(imagesDir); err != nil {
		return nil, nil
	}

	var images []SourceImage
	err := filepath.WalkDir(imagesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(d.Name(), ".meta") {
			return nil
		}
		rel, err := filepath.Rel(imagesDir, path)
		if err != nil {
			return err
		}
		images = append(images, SourceImage{Path: path, RelativePath: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Path < images[j].Path })
	return images, nil
}
