package pages

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	wberrors "git.home.luguber.info/inful/wikibuilder/internal/errors"
	"git.home.luguber.info/inful/wikibuilder/internal/logfields"
	"git.home.luguber.info/inful/wikibuilder/internal/metrics"
	"git.home.luguber.info/inful/wikibuilder/internal/wiki"
)

// Stats summarizes one preparation run.
type Stats struct {
	Pages  int
	Images int
}

// Preparer copies a repository's documentation into a wiki directory,
// rewriting links and image paths on the way.
type Preparer struct {
	source   string
	dest     string
	clean    bool
	recorder metrics.Recorder
}

// NewPreparer creates a preparer for the given source repository and wiki
// destination directory.
func NewPreparer(source, dest string) *Preparer {
	return &Preparer{
		source:   source,
		dest:     dest,
		recorder: metrics.NoopRecorder{},
	}
}

// WithClean makes Run empty the destination (preserving .git) first.
func (p *Preparer) WithClean(clean bool) *Preparer { p.clean = clean; return p }

// WithRecorder attaches a metrics recorder (fluent helper).
func (p *Preparer) WithRecorder(r metrics.Recorder) *Preparer {
	if r != nil {
		p.recorder = r
	}
	return p
}

// Run executes one full preparation pass.
func (p *Preparer) Run(ctx context.Context) (Stats, error) {
	runID := uuid.NewString()
	start := time.Now()
	slog.Info("Starting wiki preparation",
		logfields.RunID(runID), logfields.Source(p.source), logfields.Dest(p.dest))

	stats, err := p.run(ctx)

	p.recorder.ObservePrepareDuration(time.Since(start))
	switch {
	case err == nil:
		p.recorder.IncRunOutcome("success")
		p.recorder.AddPages(stats.Pages)
		p.recorder.AddImages(stats.Images)
		slog.Info("Wiki preparation complete",
			logfields.RunID(runID),
			logfields.Pages(stats.Pages),
			logfields.Images(stats.Images),
			logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	case ctx.Err() != nil:
		p.recorder.IncRunOutcome("canceled")
		slog.Warn("Wiki preparation canceled", logfields.RunID(runID))
	default:
		p.recorder.IncRunOutcome("failed")
		slog.Error("Wiki preparation failed", logfields.RunID(runID), logfields.Error(err))
	}
	return stats, err
}

func (p *Preparer) run(ctx context.Context) (Stats, error) {
	var stats Stats

	if info, err := os.Stat(p.source); err != nil || !info.IsDir() {
		return stats, wberrors.SourceNotFound(p.source)
	}
	if err := os.MkdirAll(p.dest, 0o750); err != nil {
		return stats, wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to create wiki directory")
	}

	if p.clean {
		if err := cleanDestination(p.dest); err != nil {
			return stats, err
		}
	}

	found, err := DiscoverPages(p.source)
	if err != nil {
		return stats, wberrors.DiscoveryError(err)
	}

	for _, page := range found {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := p.copyTransformed(page); err != nil {
			return stats, err
		}
		slog.Debug("Wrote wiki page", logfields.Page(page.WikiName), logfields.Source(page.Path))
		stats.Pages++
	}

	images, err := DiscoverImages(p.source)
	if err != nil {
		return stats, wberrors.DiscoveryError(err)
	}

	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := p.copyImage(img); err != nil {
			return stats, err
		}
		slog.Debug("Copied image", logfields.Path(img.RelativePath))
		stats.Images++
	}

	return stats, nil
}

// copyTransformed reads one source page, rewrites its links and image paths,
// and writes it under its wiki name.
func (p *Preparer) copyTransformed(page SourcePage) error {
	content, err := os.ReadFile(page.Path)
	if err != nil {
		return wberrors.PageWriteError(page.WikiName, err)
	}

	transformed := wiki.Transform(string(content))

	if err := os.WriteFile(filepath.Join(p.dest, page.WikiName), []byte(transformed), 0o644); err != nil {
		return wberrors.PageWriteError(page.WikiName, err)
	}
	return nil
}

func (p *Preparer) copyImage(img SourceImage) error {
	destPath := filepath.Join(p.dest, "images", img.RelativePath)
	if err := os.MkdirAll(filepath.Dir(destPath), 0o750); err != nil {
		return wberrors.ImageCopyError(img.RelativePath, err)
	}
	data, err := os.ReadFile(img.Path)
	if err != nil {
		return wberrors.ImageCopyError(img.RelativePath, err)
	}
	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return wberrors.ImageCopyError(img.RelativePath, err)
	}
	return nil
}

// cleanDestination removes everything in dir except the wiki's own .git.
func cleanDestination(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to read wiki directory")
	}
	for _, entry := range entries {
		if entry.Name() == ".git" {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to clean wiki directory").
				WithContext("entry", entry.Name())
		}
	}
	return nil
}
