package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/wikibuilder/internal/config"
	wberrors "git.home.luguber.info/inful/wikibuilder/internal/errors"
	"git.home.luguber.info/inful/wikibuilder/internal/linkcheck"
	"git.home.luguber.info/inful/wikibuilder/internal/logfields"
	"git.home.luguber.info/inful/wikibuilder/internal/metrics"
	"git.home.luguber.info/inful/wikibuilder/internal/navigation"
	"git.home.luguber.info/inful/wikibuilder/internal/pages"
	"git.home.luguber.info/inful/wikibuilder/internal/publish"
	"git.home.luguber.info/inful/wikibuilder/internal/watch"
	"git.home.luguber.info/inful/wikibuilder/internal/wiki"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, wberrors.Wrap(err, wberrors.CategoryConfig, wberrors.SeverityFatal, "failed to load configuration")
	}
	return cfg, nil
}

// runPrepare executes the full pipeline: pages, images, sidebar, footer,
// and (optionally) a commit. With --watch it keeps re-running on changes.
func runPrepare() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	recorder := metrics.Recorder(metrics.NoopRecorder{})
	metricsAddr := CLI.Prepare.MetricsAddr
	if metricsAddr == "" {
		metricsAddr = cfg.Watch.MetricsAddr
	}
	if CLI.Prepare.Watch && metricsAddr != "" {
		registry := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
		go serveMetrics(metricsAddr, registry)
	}

	prepareOnce := func(ctx context.Context) error {
		preparer := pages.NewPreparer(cfg.Source, cfg.Wiki.Directory).
			WithClean(CLI.Prepare.Clean || cfg.Wiki.Clean).
			WithRecorder(recorder)
		if _, err := preparer.Run(ctx); err != nil {
			return err
		}
		if err := navigation.WriteSidebar(cfg.Wiki.Directory, cfg.Sidebar); err != nil {
			return wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to write sidebar")
		}
		if err := navigation.WriteFooter(cfg.Wiki.Directory, cfg.Repository); err != nil {
			return wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to write footer")
		}
		if CLI.Prepare.Commit || cfg.Publish.Commit {
			_, err := publish.CommitAll(cfg.Wiki.Directory, publish.Options{
				Message: cfg.Publish.Message,
				Author:  cfg.Publish.Author,
				Email:   cfg.Publish.Email,
			})
			if err != nil {
				return err
			}
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := prepareOnce(ctx); err != nil {
		return err
	}
	if !CLI.Prepare.Watch {
		return nil
	}

	watcher, err := watch.New(cfg.Source, cfg.Watch.DebounceDuration(), func(ctx context.Context) {
		if err := prepareOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("Re-preparation failed", logfields.Error(err))
		}
	})
	if err != nil {
		return wberrors.Wrap(err, wberrors.CategoryRuntime, wberrors.SeverityFatal, "failed to start watcher")
	}

	if err := watcher.Run(ctx); err != nil && err != context.Canceled {
		return wberrors.Wrap(err, wberrors.CategoryRuntime, wberrors.SeverityFatal, "watcher stopped")
	}
	return nil
}

func serveMetrics(addr string, registry *prom.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(registry))
	slog.Info("Serving metrics", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Metrics server stopped", logfields.Error(err))
	}
}

// runTransform mirrors the single-document workflow: read a file (or stdin),
// rewrite links and image paths, print or modify in place.
func runTransform(input string, inPlace bool) error {
	var content []byte
	var err error
	if input == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(input)
	}
	if err != nil {
		return wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to read input").
			WithContext("input", input)
	}

	transformed := wiki.Transform(string(content))

	if inPlace && input != "-" {
		if err := os.WriteFile(input, []byte(transformed), 0o644); err != nil {
			return wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to write output").
				WithContext("input", input)
		}
		return nil
	}

	_, err = io.WriteString(os.Stdout, transformed)
	return err
}

func runSidebar(wikiDir, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if wikiDir == "" {
		wikiDir = cfg.Wiki.Directory
	}

	content, err := navigation.Sidebar(wikiDir, cfg.Sidebar)
	if err != nil {
		return wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to generate sidebar")
	}
	return writeOutput(output, content)
}

func runFooter(output, ownerOverride, nameOverride string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo := cfg.Repository
	if ownerOverride != "" {
		repo.Owner = ownerOverride
		repo.URL = ""
	}
	if nameOverride != "" {
		repo.Name = nameOverride
		repo.URL = ""
	}

	return writeOutput(output, navigation.Footer(repo))
}

func runCheck(wikiDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if wikiDir == "" {
		wikiDir = cfg.Wiki.Directory
	}

	issues, err := linkcheck.CheckWiki(wikiDir)
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		slog.Info("Wiki links verified", logfields.Dest(wikiDir))
		return nil
	}

	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s (%s)\n", issue.Page, issue.Destination, issue.Reason)
	}
	return wberrors.New(wberrors.CategoryValidation, wberrors.SeverityError, fmt.Sprintf("%d broken links found", len(issues)))
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return wberrors.Wrap(err, wberrors.CategoryFileSystem, wberrors.SeverityFatal, "failed to write output").
			WithContext("path", path)
	}
	return nil
}
