package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	wberrors "git.home.luguber.info/inful/wikibuilder/internal/errors"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"wikibuilder.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Prepare struct {
		Clean       bool   `help:"Clean the wiki directory before preparing (preserves .git)"`
		Commit      bool   `help:"Commit the prepared wiki to its git repository"`
		Watch       bool   `short:"w" help:"Keep running and re-prepare on source changes"`
		MetricsAddr string `help:"Serve Prometheus metrics on this address while watching"`
	} `cmd:"" help:"Prepare wiki content from the source repository"`

	Transform struct {
		Input   string `arg:"" help:"Input markdown file path, or '-' for stdin"`
		InPlace bool   `short:"i" help:"Modify the file in place instead of printing to stdout"`
	} `cmd:"" help:"Transform links and image paths in a single markdown document"`

	Sidebar struct {
		WikiDir string `arg:"" optional:"" help:"Wiki directory to scan (defaults to configured wiki directory)"`
		Output  string `short:"o" help:"Output file path (default: stdout)"`
	} `cmd:"" help:"Generate the wiki sidebar from prepared pages"`

	Footer struct {
		Output    string `short:"o" help:"Output file path (default: stdout)"`
		RepoOwner string `help:"Repository owner override"`
		RepoName  string `help:"Repository name override"`
	} `cmd:"" help:"Generate the wiki footer"`

	Check struct {
		WikiDir string `arg:"" optional:"" help:"Wiki directory to verify (defaults to configured wiki directory)"`
	} `cmd:"" help:"Verify that all internal links in a prepared wiki resolve"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	adapter := wberrors.NewCLIErrorAdapter(CLI.Verbose, logger)

	switch ctx.Command() {
	case "prepare":
		adapter.HandleError(runPrepare())
	case "transform <input>":
		adapter.HandleError(runTransform(CLI.Transform.Input, CLI.Transform.InPlace))
	case "sidebar", "sidebar <wiki-dir>":
		adapter.HandleError(runSidebar(CLI.Sidebar.WikiDir, CLI.Sidebar.Output))
	case "footer":
		adapter.HandleError(runFooter(CLI.Footer.Output, CLI.Footer.RepoOwner, CLI.Footer.RepoName))
	case "check", "check <wiki-dir>":
		adapter.HandleError(runCheck(CLI.Check.WikiDir))
	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}
