// Package main provides the entry point for the ASCII Art Maker.
//
// Usage:
//
//	asciiart [flags] [image]          open the TUI
//	asciiart render [flags] <glob>... batch convert images
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/asciiart/internal/app"
	"github.com/riordanpawley/asciiart/internal/cli"
	"github.com/riordanpawley/asciiart/internal/config"
	"github.com/riordanpawley/asciiart/internal/services/clipboard"
	"github.com/riordanpawley/asciiart/internal/services/imageio"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "render":
			os.Exit(runRender(cfg, args[1:]))
		case "help", "-h", "--help":
			cli.PrintUsage(os.Stdout)
			return
		}
	}

	os.Exit(runTUI(cfg, args))
}

func runRender(cfg *config.Config, args []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	deps := cli.NewDependencies(cfg, logger)

	if err := cli.RenderCommand(deps, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runTUI(cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("asciiart", flag.ContinueOnError)
	fs.Usage = func() { cli.PrintUsage(os.Stderr) }
	locale := fs.String("locale", cfg.Locale, "Message language (en, ja)")
	noWatch := fs.Bool("no-watch", cfg.NoWatch, "Do not reload the image when it changes on disk")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg.Locale = *locale
	cfg.NoWatch = *noWatch

	// The TUI owns the terminal, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	svc := app.Services{
		Clipboard: clipboard.System{},
		Loader:    imageio.NewLoader(logger),
		Logger:    logger,
	}
	if !cfg.NoWatch {
		w, err := imageio.NewWatcher(logger)
		if err != nil {
			logger.Warn("file watching disabled", "error", err)
		} else {
			defer w.Close()
			svc.Watcher = w
		}
	}

	model := app.New(cfg, fs.Arg(0), svc)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
