// Package cli implements the non-interactive commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mattn/go-isatty"
	"github.com/riordanpawley/asciiart/internal/ascii"
	"github.com/riordanpawley/asciiart/internal/config"
	"github.com/riordanpawley/asciiart/internal/domain"
	"github.com/riordanpawley/asciiart/internal/i18n"
	"github.com/riordanpawley/asciiart/internal/services/clipboard"
	"github.com/riordanpawley/asciiart/internal/services/imageio"
	"github.com/riordanpawley/asciiart/internal/types"
	"github.com/schollz/progressbar/v3"
)

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config  *config.Config
	Loader  *imageio.Loader
	Copier  *clipboard.Copier
	Printer *i18n.Printer
	Logger  *slog.Logger

	Stdout io.Writer
	Stderr io.Writer

	// Interactive is true when stderr is a terminal; enables the progress bar
	Interactive bool
}

// NewDependencies creates a new Dependencies instance with all required services
func NewDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	printer := i18n.NewPrinter(cfg.Locale)
	fd := os.Stderr.Fd()

	return &Dependencies{
		Config:      cfg,
		Loader:      imageio.NewLoader(logger),
		Copier:      clipboard.NewCopier(clipboard.System{}, printer, logger),
		Printer:     printer,
		Logger:      logger,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// RenderCommand converts every image matching the given patterns.
// Results go to stdout, or to <out>/<name>.txt when -out is set.
func RenderCommand(deps *Dependencies, args []string) error {
	defaults := deps.Config.Render.Options()

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(deps.Stderr)
	width := fs.Int("width", defaults.Width, "Characters per line")
	charset := fs.String("charset", defaults.Charset, "Characters from dark to bright")
	invert := fs.Bool("invert", defaults.Invert, "Invert light/dark")
	contrast := fs.Float64("contrast", defaults.Contrast, "Contrast (1.0 = unchanged)")
	vscale := fs.Float64("vscale", defaults.VerticalScale, "Vertical scale (glyph aspect fix)")
	outDir := fs.String("out", "", "Write <name>.txt files to this directory")
	copyResult := fs.Bool("copy", false, "Copy the last result to the clipboard")
	noProgress := fs.Bool("no-progress", false, "Disable the progress bar")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: asciiart render [flags] <image or pattern>...")
	}

	files, err := ExpandPatterns(fs.Args())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return &domain.ImageError{Op: "load", Path: strings.Join(fs.Args(), " "), Err: domain.ErrNoImage}
	}

	opts := domain.Options{
		Width:         int(domain.WidthRange.Clamp(float64(*width))),
		Charset:       *charset,
		Invert:        *invert,
		Contrast:      domain.ContrastRange.Clamp(*contrast),
		VerticalScale: domain.VerticalScaleRange.Clamp(*vscale),
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var bar *progressbar.ProgressBar
	if deps.Interactive && !*noProgress && len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(deps.Stderr),
			progressbar.OptionSetDescription("Rendering"),
			progressbar.OptionSetItsString("images"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var errs []error
	var last string
	for i, path := range files {
		art, err := renderFile(deps, path, opts)
		if bar != nil {
			_ = bar.Add(1)
		}
		if err != nil {
			deps.Logger.Error("render failed", "path", path, "error", err)
			errs = append(errs, err)
			continue
		}
		last = art

		if err := writeResult(deps, *outDir, path, art, len(files) > 1, i); err != nil {
			errs = append(errs, err)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if *copyResult {
		fb := deps.Copier.Copy(last)
		prefix := "✓"
		if fb.Variant == types.VariantFailure {
			prefix = "✗"
		}
		fmt.Fprintf(deps.Stderr, "%s %s\n", prefix, fb.Text)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d images failed: %w", len(errs), len(files), errors.Join(errs...))
	}
	return nil
}

func renderFile(deps *Dependencies, path string, opts domain.Options) (string, error) {
	img, err := deps.Loader.Load(path)
	if err != nil {
		return "", err
	}
	art, err := ascii.Convert(img, opts)
	if err != nil {
		return "", &domain.ImageError{Op: "convert", Path: path, Err: err}
	}
	deps.Logger.Debug("rendered image", "path", path, "width", opts.Width)
	return art, nil
}

func writeResult(deps *Dependencies, outDir, path, art string, many bool, index int) error {
	if outDir == "" {
		if many {
			if index > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "==> %s <==\n", path)
		}
		_, err := fmt.Fprintln(deps.Stdout, art)
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".txt"
	target := filepath.Join(outDir, name)
	if err := os.WriteFile(target, []byte(art+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	deps.Logger.Info("wrote ascii art", "path", target)
	return nil
}

// ExpandPatterns resolves doublestar patterns (e.g. "photos/**/*.png") to a
// sorted, de-duplicated list of files. Plain paths are passed through.
func ExpandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern: %s", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", pattern, err)
		}
		if len(matches) == 0 && !hasMeta(pattern) {
			// Let the loader report missing files
			matches = []string{pattern}
		}

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// PrintUsage prints CLI usage information
func PrintUsage(w io.Writer) {
	usage := `Usage: asciiart [command] [flags] [arguments]

Commands:
  (no command) [image]     Start the ASCII Art Maker TUI
  render <pattern>...      Convert images to text without the TUI
  help                     Show this help message

TUI flags:
  -locale <en|ja>          Message language
  -no-watch                Do not reload the image when it changes on disk

Render flags:
  -width <n>               Characters per line (20-240)
  -charset <chars>         Characters from dark to bright
  -invert                  Invert light/dark
  -contrast <f>            Contrast (0.3-2.5, 1.0 = unchanged)
  -vscale <f>              Vertical scale (0.3-1.5)
  -out <dir>               Write <name>.txt files instead of printing
  -copy                    Copy the last result to the clipboard
  -no-progress             Disable the progress bar

Examples:
  asciiart cat.png                          # Open cat.png in the TUI
  asciiart render -width 100 cat.png        # Print cat.png as text
  asciiart render -out txt 'photos/**/*.jpg'

Configuration is read from .asciiart.json and .env in the current directory.
`
	fmt.Fprint(w, usage)
}
