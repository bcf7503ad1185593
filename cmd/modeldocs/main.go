package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/yjones-coder/modeldocs"
	"github.com/yjones-coder/modeldocs/fs"
	"github.com/yjones-coder/modeldocs/goquery"
	"github.com/yjones-coder/modeldocs/htmltomarkdown"
	mdhttp "github.com/yjones-coder/modeldocs/http"
	"github.com/yjones-coder/modeldocs/scrape"
	mdslog "github.com/yjones-coder/modeldocs/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// OutputDir and CacheDir are resolved before Run. Tests override
	// them to point at temporary directories.
	OutputDir string
	CacheDir  string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		OutputDir: fs.DefaultOutputDir(),
		CacheDir:  fs.DefaultCacheDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("modeldocs"),
		kong.Description("Scrape AI model API documentation into canonical context documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'modeldocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Scrape.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store, err := fs.NewStore(m.OutputDir)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set MODELDOCS_DIR to use a different output path\n")
		return fmt.Errorf("failed to open output directory %q: %w", m.OutputDir, err)
	}

	var fetcher modeldocs.Fetcher = mdhttp.NewFetcher()
	fetcher, err = fs.NewCachingFetcher(fetcher, m.CacheDir, fs.WithBypass(cli.Scrape.NoCache))
	if err != nil {
		return fmt.Errorf("failed to open fetch cache at %q: %w", m.CacheDir, err)
	}
	fetcher = mdslog.NewLoggingFetcher(fetcher, logger)

	deps.Store = store
	deps.Scraper = &scrape.Scraper{
		Providers: modeldocs.DefaultRegistry(),
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(goquery.WithConverter(htmltomarkdown.NewConverter())),
		Store:     store,
		Throttle:  scrape.NewThrottle(scrape.DefaultFetchDelay),
		Logger:    logger,
		Verbose:   cli.Scrape.Verbose,
	}

	return kongCtx.Run(deps)
}
