// bh3 prints an ASCII-art mascot surrounded by randomly placed, randomly
// colored words.
//
// Words come from the mascot's built-in word list, or from standard input
// when it is piped:
//
//	git log --oneline | bh3 --avator shibe --min_length 4
//
// Usage:
//
//	bh3 [flags]
//
// Flags:
//
//	--avator string      Mascot to draw (default: random)
//	--no int             Variant of the mascot (omitted or 0: random)
//	--min_length int     Minimum word length (default 1)
//	-mh, --max-height    Terminal height override
//	-mw, --max-width     Terminal width override
//	--config string      Path to configuration file (default: ~/.config/bh3/config.yaml)
//	--seed uint          Seed for a reproducible layout (0 = random)
//	--list               List installed mascots and their variants
//	--verbose            Enable verbose logging
//	--version            Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"

	"gitlab.com/tinyland/lab/bh3/config"
	"gitlab.com/tinyland/lab/bh3/display/terminal"
	"gitlab.com/tinyland/lab/bh3/mascot"
)

// Process exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitLocale      = 2
	exitLocaleUnset = 3
)

// app is the process environment run works against.
type app struct {
	args   []string
	getenv func(string) string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// detect reports the terminal before CLI overrides.
	detect func(getenv func(string) string) terminal.Metrics
	// assets is the built-in mascot tree.
	assets fs.FS
}

// options holds the parsed command line.
type options struct {
	avator     string
	variant    int
	minLength  int
	maxHeight  int
	maxWidth   int
	configPath string
	seed       uint64
	list       bool
	verbose    bool
	version    bool
	// set records which flags appeared on the command line.
	set map[string]bool
}

func main() {
	os.Exit(run(app{
		args:   os.Args[1:],
		getenv: os.Getenv,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		detect: terminal.Detect,
		assets: mascot.Embedded(),
	}))
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	flags := flag.NewFlagSet("bh3", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.avator, "avator", "", "which bh3 avator")
	flags.IntVar(&opts.variant, "no", 0, "variant of the avator (omitted or 0 picks one at random)")
	flags.IntVar(&opts.minLength, "min_length", 1, "pretty minimum word length")
	flags.IntVar(&opts.maxHeight, "mh", 0, "such max height (shorthand)")
	flags.IntVar(&opts.maxHeight, "max-height", 0, "such max height")
	flags.IntVar(&opts.maxWidth, "mw", 0, "such max width (shorthand)")
	flags.IntVar(&opts.maxWidth, "max-width", 0, "such max width")
	flags.StringVar(&opts.configPath, "config", "", "Path to configuration file (default: ~/.config/bh3/config.yaml)")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible layout (0 = random)")
	flags.BoolVar(&opts.list, "list", false, "List installed avators and their variants")
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	flags.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", flags.Args())
		flags.Usage()
		return nil, errors.New("unexpected arguments")
	}
	flags.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

func run(a app) int {
	opts, err := parseFlags(a.args, a.stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(a.stdout, "bh3 %s (%s) built %s\n", version, commit, date)
		return exitOK
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// ---------------------------------------------------------------
	// Configuration
	// ---------------------------------------------------------------

	var cfg *config.Config
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath, a.getenv)
	} else {
		cfg, err = config.Load(a.getenv)
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "failed to load config: %v\n", err)
		return exitFailure
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(a.stderr, "invalid config: %v\n", err)
		return exitFailure
	}

	assets := a.assets
	if cfg.AssetsDir != "" {
		assets = mascot.FromDir(cfg.AssetsDir)
	}
	catalog, err := mascot.Discover(assets)
	if err != nil {
		fmt.Fprintf(a.stderr, "avator error: %v\n", err)
		return exitFailure
	}
	logger.Debug("catalog discovered", "avators", catalog.Mapping())

	term := a.detect(a.getenv).WithOverrides(opts.maxHeight, opts.maxWidth)
	logger.Debug("terminal", "height", term.Height, "width", term.Width, "pretty", term.Pretty)

	if opts.list {
		printList(a.stdout, catalog, term.OutputInteractive)
		return exitOK
	}

	// ---------------------------------------------------------------
	// Layout
	// ---------------------------------------------------------------

	seed := opts.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	logger.Debug("random source", "seed", seed)

	sel, err := catalog.Select(cfg.Avator, cfg.Variant, rng)
	if err != nil {
		fmt.Fprintf(a.stderr, "avator error: %v\n", err)
		return exitFailure
	}

	r := renderer{
		assets:   assets,
		selected: sel,
		cfg:      cfg,
		term:     term,
		prompt:   a.getenv("PS1"),
		stdin:    a.stdin,
		rng:      rng,
		logger:   logger,
	}
	if err := r.render(a.stdout); err != nil {
		return reportFailure(a.stdout, a.stderr, err, a.getenv("LANG"))
	}
	return exitOK
}

// applyFlags lets explicitly given flags override the configuration.
func applyFlags(cfg *config.Config, opts *options) {
	if opts.set["avator"] {
		cfg.Avator = opts.avator
	}
	if opts.set["no"] {
		cfg.Variant = opts.variant
	}
	if opts.set["min_length"] {
		cfg.MinLength = opts.minLength
	}
}
