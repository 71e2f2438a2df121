// Command unitz parses, converts and reformats quantities such as
// "1 1/2 cups" from the command line, an interactive prompt or an HTTP API.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sambeau/unitz/config"
	"github.com/sambeau/unitz/internal/logger"
	"github.com/sambeau/unitz/pkg/unitz"
	"github.com/sambeau/unitz/pkg/unitz/catalog"
	"github.com/sambeau/unitz/pkg/unitz/classes"
	"github.com/sambeau/unitz/pkg/unitz/store"
)

// Version is set at build time via -ldflags
var Version = "0.1.0-dev"

var errUsage = errors.New("usage")

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv); err != nil {
		if err == errUsage {
			os.Exit(2)
		}
		label := color.New(color.FgRed, color.Bold)
		if !isTerminal(os.Stderr) {
			label.DisableColor()
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", label.Sprint("error:"), err)
		os.Exit(1)
	}
}

// options are the flags shared by every command. They may appear before
// or after the command name.
type options struct {
	configPath  string
	showVersion bool
	showHelp    bool
	system      string
	significant int
	unitFormat  string
	format      string
	spacer      string
	set         map[string]bool
}

func newFlags(stderr io.Writer, opts *options) *flag.FlagSet {
	flags := flag.NewFlagSet("unitz", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "Path to config file")
	flags.BoolVar(&opts.showVersion, "version", false, "Show version")
	flags.BoolVar(&opts.showHelp, "help", false, "Show help")
	flags.StringVar(&opts.system, "system", "", "Unit system: metric, imperial, any, given")
	flags.IntVar(&opts.significant, "significant", -1, "Decimal places, -1 for all")
	flags.StringVar(&opts.unitFormat, "unit-format", "", "Unit text: given, short, long, none")
	flags.StringVar(&opts.format, "format", "", "Numbers: given, number, mixed, fraction, improper")
	flags.StringVar(&opts.spacer, "spacer", "", "Text between number and unit")
	flags.Usage = func() { printUsage(stderr) }
	return flags
}

// run is the main entry point, designed for testability (Mat Ryer pattern)
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	opts := &options{set: make(map[string]bool)}
	flags := newFlags(stderr, opts)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	rest := flags.Args()
	var command string
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
		if err := flags.Parse(rest); err != nil {
			return err
		}
		rest = flags.Args()
	}
	flags.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if opts.showHelp {
		printUsage(stdout)
		return nil
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "unitz version %s\n", Version)
		return nil
	}
	if command == "" {
		printUsage(stderr)
		return errUsage
	}

	cmd, ok := commands[command]
	if !ok {
		return fmt.Errorf("unknown command %q (see unitz --help)", command)
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, cfgPath, err := config.LoadWithPath(opts.configPath, getenv)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := opts.apply(cfg); err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	app, err := newApp(ctx, cfg, cmd.longRunning, stdin, stdout, stderr)
	if err != nil {
		return err
	}
	defer app.close()

	if cfgPath != "" {
		app.log.Debug("config loaded", "path", cfgPath)
	}
	for _, w := range config.Warnings(cfg) {
		app.log.Warn(w)
	}
	return cmd.run(ctx, app, rest)
}

// apply copies explicitly set flags over the loaded configuration.
func (o *options) apply(cfg *config.Config) error {
	var err error
	if o.set["system"] {
		if cfg.Transform.System, err = unitz.ParseSystem(o.system); err != nil {
			return err
		}
	}
	if o.set["significant"] {
		cfg.Output.Significant = o.significant
	}
	if o.set["unit-format"] {
		if cfg.Output.Unit, err = unitz.ParseOutputUnit(o.unitFormat); err != nil {
			return err
		}
	}
	if o.set["format"] {
		if cfg.Output.Format, err = unitz.ParseOutputFormat(o.format); err != nil {
			return err
		}
	}
	if o.set["spacer"] {
		cfg.Output.UnitSpacer = o.spacer
	}
	return nil
}

// app is the wired engine shared by every command.
type app struct {
	cfg     *config.Config
	reg     *unitz.Registry
	log     *logger.Logger
	stdin   io.Reader
	stdout  io.Writer
	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config, longRunning bool, stdin io.Reader, stdout, stderr io.Writer) (*app, error) {
	a := &app{cfg: cfg, stdin: stdin, stdout: stdout}

	var w io.Writer = stderr
	if out := cfg.Logging.Output; out != "" && out != "stderr" {
		f, closeLog, err := logger.OpenOutput(out)
		if err != nil {
			return nil, err
		}
		w = f
		a.closers = append(a.closers, closeLog)
	}
	level := logger.ParseLevel(cfg.Logging.Level)
	// one-shot commands only report problems
	if !longRunning && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	a.log = logger.New(logger.Config{Writer: w, Format: cfg.Logging.Format, Level: level})

	a.reg = classes.NewRegistry()
	a.reg.SetDefaults(cfg.UnitzDefaults())
	a.reg.SetDynamic(cfg.Dynamic)

	if err := a.loadCatalogs(ctx, longRunning); err != nil {
		a.close()
		return nil, err
	}
	if err := a.openStore(ctx); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) loadCatalogs(ctx context.Context, longRunning bool) error {
	paths := []string(a.cfg.Catalogs)
	if len(paths) == 0 {
		return nil
	}
	if !a.cfg.Watch || !longRunning {
		if err := catalog.LoadInto(a.reg, paths...); err != nil {
			return fmt.Errorf("loading catalogs: %w", err)
		}
		return nil
	}

	watcher, err := catalog.NewWatcher(a.reg, a.log, paths...)
	if err != nil {
		return fmt.Errorf("creating catalog watcher: %w", err)
	}
	a.closers = append(a.closers, watcher.Close)
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}
	return nil
}

func (a *app) openStore(ctx context.Context) error {
	if a.cfg.Store.Path == "" || !a.cfg.Dynamic {
		return nil
	}
	st, err := store.Open(store.Config{Path: a.cfg.Store.Path, MaxUnits: a.cfg.Store.MaxUnits}, a.log)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, st.Close)
	if _, err := st.Restore(ctx, a.reg); err != nil {
		return fmt.Errorf("restoring dynamic units: %w", err)
	}
	st.Attach(a.reg)
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *app) defaults() unitz.Defaults { return a.reg.Defaults() }

// inputs returns the quantities a command works on: the joined arguments,
// or one per non-blank line of stdin when there are none.
func (a *app) inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	var out []string
	scanner := bufio.NewScanner(a.stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: nothing to read", unitz.ErrInvalidInput)
	}
	return out, nil
}

// each parses every input, applies fn and prints the result.
func (a *app) each(args []string, fn func(b *unitz.Base, d *unitz.Defaults) (*unitz.Base, error)) error {
	inputs, err := a.inputs(args)
	if err != nil {
		return err
	}
	d := a.defaults()
	for _, in := range inputs {
		b := a.reg.Parse(unitz.Text(in))
		if b.Len() == 0 || !b.IsValid() {
			return fmt.Errorf("%w: %q", unitz.ErrInvalidInput, in)
		}
		out, err := fn(b, &d)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, out.Output(&d.Output))
	}
	return nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func parseFactor(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f == 0 {
		return 0, fmt.Errorf("factor must be a non-zero number, got %q", s)
	}
	return f, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `unitz - Parse, convert and format quantities

Usage:
  unitz [options] <command> [args]

Commands:
  parse <quantity>          Print quantities as parsed
  normalize <quantity>      Pick the shortest unit for each value
  compact <quantity>        Sum each class into one range
  expand <quantity>         Break values into descending units
  convert <unit> <quantity> Convert into one unit
  conversions <quantity>    List every visible conversion
  sort <quantity>           Sort ranges largest first
  scale <factor> <quantity> Multiply every range
  add <quantity> <other>    Add two quantity lists
  sub <quantity> <other>    Subtract other from quantity
  classes                   List unit classes and their units
  repl                      Start the interactive prompt
  serve                     Start the HTTP API

Quantities are read from stdin, one per line, when not given.

Options:
  --config PATH         Path to config file (default: auto-detect)
  --system NAME         metric, imperial, any or given
  --significant N       Decimal places, -1 for all
  --unit-format NAME    given, short, long or none
  --format NAME         given, number, mixed, fraction or improper
  --spacer TEXT         Text between number and unit
  --version             Show version
  --help                Show this help

Config Resolution:
  1. --config flag
  2. UNITZ_CONFIG environment variable
  3. ./unitz.yaml
  4. ~/.config/unitz/unitz.yaml

Examples:
  unitz expand "24oz"                   1lb, 8oz
  unitz convert oz "1 - 2 lb"           16 - 32oz
  unitz --system metric normalize 23oz
  unitz add "1oz" "1lb, 3oz"            4oz, 1lb

`)
}
