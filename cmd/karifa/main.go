package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"
	"libdb.so/karifa"
	"libdb.so/karifa/animation"
)

// checkWindow is how long --check plays each animation.
const checkWindow = 30 * time.Second

var (
	config    = "karifa.toml"
	startWith = ""
	verbose   = false
	list      = false
	check     = false
	preview   = false
)

func init() {
	pflag.StringVarP(&config, "config", "c", config, "configuration file")
	pflag.StringVarP(&startWith, "animation", "a", startWith, "animation to start with instead of the saved one")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose output")
	pflag.BoolVarP(&list, "list", "l", list, "list the built-in catalogs and exit")
	pflag.BoolVar(&check, "check", check, "validate the configuration and catalog, then exit")
	pflag.BoolVarP(&preview, "preview", "p", preview, "draw the ornament in the terminal")
}

func main() {
	pflag.Parse()

	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stderr
	if preview && !verbose {
		// Logs would scribble over the preview.
		logOutput = io.Discard
	}

	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if list {
		return listCatalogs(os.Stdout)
	}

	cfg, err := readConfig()
	if err != nil {
		return err
	}
	if preview {
		cfg.Preview = true
	}
	if startWith != "" {
		cfg.Animation = startWith
	}

	d, err := karifa.NewDaemon(cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	if check {
		return checkCatalog(os.Stdout, d.Catalog(), time.Duration(cfg.Tick))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := d.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("daemon failed: %w", err)
	}

	return nil
}

func readConfig() (*karifa.Config, error) {
	f, err := os.Open(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !pflag.CommandLine.Changed("config") {
			slog.Debug("no configuration file, using defaults", "path", config)
			return karifa.ParseConfig(strings.NewReader(""))
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return karifa.ParseConfig(f)
}

func listCatalogs(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, name := range animation.CatalogNames() {
		c, err := animation.Lookup(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\t%d LEDs\trgb: %v\n", c.Name, c.Mono.Channels, c.HasRGB())
		for i, a := range c.Animations {
			loop := "forever"
			if d := a.Mono.TotalDuration(); !holds(a.Mono) {
				loop = (time.Duration(d) * time.Millisecond).String()
			}
			fmt.Fprintf(tw, "  %d\t%s\t%s\n", i, a.Name, loop)
		}
	}

	return tw.Flush()
}

// checkCatalog plays every animation for a while on a simulated clock and
// reports what it did.
func checkCatalog(w io.Writer, c *animation.Catalog, tick time.Duration) error {
	results, err := karifa.Rehearse(c, tick, checkWindow)
	if err != nil {
		return fmt.Errorf("failed to rehearse catalog: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range results {
		state := "ok"
		if !r.Lit {
			state = "dark"
		}
		fmt.Fprintf(tw, "  %d\t%s\t%d steps\t%s\n", r.Index, r.Name, r.Steps, state)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "ok: catalog %q with %d animations\n", c.Name, c.Len())
	return nil
}

func holds(p animation.Program) bool {
	return len(p) > 0 && p[len(p)-1].Duration == animation.Forever
}
