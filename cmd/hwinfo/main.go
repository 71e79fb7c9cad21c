package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/slashdevops/hwinfo"
	"github.com/slashdevops/hwinfo/internal/config"
	"github.com/slashdevops/hwinfo/internal/version"
)

const applicationName = "hwinfo"

// options holds the command-line flags.
type options struct {
	configPath  string
	lang        string
	border      string
	timeout     time.Duration
	logLevel    string
	diagnostics bool
	version     bool
	versionLong bool
}

func main() {
	opts, set := parseFlags(flag.CommandLine, os.Args[1:])

	if opts.version {
		fmt.Println(version.Short(applicationName))
		os.Exit(0)
	}

	if opts.versionLong {
		fmt.Print(version.Long(applicationName))
		os.Exit(0)
	}

	cfg, err := loadConfig(opts, set)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		flag.CommandLine.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	provider, tableOpts, err := newProvider(cfg, logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(context.Background(), provider, tableOpts, cfg.Diagnostics, os.Stdout, os.Stderr); err != nil {
		logger.Error("failed to collect inventory", "error", err)
		os.Exit(1)
	}
}

// parseFlags parses args into options and returns the names of the flags
// that were explicitly set.
func parseFlags(fs *flag.FlagSet, args []string) (options, map[string]bool) {
	var opts options

	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
	fs.StringVar(&opts.lang, "lang", "", "Output language: fr or en")
	fs.StringVar(&opts.border, "border", "", "Table border: ascii, normal, rounded, or markdown")
	fs.DurationVar(&opts.timeout, "timeout", 0, "Timeout for each system command, e.g. 5s")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, or error")
	fs.BoolVar(&opts.diagnostics, "diagnostics", false, "Show diagnostic information about collected components")
	fs.BoolVar(&opts.version, "version", false, "Show version information")
	fs.BoolVar(&opts.versionLong, "version.long", false, "Show detailed version information")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "hwinfo - Show the hardware and operating system inventory of this machine\n\n")
		fmt.Fprintf(out, "Usage:\n  hwinfo [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEnvironment:\n")
		fmt.Fprintf(out, "  %s_LANG, %s_BORDER, %s_COMMAND_TIMEOUT, %s_LOG_LEVEL, %s_DIAGNOSTICS\n",
			config.EnvPrefix, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  hwinfo                                  Inventory in French with ASCII borders\n")
		fmt.Fprintf(out, "  hwinfo -lang en -border rounded         English labels, rounded borders\n")
		fmt.Fprintf(out, "  hwinfo -diagnostics -log-level debug    Show collector outcomes and command timing\n")
		fmt.Fprintf(out, "  hwinfo -version.long                    Show detailed version\n")
	}

	// ExitOnError: Parse never returns an error here.
	_ = fs.Parse(args)

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	return opts, set
}

// loadConfig reads file and environment values, overlays the explicit flags
// and validates the result.
func loadConfig(opts options, set map[string]bool) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	applyFlags(cfg, opts, set)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags overrides cfg with the flags the user set explicitly.
func applyFlags(cfg *config.Config, opts options, set map[string]bool) {
	if set["lang"] {
		cfg.Lang = opts.lang
	}
	if set["border"] {
		cfg.Border = opts.border
	}
	if set["timeout"] {
		cfg.CommandTimeout = opts.timeout
	}
	if set["log-level"] {
		cfg.LogLevel = opts.logLevel
	}
	if set["diagnostics"] {
		cfg.Diagnostics = opts.diagnostics
	}
}

// newProvider builds a provider and table options from a validated configuration.
func newProvider(cfg *config.Config, logger *slog.Logger) (*hwinfo.Provider, hwinfo.TableOptions, error) {
	catalog, err := hwinfo.CatalogFor(cfg.Lang)
	if err != nil {
		return nil, hwinfo.TableOptions{}, err
	}

	border, err := hwinfo.ParseBorder(cfg.Border)
	if err != nil {
		return nil, hwinfo.TableOptions{}, err
	}

	provider := hwinfo.New().
		WithCatalog(catalog).
		WithTimeout(cfg.CommandTimeout).
		WithLogger(logger)

	return provider, hwinfo.TableOptionsFor(catalog, border), nil
}

// run collects the inventory, prints the table to stdout and, when asked,
// the diagnostics to stderr.
func run(ctx context.Context, provider *hwinfo.Provider, tableOpts hwinfo.TableOptions, diagnostics bool, stdout, stderr io.Writer) error {
	props, err := provider.Collect(ctx)
	if diagnostics {
		printDiagnostics(stderr, provider)
	}
	if err != nil {
		return err
	}

	return hwinfo.RenderTable(stdout, props, tableOpts)
}

func printDiagnostics(w io.Writer, provider *hwinfo.Provider) {
	diag := provider.Diagnostics()
	if diag == nil {
		fmt.Fprintln(w, "no diagnostic information available")
		return
	}

	fmt.Fprintln(w, "\nDiagnostics:")
	if len(diag.Collected) > 0 {
		fmt.Fprintf(w, "  Collected: %s\n", strings.Join(diag.Collected, ", "))
	}
	if len(diag.Errors) > 0 {
		fmt.Fprintln(w, "  Errors:")
		components := make([]string, 0, len(diag.Errors))
		for component := range diag.Errors {
			components = append(components, component)
		}
		slices.Sort(components)
		for _, component := range components {
			fmt.Fprintf(w, "    %s: %v\n", component, diag.Errors[component])
		}
	}
}
