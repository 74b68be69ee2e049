// Package main provides the entry point for Greeter.
// Greeter says "Hello World" in a rotating set of languages, switching to
// the next one on a fixed cadence until a configured number of greetings
// has been shown.
//
// Front ends:
//   - GTK4/libadwaita window with a system tray indicator
//   - Bubble Tea terminal UI
//   - Plain line-per-greeting output for pipes and scripts
//
// Usage:
//
//	greeter [options]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/yllada/greeter/cli"
	"github.com/yllada/greeter/clock"
	"github.com/yllada/greeter/common"
	"github.com/yllada/greeter/config"
	"github.com/yllada/greeter/greeting"
	"github.com/yllada/greeter/rotator"
	"github.com/yllada/greeter/tui"
	"github.com/yllada/greeter/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")
	configPath  = flag.String("config", "", "Configuration file")

	frontend = flag.String("frontend", "", "Front end: auto, gui, tui or plain")
	interval = flag.Duration("interval", 0, "Time each greeting is shown")
	maxCount = flag.Int("max-count", 0, "Number of greetings before stopping")
	listOnly = flag.Bool("list", false, "List the greeting table and exit")
	dryRun   = flag.Bool("dry-run", false, "Run the whole rotation instantly")
)

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp(os.Stdout)
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}
	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	os.Exit(run())
}

// run does the work of main and returns the process exit code, so that
// deferred cleanup in main still runs.
func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	table, err := cfg.Table()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	out := cli.New(os.Stdout)
	if *listOnly {
		if err := out.PrintTable(table); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	if *dryRun {
		return runDry(out, table, cfg.RotatorOptions())
	}

	name, err := resolveFrontend(cfg.Frontend, common.HasDisplay(), term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	common.LogInfo("Starting %s v%s (%s front end)", common.AppName, appVersion, name)

	switch name {
	case common.FrontendGUI:
		app := ui.NewApplication(cfg, table, appVersion)
		app.QuitOnDone(ctx)
		exitCode := app.Run(os.Args[:1])
		if exitCode != 0 {
			common.LogWarn("Application exited with code %d", exitCode)
		}
		return exitCode

	case common.FrontendTUI:
		scheduler := tui.NewScheduler()
		r, err := rotator.New(table, cfg.RotatorOptions(), scheduler)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return exitCode(tui.Run(ctx, r, scheduler))

	default:
		r, err := rotator.New(table, cfg.RotatorOptions(), clock.NewTicker())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return exitCode(out.Run(ctx, r))
	}
}

// runDry plays the whole rotation on a manual clock.
func runDry(out *cli.CLI, table *greeting.Table, opts rotator.Options) int {
	manual := clock.NewManual()
	r, err := rotator.New(table, opts, manual)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return exitCode(out.DryRun(r, manual))
}

// loadConfig loads the configuration file, then applies environment
// and flag overrides in that order.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		if cfg == nil {
			return nil, err
		}
		common.LogWarn("Using default configuration: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	cfg.Apply(config.Overrides{
		Interval: *interval,
		MaxCount: *maxCount,
		Frontend: *frontend,
	})

	// Validated once, after every layer, so a flag can repair a bad
	// value from the file or the environment.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveFrontend maps the configured front end to a concrete one.
// "auto" picks the GUI when a display is available, the TUI when stdout
// is a terminal, and plain output otherwise.
func resolveFrontend(name string, hasDisplay, isTerminal bool) (string, error) {
	switch name {
	case common.FrontendGUI:
		if !hasDisplay {
			return "", common.ErrNoDisplay
		}
		return name, nil
	case common.FrontendTUI, common.FrontendPlain:
		return name, nil
	case common.FrontendAuto, "":
		switch {
		case hasDisplay:
			return common.FrontendGUI, nil
		case isTerminal:
			return common.FrontendTUI, nil
		default:
			return common.FrontendPlain, nil
		}
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownFrontend, name)
	}
}

// exitCode maps a front end's result to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context to allow cleanup.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, shutting down", sig)
		cancel()
	}()
}
