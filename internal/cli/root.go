package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/vburojevic/logtally/internal/config"
	"github.com/vburojevic/logtally/internal/logging"
)

// CLI is the root command structure for logtally
type CLI struct {
	// Global flags
	Quiet   bool `short:"q" help:"Suppress warnings (the report is still printed)"`
	Verbose bool `short:"v" help:"Show debug output on stderr"`

	// Commands
	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"Count log levels in a log file"`
	Config  ConfigCmd  `cmd:"" help:"Show or manage configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI) *Globals {
	return NewGlobalsWithConfig(cli, config.Default())
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
	}

	// Apply config values if CLI flags weren't explicitly set
	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = true
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = true
		}
	}

	g.Logger = logging.New(g.Stderr, g.Verbose)
	return g
}

// logger never returns nil so commands can log unconditionally
func (g *Globals) logger() *zap.Logger {
	if g == nil || g.Logger == nil {
		return logging.Nop()
	}
	return g.Logger
}

// VersionCmd shows version information
type VersionCmd struct {
	JSON bool `short:"j" help:"Output as JSON"`
}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if v.JSON {
		return json.NewEncoder(globals.Stdout).Encode(map[string]string{
			"version": Version,
			"commit":  Commit,
		})
	}
	_, err := fmt.Fprintf(globals.Stdout, "logtally version %s (%s)\n", Version, Commit)
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)

// KongVars exposes config values as kong interpolation variables so flag
// defaults come from the config file. Flags given on the command line still
// win.
func KongVars(cfg *config.Config) kong.Vars {
	if cfg == nil {
		cfg = config.Default()
	}
	return kong.Vars{
		"config_format":  cfg.Format,
		"config_level":   cfg.Defaults.Level,
		"config_output":  cfg.Defaults.Output,
		"config_pattern": cfg.Defaults.Pattern,
	}
}
