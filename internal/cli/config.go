package cli

import (
	"encoding/json"
	"fmt"

	"github.com/vburojevic/logtally/internal/config"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct {
	JSON bool `short:"j" help:"Output as JSON"`
}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if c.JSON {
		out := map[string]interface{}{
			"format":  cfg.Format,
			"quiet":   cfg.Quiet,
			"verbose": cfg.Verbose,
			"defaults": map[string]interface{}{
				"level":   cfg.Defaults.Level,
				"output":  cfg.Defaults.Output,
				"pattern": cfg.Defaults.Pattern,
				"exclude": cfg.Defaults.Exclude,
			},
		}
		encoder := json.NewEncoder(globals.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  format:  %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  quiet:   %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose: %v\n", cfg.Verbose)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Defaults:")
	fmt.Fprintf(globals.Stdout, "  level:   %s\n", cfg.Defaults.Level)
	fmt.Fprintf(globals.Stdout, "  output:  %s\n", cfg.Defaults.Output)
	fmt.Fprintf(globals.Stdout, "  pattern: %s\n", cfg.Defaults.Pattern)
	if len(cfg.Defaults.Exclude) > 0 {
		fmt.Fprintf(globals.Stdout, "  exclude: %v\n", cfg.Defaults.Exclude)
	}

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ./.logtally.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.logtally.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.config/logtally/config.yaml")
		return nil
	}

	fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# logtally configuration file
# Place this file at ./.logtally.yaml, ~/.logtally.yaml or ~/.config/logtally/config.yaml

# Summary format: "plain" (default), "json" or "table"
format: plain

# Suppress warnings such as a missing --level or an unwritable --out file
quiet: false

# Enable debug output on stderr
verbose: false

# Default values for analyze
defaults:
  # Only report this level
  # level: ERROR

  # Also write the summary to this file
  # output: summary.txt

  # Only classify lines matching this regex
  # pattern: "worker"

  # Skip lines matching these regexes
  # exclude:
  #   - heartbeat
  #   - keepalive
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
