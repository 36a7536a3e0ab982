package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/vburojevic/logtally/internal/domain"
	"github.com/vburojevic/logtally/internal/filter"
	"github.com/vburojevic/logtally/internal/output"
	"github.com/vburojevic/logtally/internal/tally"
)

// AnalyzeCmd counts log levels in a log file
type AnalyzeCmd struct {
	File    string   `arg:"" required:"" help:"Log file to analyze (e.g. app.log)"`
	Out     string   `short:"o" aliases:"output" default:"${config_output}" help:"Also write the summary to this file"`
	Level   string   `short:"l" default:"${config_level}" help:"Only report this level (e.g. ERROR)"`
	JSON    bool     `short:"j" help:"Write the summary as a JSON object (same as --format json)"`
	Format  string   `short:"f" default:"${config_format}" help:"Summary format: plain, json or table"`
	Pattern string   `short:"p" default:"${config_pattern}" help:"Only classify lines matching this regex"`
	Exclude []string `short:"x" sep:"none" help:"Skip lines matching this regex (can be repeated)"`
}

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	log := globals.logger()

	format, err := c.resolveFormat()
	if err != nil {
		return c.outputError(globals, CodeInvalidFormat, err.Error(), "")
	}

	lines, err := filter.NewPipeline(c.Pattern, c.excludes(globals))
	if err != nil {
		return c.outputError(globals, CodeInvalidPattern, err.Error(), "Check the --pattern/--exclude regular expressions")
	}

	opts := tally.RunOptions{Logger: log}
	if lines != nil {
		opts.Lines = lines
	}

	// Nothing is printed before the whole source has been read.
	agg, stats, err := tally.RunFile(c.File, opts)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return c.outputError(globals, CodeFileNotFound, fmt.Sprintf("Log file '%s' not found.", c.File), "")
		default:
			return c.outputError(globals, CodeReadError, err.Error(), "")
		}
	}
	log.Debug("aggregate ready",
		zap.String("file", c.File),
		zap.Int("lines", stats.Lines),
		zap.Strings("labels", labelStrings(agg.Labels())),
	)

	level := filter.NewLevelFilter(c.Level)
	agg, found := level.Apply(agg)
	if !found {
		emitWarning(globals, fmt.Sprintf("Level '%s' not found in log.", c.Level))
	}

	report, err := output.Render(agg, format)
	if err != nil {
		return c.outputError(globals, CodeRenderError, err.Error(), "")
	}

	var optional []output.Destination
	if c.Out != "" {
		optional = append(optional, output.NewFileDestination(c.Out))
	}
	publisher := output.NewPublisher(output.NewConsoleDestination(globals.Stdout), optional...)

	warnings, err := publisher.Publish(report)
	if err != nil {
		return c.outputError(globals, CodeWriteError, err.Error(), "")
	}
	for _, w := range warnings {
		emitWarning(globals, w.Error())
	}

	return nil
}

// resolveFormat combines --json and --format. --json wins.
func (c *AnalyzeCmd) resolveFormat() (output.Format, error) {
	if c.JSON {
		return output.FormatJSON, nil
	}
	return output.ParseFormat(c.Format)
}

// excludes falls back to the configured exclude list when none was given
func (c *AnalyzeCmd) excludes(globals *Globals) []string {
	if len(c.Exclude) > 0 || globals.Config == nil {
		return c.Exclude
	}
	return globals.Config.Defaults.Exclude
}

func (c *AnalyzeCmd) outputError(globals *Globals, code, message, hint string) error {
	return outputErrorCommon(globals, code, message, hint)
}

func labelStrings(labels []domain.Label) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}
