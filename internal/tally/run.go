package tally

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/vburojevic/logtally/internal/classify"
	"github.com/vburojevic/logtally/internal/domain"
)

const maxLineSize = 1024 * 1024

// ErrSourceOpen is returned when the input source cannot be opened
var ErrSourceOpen = errors.New("cannot open log source")

// ErrSourceRead is returned when reading the input source fails mid-run
var ErrSourceRead = errors.New("cannot read log source")

// LineMatcher decides whether a raw line is classified at all
type LineMatcher interface {
	Match(line string) bool
}

// RunOptions configures a single classify/observe pass
type RunOptions struct {
	Classifier *classify.Classifier // nil uses classify.New()
	Lines      LineMatcher          // optional pre-classification filter
	Clock      clock.Clock          // nil uses the wall clock
	Logger     *zap.Logger          // nil disables diagnostics
}

// Stats describes a finished run
type Stats struct {
	Lines     int           // lines read from the source
	Skipped   int           // lines rejected by the line filter
	Unmatched int           // classified lines that produced no label
	Elapsed   time.Duration // wall time of the run
}

// Run reads r line by line, classifies each line and folds the labels into a
// fresh aggregate. A read failure aborts the run and no aggregate is returned.
func Run(r io.Reader, opts RunOptions) (*domain.Aggregate, Stats, error) {
	opts = opts.withDefaults()
	start := opts.Clock.Now()

	var stats Stats
	agg := NewAggregator()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if opts.Lines != nil && !opts.Lines.Match(line) {
			stats.Skipped++
			continue
		}

		labels := opts.Classifier.Classify(line)
		if len(labels) == 0 {
			stats.Unmatched++
			continue
		}
		agg.Observe(labels)
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: line %d: %w", ErrSourceRead, stats.Lines+1, err)
	}

	stats.Elapsed = opts.Clock.Since(start)
	result := agg.Finalize()
	opts.Logger.Debug("run finished",
		zap.Int("lines", stats.Lines),
		zap.Int("skipped", stats.Skipped),
		zap.Int("unmatched", stats.Unmatched),
		zap.Int("labels", result.Len()),
		zap.Duration("elapsed", stats.Elapsed),
	)
	return result, stats, nil
}

// RunFile opens path and runs over its lines. The file is closed on every
// exit path; failure to open it is reported before any line is read.
func RunFile(path string, opts RunOptions) (*domain.Aggregate, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrSourceOpen, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && opts.Logger != nil {
			opts.Logger.Debug("failed to close source", zap.String("path", path), zap.Error(cerr))
		}
	}()

	if opts.Logger != nil {
		opts.Logger.Debug("reading source", zap.String("path", path))
	}
	return Run(f, opts)
}

func (o RunOptions) withDefaults() RunOptions {
	if o.Classifier == nil {
		o.Classifier = classify.New()
	}
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
