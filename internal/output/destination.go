package output

import (
	"fmt"
	"io"
	"os"
)

// Destination receives a finished report
type Destination interface {
	Name() string
	WriteReport(r Report) error
}

// ConsoleDestination writes reports to a stream such as stdout
type ConsoleDestination struct {
	w io.Writer
}

// NewConsoleDestination creates a console destination
func NewConsoleDestination(w io.Writer) *ConsoleDestination {
	return &ConsoleDestination{w: w}
}

func (d *ConsoleDestination) Name() string { return "console" }

// WriteReport writes the report body as is
func (d *ConsoleDestination) WriteReport(r Report) error {
	if r.Empty() {
		return nil
	}
	_, err := d.w.Write(r.Body)
	return err
}

// FileDestination writes reports to a file, replacing previous content
type FileDestination struct {
	Path string
}

// NewFileDestination creates a file destination for path
func NewFileDestination(path string) *FileDestination {
	return &FileDestination{Path: path}
}

func (d *FileDestination) Name() string { return d.Path }

// WriteReport creates or truncates the file and writes the report. The file
// is closed on every path.
func (d *FileDestination) WriteReport(r Report) (err error) {
	f, err := os.Create(d.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(r.Body)
	return err
}

// DestinationError reports a failed optional destination
type DestinationError struct {
	Destination string
	Err         error
}

func (e *DestinationError) Error() string {
	return fmt.Sprintf("failed to write summary to %s: %v", e.Destination, e.Err)
}

func (e *DestinationError) Unwrap() error {
	return e.Err
}

// Publisher writes one report to the console and then to any optional
// destinations.
type Publisher struct {
	console  Destination
	optional []Destination
}

// NewPublisher creates a publisher. console is always written; optional
// destinations are best effort.
func NewPublisher(console Destination, optional ...Destination) *Publisher {
	return &Publisher{console: console, optional: optional}
}

// Publish writes r to the console first. A console failure is returned as
// err. Failures of optional destinations never stop the others and come back
// as warnings, each a *DestinationError.
func (p *Publisher) Publish(r Report) (warnings []error, err error) {
	if err := p.console.WriteReport(r); err != nil {
		return nil, fmt.Errorf("write %s: %w", p.console.Name(), err)
	}
	for _, d := range p.optional {
		if werr := d.WriteReport(r); werr != nil {
			warnings = append(warnings, &DestinationError{Destination: d.Name(), Err: werr})
		}
	}
	return warnings, nil
}
