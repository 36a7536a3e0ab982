package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/vburojevic/logtally/internal/domain"
)

// Format selects how a report is rendered
type Format string

const (
	FormatPlain Format = "plain" // "LABEL: count" lines
	FormatJSON  Format = "json"  // JSON object label -> count
	FormatTable Format = "table" // bordered grid for terminals
)

// Formats lists every supported format
var Formats = []Format{FormatPlain, FormatJSON, FormatTable}

// ParseFormat converts a flag value to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "plain", "text":
		return FormatPlain, nil
	case "json":
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format %q (want plain, json or table)", s)
	}
}

// Report is a rendered aggregate. The same bytes go to every destination.
type Report struct {
	Format Format
	Body   []byte
}

// Empty reports whether the rendering produced no output
func (r Report) Empty() bool {
	return len(r.Body) == 0
}

// Render produces the report for agg in the given format. Entries keep the
// aggregate's first-seen order, and rendering the same aggregate twice gives
// byte-identical output.
func Render(agg *domain.Aggregate, format Format) (Report, error) {
	var (
		body []byte
		err  error
	)
	switch format {
	case FormatPlain, "":
		format = FormatPlain
		body = renderPlain(agg)
	case FormatJSON:
		body, err = renderJSON(agg)
	case FormatTable:
		body, err = renderTable(agg)
	default:
		return Report{}, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return Report{}, fmt.Errorf("render %s: %w", format, err)
	}
	return Report{Format: format, Body: body}, nil
}

func renderPlain(agg *domain.Aggregate) []byte {
	var buf bytes.Buffer
	for _, e := range agg.Entries() {
		buf.WriteString(string(e.Label))
		buf.WriteString(": ")
		buf.WriteString(strconv.Itoa(e.N))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func renderJSON(agg *domain.Aggregate) ([]byte, error) {
	if agg == nil {
		agg = domain.NewAggregate()
	}
	compact, err := json.Marshal(agg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func renderTable(agg *domain.Aggregate) ([]byte, error) {
	entries := agg.Entries()
	if len(entries) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.Header("Level", "Count")
	for _, e := range entries {
		if err := table.Append([]string{string(e.Label), strconv.Itoa(e.N)}); err != nil {
			return nil, err
		}
	}
	if err := table.Render(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
