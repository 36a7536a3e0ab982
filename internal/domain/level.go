package domain

import "strings"

// Label is a level label such as INFO, ERROR or any ad-hoc uppercase token
// found in a log line. Labels are always stored uppercase.
type Label string

// Canonical labels detected by substring matching
const (
	LabelInfo    Label = "INFO"
	LabelWarning Label = "WARNING"
	LabelError   Label = "ERROR"
)

// CanonicalLabels lists the canonical labels in classification order
var CanonicalLabels = []Label{LabelInfo, LabelWarning, LabelError}

// IsCanonical reports whether l is one of INFO, WARNING or ERROR
func (l Label) IsCanonical() bool {
	switch l {
	case LabelInfo, LabelWarning, LabelError:
		return true
	default:
		return false
	}
}

// String returns the label text
func (l Label) String() string {
	return string(l)
}

// NormalizeLabel converts user input (e.g. "error", " Warning ") to a Label
func NormalizeLabel(s string) Label {
	return Label(strings.ToUpper(strings.TrimSpace(s)))
}

// LabelSet is the ordered, duplicate-free set of labels assigned to one line.
type LabelSet []Label

// Add appends l unless it is already present and returns the updated set
func (s LabelSet) Add(l Label) LabelSet {
	if s.Contains(l) {
		return s
	}
	return append(s, l)
}

// Contains reports whether l is in the set
func (s LabelSet) Contains(l Label) bool {
	for _, existing := range s {
		if existing == l {
			return true
		}
	}
	return false
}
