package classify

import (
	"strings"
	"unicode"

	"github.com/vburojevic/logtally/internal/domain"
)

// rule maps a lowercase substring to the canonical label it implies
type rule struct {
	needle string
	label  domain.Label
}

const openBrackets = "[({"

// Classifier assigns level labels to free-text log lines.
//
// Two independent heuristics run on every line:
//   - canonical: an unanchored, case-insensitive substring test for "info",
//     "warning" and "error" (so "information" counts as INFO)
//   - ad-hoc: every whitespace-delimited token whose letters are all
//     uppercase, after dropping brackets and trailing punctuation, becomes
//     its own label
type Classifier struct {
	rules []rule
}

// New creates a classifier with the canonical INFO/WARNING/ERROR rules
func New() *Classifier {
	return &Classifier{
		rules: []rule{
			{needle: "info", label: domain.LabelInfo},
			{needle: "warning", label: domain.LabelWarning},
			{needle: "error", label: domain.LabelError},
		},
	}
}

// Classify returns the labels for line. Canonical labels come first, followed
// by ad-hoc tokens in the order they appear. A blank line yields an empty set.
func (c *Classifier) Classify(line string) domain.LabelSet {
	var labels domain.LabelSet

	lower := strings.ToLower(line)
	for _, r := range c.rules {
		if strings.Contains(lower, r.needle) {
			labels = labels.Add(r.label)
		}
	}

	for _, tok := range strings.Fields(line) {
		label, ok := AdHocLabel(tok)
		if !ok || label.IsCanonical() {
			continue
		}
		labels = labels.Add(label)
	}

	return labels
}

// AdHocLabel reports whether tok looks like a level token and returns the
// label it names. Opening brackets and trailing punctuation are dropped
// ("[DEBUG]" -> "DEBUG", "FATAL:" -> "FATAL"). The rest needs at least one
// letter and no lowercase; other characters are kept ("DISK-FULL").
func AdHocLabel(tok string) (domain.Label, bool) {
	core := strings.TrimLeft(tok, openBrackets)
	core = strings.TrimRightFunc(core, unicode.IsPunct)
	if core == "" {
		return "", false
	}

	hasLetter := false
	for _, r := range core {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsLower(r) {
			return "", false
		}
		hasLetter = true
	}
	if !hasLetter {
		return "", false
	}
	return domain.Label(core), true
}
