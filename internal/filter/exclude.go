package filter

import (
	"regexp"
)

// ExcludePatternFilter drops lines matching a regex pattern
type ExcludePatternFilter struct {
	pattern *regexp.Regexp
}

// NewExcludePatternFilter creates an exclusion filter from a pattern string
func NewExcludePatternFilter(pattern string) (*ExcludePatternFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &ExcludePatternFilter{pattern: re}, nil
}

// Match returns true if the line does NOT match the exclusion pattern
func (f *ExcludePatternFilter) Match(line string) bool {
	if f.pattern == nil {
		return true
	}
	return !f.pattern.MatchString(line)
}
