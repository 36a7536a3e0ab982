package filter

import (
	"fmt"
)

// Pipeline chains the include pattern and exclude patterns applied to raw
// lines before classification. A nil Pipeline passes everything.
type Pipeline struct {
	chain *Chain
}

// NewPipeline compiles pattern and excludes. It returns nil when there is
// nothing to filter.
func NewPipeline(pattern string, excludes []string) (*Pipeline, error) {
	chain := NewChain()
	if pattern != "" {
		f, err := NewRegexFilter(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		chain.Add(f)
	}
	for _, ex := range excludes {
		if ex == "" {
			continue
		}
		f, err := NewExcludePatternFilter(ex)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", ex, err)
		}
		chain.Add(f)
	}
	if chain.Len() == 0 {
		return nil, nil
	}
	return &Pipeline{chain: chain}, nil
}

// Match returns true when the line passes all predicates.
func (p *Pipeline) Match(line string) bool {
	if p == nil {
		return true
	}
	return p.chain.Match(line)
}
