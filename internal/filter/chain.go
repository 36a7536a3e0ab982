package filter

// LineFilter determines if a raw log line should be classified
type LineFilter interface {
	// Match returns true if the line passes the filter
	Match(line string) bool
}

// Chain combines multiple filters (all must pass)
type Chain struct {
	filters []LineFilter
}

// NewChain creates a filter chain from multiple filters
func NewChain(filters ...LineFilter) *Chain {
	return &Chain{filters: filters}
}

// Match returns true only if all filters pass
func (c *Chain) Match(line string) bool {
	for _, f := range c.filters {
		if !f.Match(line) {
			return false
		}
	}
	return true
}

// Add appends a filter to the chain
func (c *Chain) Add(f LineFilter) {
	c.filters = append(c.filters, f)
}

// Len returns the number of filters in the chain
func (c *Chain) Len() int {
	return len(c.filters)
}
