package filter

import (
	"github.com/vburojevic/logtally/internal/domain"
)

// LevelFilter restricts a finished aggregate to one requested label
type LevelFilter struct {
	requested string
	label     domain.Label
}

// NewLevelFilter creates a level filter. An empty request means no filter.
func NewLevelFilter(requested string) *LevelFilter {
	return &LevelFilter{requested: requested, label: domain.NormalizeLabel(requested)}
}

// Active reports whether a level was requested
func (f *LevelFilter) Active() bool {
	return f != nil && f.label != ""
}

// Label returns the normalized requested label
func (f *LevelFilter) Label() domain.Label {
	if f == nil {
		return ""
	}
	return f.label
}

// Apply returns the aggregate to report. Without a filter it is agg itself.
// With a filter it holds only the requested entry; found is false (and the
// result empty) when that label was never observed.
func (f *LevelFilter) Apply(agg *domain.Aggregate) (filtered *domain.Aggregate, found bool) {
	if !f.Active() {
		if agg == nil {
			return domain.NewAggregate(), true
		}
		return agg, true
	}
	return agg.Only(f.label)
}
