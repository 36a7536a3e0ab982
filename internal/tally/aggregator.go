package tally

import "github.com/vburojevic/logtally/internal/domain"

// Aggregator folds classified lines into an Aggregate, one line at a time in
// arrival order. It is not safe for concurrent use.
type Aggregator struct {
	agg *domain.Aggregate
}

// NewAggregator creates an aggregator with an empty aggregate
func NewAggregator() *Aggregator {
	return &Aggregator{agg: domain.NewAggregate()}
}

// Observe counts one line: every distinct label in labels is incremented by
// exactly one, however many heuristics produced it.
func (a *Aggregator) Observe(labels domain.LabelSet) {
	var seen domain.LabelSet
	for _, l := range labels {
		if seen.Contains(l) {
			continue
		}
		seen = append(seen, l)
		a.agg.Inc(l)
	}
}

// Finalize returns the accumulated aggregate
func (a *Aggregator) Finalize() *domain.Aggregate {
	return a.agg
}
