package domain

import (
	"bytes"
	"encoding/json"
)

// Count is a single label/count pair of an Aggregate
type Count struct {
	Label Label `json:"label"`
	N     int   `json:"count"`
}

// Aggregate maps labels to observation counts and remembers the order in
// which labels were first seen. Counts only ever grow; there is no way to
// decrement or remove an entry.
type Aggregate struct {
	entries []Count
	index   map[Label]int
}

// NewAggregate creates an empty aggregate
func NewAggregate() *Aggregate {
	return &Aggregate{index: make(map[Label]int)}
}

// Inc adds one observation for label, appending it on first sight
func (a *Aggregate) Inc(label Label) {
	if a.index == nil {
		a.index = make(map[Label]int)
	}
	if i, ok := a.index[label]; ok {
		a.entries[i].N++
		return
	}
	a.index[label] = len(a.entries)
	a.entries = append(a.entries, Count{Label: label, N: 1})
}

// Get returns the count for label and whether it was ever observed
func (a *Aggregate) Get(label Label) (int, bool) {
	if a == nil {
		return 0, false
	}
	i, ok := a.index[label]
	if !ok {
		return 0, false
	}
	return a.entries[i].N, true
}

// Len returns the number of distinct labels
func (a *Aggregate) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// Entries returns a copy of all entries in first-seen order
func (a *Aggregate) Entries() []Count {
	if a == nil {
		return nil
	}
	out := make([]Count, len(a.entries))
	copy(out, a.entries)
	return out
}

// Labels returns the distinct labels in first-seen order
func (a *Aggregate) Labels() []Label {
	if a == nil {
		return nil
	}
	out := make([]Label, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Label
	}
	return out
}

// Only returns a new aggregate holding just label, and false when the label
// was never observed (the returned aggregate is then empty).
func (a *Aggregate) Only(label Label) (*Aggregate, bool) {
	out := NewAggregate()
	n, ok := a.Get(label)
	if !ok {
		return out, false
	}
	out.index[label] = 0
	out.entries = append(out.entries, Count{Label: label, N: n})
	return out, true
}

// MarshalJSON encodes the aggregate as a JSON object whose keys keep
// first-seen order.
func (a *Aggregate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range a.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(e.Label))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.N)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
