package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, LabelError, NormalizeLabel("error"))
	assert.Equal(t, LabelWarning, NormalizeLabel("  Warning "))
	assert.Equal(t, Label("DEBUG"), NormalizeLabel("DeBuG"))
	assert.Equal(t, Label(""), NormalizeLabel("   "))
}

func TestLabel_IsCanonical(t *testing.T) {
	for _, l := range CanonicalLabels {
		assert.True(t, l.IsCanonical(), l.String())
	}
	assert.False(t, Label("DEBUG").IsCanonical())
	assert.False(t, Label("info").IsCanonical())
}

func TestLabelSet_Add(t *testing.T) {
	var s LabelSet
	s = s.Add("A")
	s = s.Add("B")
	s = s.Add("A")

	assert.Equal(t, LabelSet{"A", "B"}, s)
	assert.True(t, s.Contains("B"))
	assert.False(t, s.Contains("C"))
}

func TestAggregate(t *testing.T) {
	t.Run("zero value is usable", func(t *testing.T) {
		var a Aggregate
		a.Inc("X")
		n, ok := a.Get("X")
		require.True(t, ok)
		assert.Equal(t, 1, n)
	})

	t.Run("nil aggregate reads as empty", func(t *testing.T) {
		var a *Aggregate
		assert.Equal(t, 0, a.Len())
		assert.Nil(t, a.Entries())
		assert.Nil(t, a.Labels())
		_, ok := a.Get("X")
		assert.False(t, ok)
	})

	t.Run("keeps first-seen order", func(t *testing.T) {
		a := NewAggregate()
		for _, l := range []Label{"C", "A", "C", "B", "A"} {
			a.Inc(l)
		}
		assert.Equal(t, []Label{"C", "A", "B"}, a.Labels())
		assert.Equal(t, []Count{{"C", 2}, {"A", 2}, {"B", 1}}, a.Entries())
	})

	t.Run("entries are a copy", func(t *testing.T) {
		a := NewAggregate()
		a.Inc("A")
		entries := a.Entries()
		entries[0].N = 99

		n, _ := a.Get("A")
		assert.Equal(t, 1, n)
	})

	t.Run("only returns single entry", func(t *testing.T) {
		a := NewAggregate()
		a.Inc("A")
		a.Inc("B")
		a.Inc("B")

		only, ok := a.Only("B")
		require.True(t, ok)
		assert.Equal(t, []Count{{"B", 2}}, only.Entries())

		// source is untouched
		assert.Equal(t, 2, a.Len())
	})

	t.Run("only on missing label", func(t *testing.T) {
		a := NewAggregate()
		a.Inc("A")
		only, ok := a.Only("Z")
		assert.False(t, ok)
		assert.Equal(t, 0, only.Len())
	})
}

func TestAggregate_MarshalJSON(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		data, err := json.Marshal(NewAggregate())
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("keys follow first-seen order", func(t *testing.T) {
		a := NewAggregate()
		a.Inc("WARNING")
		a.Inc("ERROR")
		a.Inc("ERROR")
		a.Inc("DEBUG")

		data, err := json.Marshal(a)
		require.NoError(t, err)
		assert.Equal(t, `{"WARNING":1,"ERROR":2,"DEBUG":1}`, string(data))
	})
}
