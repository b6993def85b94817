package playback

import "github.com/olivier-w/frameplay/internal/sampler"

// Change reports which facets an Apply pushed to the engines.
type Change uint8

const (
	ChangedFrom Change = 1 << iota
	ChangedTo
	ChangedCounterRange
	ChangedValueRange
)

// Resync mirrors the latest bounds and ranges onto a counter engine and a
// value engine. Each facet is pushed only when it differs from what was
// last pushed, so repeated passes with the same inputs are no-ops.
type Resync struct {
	counter Engine
	value   Engine

	pushed     Change
	from, to   int
	counterKey sampler.Key
	valueKey   sampler.Key
}

// NewResync creates a Resync driving the two engines.
func NewResync(counter, value Engine) *Resync {
	return &Resync{counter: counter, value: value}
}

// Apply pushes b, clamped to the value range, and both ranges. Bounds are
// clamped before the ranges are pushed so that no engine ever holds bounds
// outside its range.
func (s *Resync) Apply(b Bounds, counter, value sampler.Range) Change {
	b = b.Clamp(value.Len() - 1)

	var c Change
	if s.pushed&ChangedFrom == 0 || s.from != b.From {
		s.from = b.From
		s.counter.SetFrom(b.From)
		s.value.SetFrom(b.From)
		c |= ChangedFrom
	}
	if s.pushed&ChangedTo == 0 || s.to != b.To {
		s.to = b.To
		s.counter.SetTo(b.To)
		s.value.SetTo(b.To)
		c |= ChangedTo
	}
	if s.pushed&ChangedCounterRange == 0 || s.counterKey != counter.Key() {
		s.counterKey = counter.Key()
		s.counter.SetRange(counter)
		c |= ChangedCounterRange
	}
	if s.pushed&ChangedValueRange == 0 || s.valueKey != value.Key() {
		s.valueKey = value.Key()
		s.value.SetRange(value)
		c |= ChangedValueRange
	}
	s.pushed |= c
	return c
}
