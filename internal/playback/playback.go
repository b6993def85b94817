// Package playback keeps frame-playback engines in step with resolved
// bounds and freshly sampled ranges.
package playback

import "github.com/olivier-w/frameplay/internal/sampler"

// Engine is a frame-playback engine that walks a Range between two indices.
type Engine interface {
	SetFrom(from int)
	SetTo(to int)
	SetRange(r sampler.Range)
}

// Token distinguishes successive loop generations of an engine. Only its
// strict increase is meaningful.
type Token uint64

// Restarts hands out restart tokens.
type Restarts struct {
	last Token
}

// Next returns a token greater than every token returned before.
func (r *Restarts) Next() Token {
	r.last++
	return r.last
}

// Last returns the most recent token, 0 before the first restart.
func (r *Restarts) Last() Token { return r.last }

// Bounds is the active window [From, To] of indices into a Range.
type Bounds struct {
	From, To int
}

// Clamp returns b with both ends inside [0, n] and From <= To.
func (b Bounds) Clamp(n int) Bounds {
	if n < 0 {
		n = 0
	}
	b.From = min(max(b.From, 0), n)
	b.To = min(max(b.To, 0), n)
	if b.From > b.To {
		b.From, b.To = b.To, b.From
	}
	return b
}
