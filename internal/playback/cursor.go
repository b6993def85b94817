package playback

import "github.com/olivier-w/frameplay/internal/sampler"

// Cursor is a minimal frame-playback engine: each Step advances one index
// through [from, to] of its range. When it reaches to it calls OnEnd, and
// if OnEnd returns a token not seen before it loops back to from.
type Cursor struct {
	rng      sampler.Range
	from, to int
	pos      int
	onEnd    func() Token
	gen      Token
	stopped  bool
}

// NewCursor creates a Cursor. onEnd may be nil, in which case playback
// stops at the upper bound.
func NewCursor(onEnd func() Token) *Cursor {
	return &Cursor{onEnd: onEnd}
}

// SetFrom moves the lower bound, dragging the position along if needed.
func (c *Cursor) SetFrom(from int) {
	c.from = from
	c.clampPos()
}

// SetTo moves the upper bound, pulling the position back if needed.
func (c *Cursor) SetTo(to int) {
	c.to = to
	c.clampPos()
}

// SetRange swaps the sampled values while keeping the current index, so the
// cursor continues from the same point on the new curve.
func (c *Cursor) SetRange(r sampler.Range) {
	c.rng = r
	c.clampPos()
}

// clampPos keeps pos inside [from, to] and inside the range. A cursor
// stopped at its upper bound resumes once the bound moves past it.
func (c *Cursor) clampPos() {
	last := c.rng.Len() - 1
	if last < 0 {
		c.pos = 0
		return
	}
	c.pos = max(min(max(c.pos, c.from), c.to, last), 0)
	if c.stopped && c.pos < min(c.to, last) {
		c.stopped = false
	}
}

// Step advances the cursor by one frame and reports whether it moved.
func (c *Cursor) Step() bool {
	if c.stopped || c.rng.Len() == 0 {
		return false
	}
	if c.pos < c.to {
		c.pos++
		c.clampPos()
		return true
	}
	if c.onEnd == nil {
		c.stopped = true
		return false
	}
	tok := c.onEnd()
	if tok == c.gen {
		c.stopped = true
		return false
	}
	c.gen = tok
	c.pos = c.from
	c.clampPos()
	return true
}

// Resume clears a stop caused by OnEnd declining to restart.
func (c *Cursor) Resume() { c.stopped = false }

// Stopped reports whether the cursor has halted at its upper bound.
func (c *Cursor) Stopped() bool { return c.stopped }

// Position returns the current index.
func (c *Cursor) Position() int { return c.pos }

// Generation returns the token of the current loop, 0 for the first one.
func (c *Cursor) Generation() Token { return c.gen }

// Value returns the sample at the current index, or false when the range
// is empty.
func (c *Cursor) Value() (float64, bool) {
	if c.rng.Len() == 0 {
		return 0, false
	}
	return c.rng.At(c.pos), true
}
