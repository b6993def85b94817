package playback

import (
	"github.com/olivier-w/frameplay/internal/resolve"
	"github.com/olivier-w/frameplay/internal/sampler"
)

// Frame is the outcome of one Session pass.
type Frame struct {
	Resolved resolve.Resolved
	Variant  sampler.Variant
	Bounds   Bounds
	Counter  sampler.Range
	Value    sampler.Range
	Changed  Change
}

// Session runs the resolve → sample → resync pipeline of the explicit
// functions screen. One Pass corresponds to one update of the UI loop.
type Session struct {
	resolver *resolve.Resolver
	memo     *sampler.Memo
	resync   *Resync
	restarts Restarts
	once     bool

	counter *Cursor
	value   *Cursor
}

// NewSession creates a Session with its own counter and value cursors.
// Both cursors share one restart counter, so each loop of the pair is
// one generation.
func NewSession(r *resolve.Resolver, memo *sampler.Memo) *Session {
	s := &Session{resolver: r, memo: memo}
	s.counter = NewCursor(s.restart)
	s.value = NewCursor(func() Token { return s.restarts.Last() })
	s.resync = NewResync(s.counter, s.value)
	return s
}

func (s *Session) restart() Token {
	if s.once {
		return s.restarts.Last()
	}
	return s.restarts.Next()
}

// SetLoop chooses whether playback restarts at the upper bound. Turning
// looping back on resumes stopped cursors.
func (s *Session) SetLoop(loop bool) {
	s.once = !loop
	if loop {
		s.counter.Resume()
		s.value.Resume()
	}
}

// Pass resolves in, samples the active family and pushes whatever changed
// to the cursors.
func (s *Session) Pass(kind sampler.Kind, in resolve.Inputs) Frame {
	res := s.resolver.Resolve(in)
	v := sampler.FromResolved(kind, res)
	counter := s.memo.Counter(res.N)
	value := s.memo.Get(res.N, v)
	b := Bounds{From: res.From, To: res.To}
	changed := s.resync.Apply(b, counter, value)
	return Frame{
		Resolved: res,
		Variant:  v,
		Bounds:   b.Clamp(res.N),
		Counter:  counter,
		Value:    value,
		Changed:  changed,
	}
}

// Step advances both cursors by one frame. The counter cursor ends first
// and draws the next restart token; the value cursor then observes it.
func (s *Session) Step() {
	s.counter.Step()
	s.value.Step()
}

// Counter returns the cursor over the linear counter range.
func (s *Session) Counter() *Cursor { return s.counter }

// Value returns the cursor over the sampled value range.
func (s *Session) Value() *Cursor { return s.value }

// Restarts returns the most recent restart token.
func (s *Session) Restarts() Token { return s.restarts.Last() }

// Memo returns the memo the session samples through.
func (s *Session) Memo() *sampler.Memo { return s.memo }
