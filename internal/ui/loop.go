package ui

// LoopMode is what the explicit functions screen does when playback
// reaches the upper bound: restart from the lower bound, or stop there.
type LoopMode int

const (
	LoopOn LoopMode = iota
	LoopOff
)

// Toggle switches between looping and playing once.
func (l LoopMode) Toggle() LoopMode {
	if l == LoopOff {
		return LoopOn
	}
	return LoopOff
}

// Looping reports whether playback restarts at the upper bound.
func (l LoopMode) Looping() bool { return l != LoopOff }

func (l LoopMode) String() string {
	if l == LoopOff {
		return "once"
	}
	return "loop"
}

// Icon returns the status line indicator, e.g. "[loop]".
func (l LoopMode) Icon() string { return "[" + l.String() + "]" }
