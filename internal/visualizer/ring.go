package visualizer

// Ring keeps the most recent values pushed into it, up to a fixed
// capacity. It is used for motion trails.
type Ring[T any] struct {
	buf []T
	w   int // write position
	len int // current fill level
}

// NewRing creates a ring holding at most size values.
func NewRing[T any](size int) *Ring[T] {
	return &Ring[T]{buf: make([]T, max(size, 1))}
}

// Push appends v, dropping the oldest value when full.
func (r *Ring[T]) Push(v T) {
	r.buf[r.w] = v
	r.w = (r.w + 1) % len(r.buf)
	r.len = min(r.len+1, len(r.buf))
}

// Len returns the number of values held.
func (r *Ring[T]) Len() int { return r.len }

// Items returns the held values from oldest to newest.
func (r *Ring[T]) Items() []T {
	out := make([]T, r.len)
	start := (r.w - r.len + len(r.buf)) % len(r.buf)
	for i := range r.len {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}

// Clear empties the ring.
func (r *Ring[T]) Clear() {
	r.w = 0
	r.len = 0
}
