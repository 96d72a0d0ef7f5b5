package input

// MouseTracker turns cursor positions into "delta since last sample" pairs.
// The first sample only primes the tracker so a stale cursor position
// cannot produce a huge jump.
type MouseTracker struct {
	lastX, lastY float32
	firstSample  bool
}

// NewMouseTracker returns a tracker waiting for its first sample.
func NewMouseTracker() *MouseTracker {
	return &MouseTracker{firstSample: true}
}

// Sample returns the look delta for a new cursor position. dy is positive
// when the cursor moves up the screen.
func (m *MouseTracker) Sample(x, y float32) (dx, dy float32) {
	if m.firstSample {
		m.lastX, m.lastY = x, y
		m.firstSample = false
		return 0, 0
	}

	dx = x - m.lastX
	dy = m.lastY - y // screen Y grows downward
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Relative converts a relative-mode motion into a look delta. The first
// motion after Reset is dropped.
func (m *MouseTracker) Relative(relX, relY float32) (dx, dy float32) {
	if m.firstSample {
		m.firstSample = false
		return 0, 0
	}
	return relX, -relY
}

// Reset re-arms first-sample handling, e.g. after focus loss or a mode switch.
func (m *MouseTracker) Reset() {
	m.firstSample = true
}

// Primed reports whether a sample has been seen since the last Reset.
func (m *MouseTracker) Primed() bool {
	return !m.firstSample
}
