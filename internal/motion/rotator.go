// Package motion holds the timing rules behind the page's animated
// behaviour: rotating role text, scroll thresholds and per-section reveal
// timelines. The browser executes them; the values are decided here.
package motion

import "time"

// DefaultRotateInterval is how long each role stays on screen.
const DefaultRotateInterval = 3 * time.Second

// NextIndex returns the index after i in a list of n entries, wrapping to
// zero after the last. Out-of-range i restarts the cycle.
func NextIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 || i >= n {
		return 0
	}
	return (i + 1) % n
}
