// Package walker provides a pausable cursor over the elements of one encoding.
//
// A Walker steps through a slice of elements (Unicode scalars, UTF-16 code
// units or UTF-8 bytes) and can be held, either immediately or after a fixed
// number of further steps. A held walker yields nothing until resumed. The
// cells package drives three walkers in lockstep and uses holds to keep them
// aligned on scalar boundaries.
package walker

import "fmt"

// State is the hold state of a Walker.
type State int

const (
	// StateRunning means Next advances freely.
	StateRunning State = iota
	// StateHeld means Next yields nothing until Resume.
	StateHeld
	// StateCountdown means Next advances until the remaining steps run out,
	// then the walker becomes held.
	StateCountdown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateHeld:
		return "held"
	case StateCountdown:
		return "countdown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Walker is a cursor over one encoding's elements of a single character.
// The zero value is an exhausted walker.
type Walker[E any] struct {
	elems     []E
	pos       int
	state     State
	remaining int
}

// New returns a running walker positioned at the first element.
func New[E any](elems []E) *Walker[E] {
	return &Walker[E]{elems: elems}
}

// Next yields the element at the current position and advances.
// It returns false without advancing when the walker is held or exhausted.
// In countdown state the element is yielded first and the walker becomes
// held once the countdown reaches zero.
func (w *Walker[E]) Next() (E, bool) {
	var zero E
	if w.state == StateHeld || w.pos >= len(w.elems) {
		return zero, false
	}

	elem := w.elems[w.pos]
	w.pos++

	if w.state == StateCountdown {
		w.remaining--
		if w.remaining <= 0 {
			w.state = StateHeld
			w.remaining = 0
		}
	}

	return elem, true
}

// Hold pauses the walker starting with the next call to Next.
// Any armed countdown is cleared.
func (w *Walker[E]) Hold() {
	w.state = StateHeld
	w.remaining = 0
}

// HoldAfter allows exactly steps further successful calls to Next before the
// walker pauses. A non-positive steps holds immediately.
func (w *Walker[E]) HoldAfter(steps int) {
	if steps <= 0 {
		w.Hold()
		return
	}
	w.state = StateCountdown
	w.remaining = steps
}

// Resume clears any hold or countdown so Next proceeds from the current position.
func (w *Walker[E]) Resume() {
	w.state = StateRunning
	w.remaining = 0
}

// State reports the current hold state.
func (w *Walker[E]) State() State {
	return w.state
}

// Held reports whether Next is currently paused.
func (w *Walker[E]) Held() bool {
	return w.state == StateHeld
}

// Remaining reports the steps left before an armed countdown pauses the walker.
// It is zero outside StateCountdown.
func (w *Walker[E]) Remaining() int {
	return w.remaining
}

// Exhausted reports whether every element has been yielded.
func (w *Walker[E]) Exhausted() bool {
	return w.pos >= len(w.elems)
}

// Position returns the index of the next element to be yielded.
func (w *Walker[E]) Position() int {
	return w.pos
}

// Len returns the total number of elements.
func (w *Walker[E]) Len() int {
	return len(w.elems)
}
