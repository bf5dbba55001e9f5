package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Phase describes where a contact point is in its press/drag/release lifecycle.
type Phase int

const (
	// PhaseBegan is reported on the first tick a contact is down.
	PhaseBegan Phase = iota
	// PhaseMoved is reported when the contact position changed since the previous tick.
	PhaseMoved
	// PhaseStationary is reported when the contact is down but did not move.
	PhaseStationary
	// PhaseEnded is reported once, on the tick after the contact was lifted.
	PhaseEnded
	// PhaseCancelled is reported once when the platform aborted the contact.
	PhaseCancelled
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "Began"
	case PhaseMoved:
		return "Moved"
	case PhaseStationary:
		return "Stationary"
	case PhaseEnded:
		return "Ended"
	case PhaseCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ParsePhase converts a phase name as produced by Phase.String back into a Phase.
//
// Parameters:
//   - s: phase name, e.g. "Moved"
//
// Returns:
//   - Phase: the parsed phase
//   - bool: false if the name is not recognized
func ParsePhase(s string) (Phase, bool) {
	for p := PhaseBegan; p <= PhaseCancelled; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// Active reports whether the contact is still down during this tick.
func (p Phase) Active() bool {
	return p == PhaseBegan || p == PhaseMoved || p == PhaseStationary
}

// Contact is one touch or pointer contact point as seen during a single tick.
// Positions are in screen pixels with the origin at the top-left corner.
type Contact struct {
	// ID identifies the contact across ticks.
	ID int
	// Position is the screen position this tick.
	Position mgl32.Vec2
	// PreviousPosition is the screen position one tick prior. Equal to Position on PhaseBegan.
	PreviousPosition mgl32.Vec2
	// Phase is the lifecycle phase of the contact this tick.
	Phase Phase
}

// Delta returns the screen-space movement since the previous tick.
func (c Contact) Delta() mgl32.Vec2 {
	return c.Position.Sub(c.PreviousPosition)
}

// Sample is the gesture input for exactly one tick.
type Sample struct {
	// Contacts lists every contact reported this tick, in the order they were first pressed.
	// Contacts in PhaseEnded or PhaseCancelled are included for the tick they end on.
	Contacts []Contact
	// Scroll is the auxiliary scroll axis accumulated since the previous tick (desktop only).
	Scroll float32
}

// Empty reports whether the sample carries no contacts and no scroll input.
func (s Sample) Empty() bool {
	return len(s.Contacts) == 0 && s.Scroll == 0
}

// Count returns the number of contacts in the sample.
func (s Sample) Count() int {
	return len(s.Contacts)
}
