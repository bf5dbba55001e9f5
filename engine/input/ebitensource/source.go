// Package ebitensource polls Ebitengine's touch, mouse and wheel state into an input.Tracker.
// Ebitengine reports touches as a set of live IDs per frame, so presses and releases are
// recovered by diffing the set against the previous frame.
package ebitensource

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

// MouseContactID is the contact id used when the left mouse button emulates a touch.
// Ebitengine touch IDs are never negative.
const MouseContactID = -1

// SourceOption is a functional option for configuring a Source.
type SourceOption func(*Source)

// WithMouse enables or disables left-mouse-button touch emulation.
// The mouse is only sampled while no real touch is down.
//
// Parameters:
//   - enabled: true to emulate a single contact with the mouse
//
// Returns:
//   - SourceOption: option function to apply
func WithMouse(enabled bool) SourceOption {
	return func(s *Source) {
		s.mouseEnabled = enabled
	}
}

// WithWheel enables or disables forwarding the vertical mouse wheel as the scroll axis.
//
// Parameters:
//   - enabled: true to forward wheel input
//
// Returns:
//   - SourceOption: option function to apply
func WithWheel(enabled bool) SourceOption {
	return func(s *Source) {
		s.wheelEnabled = enabled
	}
}

// Source feeds one Ebitengine frame of input into a Tracker per Poll call.
type Source struct {
	tracker *input.Tracker

	touchIDs     []ebiten.TouchID
	prevTouchIDs []ebiten.TouchID

	mouseEnabled bool
	mouseDown    bool
	wheelEnabled bool
}

// NewSource creates a Source writing into the given tracker. Mouse emulation and
// wheel forwarding are on by default.
//
// Parameters:
//   - tracker: destination for pointer events
//   - options: functional options to configure the source
//
// Returns:
//   - *Source: the newly created source
func NewSource(tracker *input.Tracker, options ...SourceOption) *Source {
	s := &Source{
		tracker:      tracker,
		touchIDs:     make([]ebiten.TouchID, 0, 8),
		prevTouchIDs: make([]ebiten.TouchID, 0, 8),
		mouseEnabled: true,
		wheelEnabled: true,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Poll reads the current Ebitengine input state. Call it once from Game.Update,
// before draining the tracker with Tracker.Sample.
func (s *Source) Poll() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pos := mgl32.Vec2{float32(x), float32(y)}
		if slices.Contains(s.prevTouchIDs, id) {
			s.tracker.Move(int(id), pos)
		} else {
			s.tracker.Press(int(id), pos)
		}
	}
	for _, id := range s.prevTouchIDs {
		if !slices.Contains(s.touchIDs, id) {
			s.tracker.Release(int(id))
		}
	}
	s.touchIDs, s.prevTouchIDs = s.prevTouchIDs, s.touchIDs

	s.pollMouse(len(s.prevTouchIDs) > 0)

	if s.wheelEnabled {
		if _, dy := ebiten.Wheel(); dy != 0 {
			s.tracker.Scroll(float32(dy))
		}
	}
}

// pollMouse emulates a single contact with the left mouse button.
// A real touch cancels an in-progress mouse contact.
func (s *Source) pollMouse(touching bool) {
	if !s.mouseEnabled {
		return
	}
	if touching {
		if s.mouseDown {
			s.tracker.Cancel(MouseContactID)
			s.mouseDown = false
		}
		return
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	cx, cy := ebiten.CursorPosition()
	pos := mgl32.Vec2{float32(cx), float32(cy)}

	switch {
	case pressed && !s.mouseDown:
		s.tracker.Press(MouseContactID, pos)
	case pressed && s.mouseDown:
		s.tracker.Move(MouseContactID, pos)
	case !pressed && s.mouseDown:
		s.tracker.Release(MouseContactID)
	}
	s.mouseDown = pressed
}
