package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// contactState is the tracker's bookkeeping for one contact between samples.
type contactState struct {
	id int

	// position is the most recent position reported by the platform.
	position mgl32.Vec2
	// reported is the position handed out in the previous sample.
	reported mgl32.Vec2

	began     bool // not yet reported as PhaseBegan
	released  bool
	cancelled bool
}

// Tracker turns raw pointer events into one Sample per tick.
// Platform callbacks (Press, Move, Release, Cancel, Scroll) may run on a different
// goroutine than the one calling Sample; all methods are safe for concurrent use.
type Tracker struct {
	mu *sync.Mutex

	contacts []*contactState
	// pending holds presses of an id whose previous contact has not been reported as lifted yet.
	pending []*contactState
	scroll  float32
}

// NewTracker creates an empty Tracker.
//
// Returns:
//   - *Tracker: the newly created tracker
func NewTracker() *Tracker {
	return &Tracker{
		mu: &sync.Mutex{},
	}
}

// find returns the live contact with the given id, or nil.
// Caller must hold the mutex.
func (t *Tracker) find(id int) *contactState {
	for _, list := range [][]*contactState{t.contacts, t.pending} {
		for _, c := range list {
			if c.id == id && !c.released && !c.cancelled {
				return c
			}
		}
	}
	return nil
}

// tracked reports whether any contact in list uses id, live or lifted.
func tracked(list []*contactState, id int) bool {
	for _, c := range list {
		if c.id == id {
			return true
		}
	}
	return false
}

// Press registers a new contact. Pressing an id that is already down is treated as a move.
// Pressing an id that was lifted since the last sample starts a new contact in the sample
// after the one reporting the lift, so a sample never holds the same id twice.
//
// Parameters:
//   - id: contact identifier
//   - pos: screen position in pixels
func (t *Tracker) Press(id int, pos mgl32.Vec2) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c := t.find(id); c != nil {
		c.position = pos
		return
	}
	c := &contactState{
		id:       id,
		position: pos,
		reported: pos,
		began:    true,
	}
	if tracked(t.contacts, id) {
		t.pending = append(t.pending, c)
		return
	}
	t.contacts = append(t.contacts, c)
}

// Move updates the position of a contact that is down. Unknown ids are ignored.
//
// Parameters:
//   - id: contact identifier
//   - pos: screen position in pixels
func (t *Tracker) Move(id int, pos mgl32.Vec2) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c := t.find(id); c != nil {
		c.position = pos
	}
}

// Release lifts a contact. It is reported as PhaseEnded in the next sample
// (or the one after, if it has not yet been reported as PhaseBegan).
//
// Parameters:
//   - id: contact identifier
func (t *Tracker) Release(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c := t.find(id); c != nil {
		c.released = true
	}
}

// Cancel aborts a contact. It is reported as PhaseCancelled in the next sample.
//
// Parameters:
//   - id: contact identifier
func (t *Tracker) Cancel(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c := t.find(id); c != nil {
		c.cancelled = true
	}
}

// Scroll accumulates an auxiliary scroll axis delta until the next sample.
//
// Parameters:
//   - delta: scroll amount (positive = forward/zoom in)
func (t *Tracker) Scroll(delta float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scroll += delta
}

// Active returns the number of contacts currently down.
func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, list := range [][]*contactState{t.contacts, t.pending} {
		for _, c := range list {
			if !c.released && !c.cancelled {
				n++
			}
		}
	}
	return n
}

// Sample drains the events received since the previous call into a Sample.
// Must be called exactly once per tick.
//
// Returns:
//   - Sample: the contacts and scroll for this tick
func (t *Tracker) Sample() Sample {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Sample{Scroll: t.scroll}
	t.scroll = 0

	if len(t.contacts) == 0 {
		t.promotePending()
		return s
	}

	s.Contacts = make([]Contact, 0, len(t.contacts))
	kept := t.contacts[:0]
	for _, c := range t.contacts {
		contact := Contact{
			ID:               c.id,
			Position:         c.position,
			PreviousPosition: c.reported,
		}

		switch {
		case c.began:
			// A contact always gets one Began tick, even if it was lifted in the same tick.
			contact.PreviousPosition = c.position
			contact.Phase = PhaseBegan
			c.began = false
		case c.cancelled:
			contact.Phase = PhaseCancelled
		case c.released:
			contact.Phase = PhaseEnded
		case c.position != c.reported:
			contact.Phase = PhaseMoved
		default:
			contact.Phase = PhaseStationary
		}

		c.reported = c.position
		s.Contacts = append(s.Contacts, contact)
		if contact.Phase.Active() {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(t.contacts); i++ {
		t.contacts[i] = nil
	}
	t.contacts = kept
	t.promotePending()

	return s
}

// promotePending moves deferred presses whose id is free again into the live contacts.
// Caller must hold the mutex.
func (t *Tracker) promotePending() {
	waiting := t.pending[:0]
	for _, c := range t.pending {
		if tracked(t.contacts, c.id) {
			waiting = append(waiting, c)
			continue
		}
		t.contacts = append(t.contacts, c)
	}
	for i := len(waiting); i < len(t.pending); i++ {
		t.pending[i] = nil
	}
	t.pending = waiting
}

// Reset drops every contact and any pending scroll.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.contacts = nil
	t.pending = nil
	t.scroll = 0
}
