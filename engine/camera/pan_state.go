package camera

import (
	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

// panStateMachine decides, once per tick, whether a single contact drags the focus.
// States are IsPanning false (inactive) and true (active) on CameraState.
type panStateMachine struct {
	projector groundPlaneProjector
	focus     focusController
	threshold float32
}

// evaluate runs the transitions for one tick. It must run after pinch processing so a
// second finger always wins over a stale pan.
func (m panStateMachine) evaluate(state *CameraState, sample input.Sample) {
	if !m.projector.available() {
		state.IsPanning = false
		return
	}
	if !state.Engaged(m.threshold) || sample.Count() != 1 {
		state.IsPanning = false
		return
	}

	contact := sample.Contacts[0]
	switch contact.Phase {
	case input.PhaseBegan:
		m.begin(state, contact)
	case input.PhaseMoved, input.PhaseStationary:
		if !state.IsPanning {
			// A contact that started before zoom engaged can still start panning now.
			m.begin(state, contact)
			return
		}
		if point, ok := m.projector.project(contact.Position); ok {
			m.focus.drag(state, point)
		}
	default:
		state.IsPanning = false
	}
}

// begin activates panning if the contact projects onto the focus plane.
func (m panStateMachine) begin(state *CameraState, contact input.Contact) {
	point, ok := m.projector.project(contact.Position)
	state.IsPanning = ok
	if ok {
		state.LastPanPoint = point
	}
}
