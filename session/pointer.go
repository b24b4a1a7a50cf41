// SPDX-License-Identifier: EPL-2.0

package session

// Pointer handling. The UI layer translates device pixels to time positions
// (through Layout) before calling in; the session never sees raw pixels
// except via the explicit *AtPixel helpers.

// PointerDown begins a pointer interaction at time t.
//
// Inside an active selection the press only moves the seek marker: no new
// drag starts and the selection survives. Anywhere else the press arms a
// potential drag with the selection collapsed to a point; the selected chunk
// is kept until the movement threshold proves this is a drag.
func (s *Session) PointerDown(t float64) {
	if s.buf == nil {
		return
	}
	if sel, ok := s.Selection(); ok && sel.Contains(t) {
		s.pressed = true
		s.pressInSel = true
		s.ctrl.Seek(t)
		return
	}
	s.pressed = true
	s.pressInSel = false
	s.dragOrigin = t
	s.dragActive = false
	s.sel = Selection{Start: t, End: t}
	s.hasSel = true
}

// PointerMove extends an armed drag to time t. Movement under DragThreshold
// still counts as a click; crossing it commits the drag and clears any
// selected chunk.
func (s *Session) PointerMove(t float64) {
	if !s.pressed || s.pressInSel {
		return
	}
	if !s.dragActive {
		d := t - s.dragOrigin
		if d < 0 {
			d = -d
		}
		if d < DragThreshold {
			return
		}
		s.dragActive = true
		s.model.ClearSelection()
	}
	s.sel.End = t
}

// PointerUp finishes the interaction at time t.
//
// A completed drag normalizes the selection and snaps the resume point to
// its start. A plain click clears the selection, seeks to the click time and,
// when more than one chunk exists and the click landed inside one, selects
// that chunk.
func (s *Session) PointerUp(t float64) {
	if !s.pressed {
		return
	}
	s.pressed = false

	if s.pressInSel {
		s.pressInSel = false
		return
	}

	if s.dragActive {
		s.dragActive = false
		s.sel.End = t
		s.sel = s.sel.Normalized()
		s.hasSel = !s.sel.Empty()
		s.ctrl.Seek(s.sel.Start)
		return
	}

	s.clearRangeSelection()
	s.ctrl.Seek(t)
	s.SelectChunkAt(t)
}

// ResizeSelectionStart drags the selection's left handle to t. The handle
// cannot cross end - MinSelectionWidth and cannot leave the buffer.
func (s *Session) ResizeSelectionStart(t float64) {
	sel, ok := s.Selection()
	if !ok {
		return
	}
	if limit := sel.End - MinSelectionWidth; t > limit {
		t = limit
	}
	if t < 0 {
		t = 0
	}
	s.sel = Selection{Start: t, End: sel.End}
}

// ResizeSelectionEnd drags the right handle to t, mirroring
// ResizeSelectionStart.
func (s *Session) ResizeSelectionEnd(t float64) {
	sel, ok := s.Selection()
	if !ok {
		return
	}
	if limit := sel.Start + MinSelectionWidth; t < limit {
		t = limit
	}
	if s.buf != nil && t > s.buf.Duration() {
		t = s.buf.Duration()
	}
	s.sel = Selection{Start: sel.Start, End: t}
}
