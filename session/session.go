// SPDX-License-Identifier: EPL-2.0

package session

import (
	"github.com/romanurban/audio-cropper/audio"
	"github.com/romanurban/audio-cropper/export"
	"github.com/romanurban/audio-cropper/layout"
	"github.com/romanurban/audio-cropper/pcm"
	"github.com/romanurban/audio-cropper/playback"
	"github.com/romanurban/audio-cropper/segment"
)

const (
	// DragThreshold is the minimum pointer movement, in seconds of timeline,
	// that turns a press into a drag instead of a click.
	DragThreshold = 0.1

	// MinSelectionWidth is the narrowest selection a resize handle may
	// produce.
	MinSelectionWidth = 0.1

	// DefaultWidth is the container width assumed until the UI reports one.
	DefaultWidth = 800.0
)

// Session owns one loaded signal and everything the editor tracks about it:
// the chunk partition, the range selection, transport state and the export
// handle. It is the caller-facing layer that enforces the policies the lower
// components deliberately leave out (last-chunk protection, selection
// exclusivity, clearing selections after destructive edits).
//
// A Session assumes a single logical flow of control: one in-flight edit or
// playback operation at a time, and no structural edit while an export of
// the same buffer is outstanding. It provides no locking of its own.
type Session struct {
	buf   *pcm.Buffer
	model *segment.Model

	sel    Selection
	hasSel bool

	pressed    bool
	pressInSel bool
	dragOrigin float64
	dragActive bool

	ctrl *playback.Controller
	exp  *export.Exporter

	width  float64
	gap    float64
	zoom   float64
	offset float64
}

// New builds an empty session. enc may be nil when lossy export is unused.
func New(sink playback.Sink, clock playback.Clock, enc export.Encoder) *Session {
	s := &Session{
		ctrl:  playback.NewController(sink, clock),
		exp:   export.New(enc),
		width: DefaultWidth,
		gap:   layout.DefaultGap,
		zoom:  1,
	}
	s.ctrl.SetIdleFallback(s.firstChunkStart)
	return s
}

func (s *Session) firstChunkStart() float64 {
	if s.model == nil || s.model.Len() == 0 {
		return 0
	}
	return s.model.Chunks()[0].Start
}

// Load decodes src into a buffer and makes it the session's signal.
func (s *Session) Load(src audio.Source) error {
	buf, err := audio.Collect(src)
	if err != nil {
		return err
	}
	s.LoadBuffer(buf)
	return nil
}

// LoadBuffer replaces the loaded signal: a fresh single-chunk partition,
// cleared selections, transport reset. Everything derived from the previous
// file is discarded.
func (s *Session) LoadBuffer(buf *pcm.Buffer) {
	s.buf = buf
	s.model = segment.NewModel(buf.Duration())
	s.clearRangeSelection()
	s.pressed = false
	s.dragActive = false
	s.zoom = 1
	s.offset = 0
	s.ctrl.Stop()
	s.ctrl.SetDuration(buf.Duration())
}

// Buffer returns the live signal.
func (s *Session) Buffer() *pcm.Buffer { return s.buf }

// Chunks returns the current partition.
func (s *Session) Chunks() []segment.Chunk {
	if s.model == nil {
		return nil
	}
	return s.model.Chunks()
}

// Transport exposes the playback controller for UI-level decisions such as
// restart-after-seek.
func (s *Session) Transport() *playback.Controller { return s.ctrl }

// SetWidth records the container width used for pixel conversions.
func (s *Session) SetWidth(w float64) {
	if w > 0 {
		s.width = w
	}
}

// SetZoom sets the zoom factor; values at or below 1 fall back to the gapped
// layout.
func (s *Session) SetZoom(z float64) {
	if z < 1 {
		z = 1
	}
	s.zoom = z
}

// Scroll sets the zoomed layout's left edge in seconds.
func (s *Session) Scroll(offset float64) { s.offset = offset }

// Layout returns the active coordinate mapping strategy: zoomed when a zoom
// factor above 1 is set, gapped-proportional otherwise.
func (s *Session) Layout() layout.Layout {
	if s.zoom > 1 && s.buf != nil {
		return layout.NewZoomed(s.buf.Duration(), s.width, s.zoom, s.offset)
	}
	return layout.NewGapped(s.Chunks(), s.width, s.gap)
}

// Selection returns the active range selection, normalized.
func (s *Session) Selection() (Selection, bool) {
	if !s.hasSel || s.sel.Empty() {
		return Selection{}, false
	}
	return s.sel.Normalized(), true
}

// SelectedChunk returns the selected chunk, if its id still resolves.
func (s *Session) SelectedChunk() (segment.Chunk, bool) {
	if s.model == nil {
		return segment.Chunk{}, false
	}
	return s.model.Selected()
}

func (s *Session) clearRangeSelection() {
	s.sel = Selection{}
	s.hasSel = false
}

// Split divides the chunk strictly containing t.
func (s *Session) Split(t float64) error {
	if s.model == nil {
		return ErrNoBuffer
	}
	return s.model.SplitAt(t)
}

// SelectChunkAt selects the chunk containing t. Selecting a chunk clears any
// active range selection; with a single chunk this is a no-op.
func (s *Session) SelectChunkAt(t float64) (segment.Chunk, bool) {
	if s.model == nil {
		return segment.Chunk{}, false
	}
	c, ok := s.model.SelectAt(t)
	if ok {
		s.clearRangeSelection()
	}
	return c, ok
}

// SelectChunk selects a chunk by id, clearing any active range selection.
// Unlike SelectChunkAt it works on a single-chunk partition, which is how a
// chunk can be the target of a guarded delete.
func (s *Session) SelectChunk(id int) error {
	if s.model == nil {
		return ErrNoBuffer
	}
	if err := s.model.Select(id); err != nil {
		return err
	}
	s.clearRangeSelection()
	return nil
}

// SelectChunkAtPixel maps a pixel through the gapped layout and selects the
// chunk under it.
func (s *Session) SelectChunkAtPixel(x float64) (segment.Chunk, bool) {
	g := layout.NewGapped(s.Chunks(), s.width, s.gap)
	t, ok := g.PixelToTime(x)
	if !ok {
		return segment.Chunk{}, false
	}
	return s.SelectChunkAt(t)
}

// activeRange resolves the range destructive edits and exports operate on:
// the normalized selection if one is active, else the selected chunk. With
// neither, ErrNoActiveSelection.
func (s *Session) activeRange() (float64, float64, error) {
	if sel, ok := s.Selection(); ok {
		return sel.Start, sel.End, nil
	}
	if c, ok := s.SelectedChunk(); ok {
		return c.Start, c.End, nil
	}
	return 0, 0, ErrNoActiveSelection
}
