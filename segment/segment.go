// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"github.com/romanurban/audio-cropper/pcm"
)

// Chunk is a half-open [Start, End) time range over the loaded signal.
// Chunks carry no sample data; they index into the current pcm.Buffer.
type Chunk struct {
	Start float64
	End   float64
	ID    int
}

// Duration returns End - Start.
func (c Chunk) Duration() float64 { return c.End - c.Start }

// Contains reports whether t falls inside the chunk's half-open range.
func (c Chunk) Contains(t float64) bool { return t >= c.Start && t < c.End }

// Model owns the ordered, non-overlapping chunk partition of the signal and
// the selected-chunk id. It is not safe for concurrent use; the editor core
// assumes a single logical flow of control.
type Model struct {
	chunks     []Chunk
	nextID     int
	selectedID int // -1 when nothing is selected
}

// NewModel returns a model covering [0, duration) with the single chunk id 0.
func NewModel(duration float64) *Model {
	m := &Model{}
	m.Initialize(duration)
	return m
}

// Initialize resets the partition to one chunk {0, duration, id 0}, clears
// the chunk selection and restarts the id counter at 1.
func (m *Model) Initialize(duration float64) {
	m.chunks = []Chunk{{Start: 0, End: duration, ID: 0}}
	m.nextID = 1
	m.selectedID = -1
}

// Chunks returns a copy of the chunk list in order.
func (m *Model) Chunks() []Chunk {
	out := make([]Chunk, len(m.chunks))
	copy(out, m.chunks)
	return out
}

// Len returns the number of chunks.
func (m *Model) Len() int { return len(m.chunks) }

// TotalDuration returns the summed duration of all chunks.
func (m *Model) TotalDuration() float64 {
	var d float64
	for _, c := range m.chunks {
		d += c.Duration()
	}
	return d
}

// ChunkAt returns the chunk containing t under half-open semantics.
func (m *Model) ChunkAt(t float64) (Chunk, bool) {
	for _, c := range m.chunks {
		if c.Contains(t) {
			return c, true
		}
	}
	return Chunk{}, false
}

// SplitAt divides the chunk strictly containing t into two chunks meeting at
// t. Both halves receive fresh ids; a split landing on an existing boundary
// (or outside every chunk) fails with ErrInvalidSplitPosition and leaves the
// model unchanged. Splitting clears the chunk selection.
func (m *Model) SplitAt(t float64) error {
	for i, c := range m.chunks {
		if c.Start < t && t < c.End {
			left := Chunk{Start: c.Start, End: t, ID: m.nextID}
			right := Chunk{Start: t, End: c.End, ID: m.nextID + 1}
			m.nextID += 2

			m.chunks = append(m.chunks, Chunk{})
			copy(m.chunks[i+2:], m.chunks[i+1:])
			m.chunks[i] = left
			m.chunks[i+1] = right

			m.selectedID = -1
			return nil
		}
	}
	return ErrInvalidSplitPosition
}

// DeleteRange removes [start, end) worth of time from the partition and
// closes the gap: chunks past the range shift left, chunks inside it vanish,
// straddling chunks are truncated. The selected-chunk id is dropped if its
// chunk no longer exists.
//
// The model deletes mechanically; keeping at least one chunk alive is the
// caller's policy (see session.Session).
func (m *Model) DeleteRange(start, end float64) {
	if end <= start {
		return
	}
	shift := end - start
	out := m.chunks[:0]
	for _, c := range m.chunks {
		switch {
		case c.End <= start:
			// Fully before: untouched.
		case c.Start >= end:
			// Fully after: shift left.
			c.Start -= shift
			c.End -= shift
		case c.Start >= start && c.End <= end:
			// Fully inside: removed.
			continue
		case c.Start < start && c.End > end:
			// Contains the range: loses exactly the deleted duration.
			c.End -= shift
		case c.Start < start:
			// Straddles the left edge only.
			c.End = start
		default:
			// Straddles the right edge only.
			c.Start = start
			c.End -= shift
		}
		out = append(out, c)
	}
	m.chunks = out

	if m.selectedID >= 0 {
		if _, ok := m.byID(m.selectedID); !ok {
			m.selectedID = -1
		}
	}
}

// Select marks the chunk with the given id as selected.
func (m *Model) Select(id int) error {
	if _, ok := m.byID(id); !ok {
		return ErrNoSuchChunk
	}
	m.selectedID = id
	return nil
}

// SelectAt selects the chunk containing t. When only one chunk exists the
// whole-buffer chunk is not independently selectable and SelectAt reports
// false without changing the selection.
func (m *Model) SelectAt(t float64) (Chunk, bool) {
	if len(m.chunks) <= 1 {
		return Chunk{}, false
	}
	c, ok := m.ChunkAt(t)
	if !ok {
		return Chunk{}, false
	}
	m.selectedID = c.ID
	return c, true
}

// ClearSelection drops the selected-chunk id.
func (m *Model) ClearSelection() { m.selectedID = -1 }

// Selected re-derives the selected chunk from the current list by id. The
// chunk value is never cached: a deleted chunk silently clears the selection.
func (m *Model) Selected() (Chunk, bool) {
	if m.selectedID < 0 {
		return Chunk{}, false
	}
	c, ok := m.byID(m.selectedID)
	if !ok {
		m.selectedID = -1
	}
	return c, ok
}

func (m *Model) byID(id int) (Chunk, bool) {
	for _, c := range m.chunks {
		if c.ID == id {
			return c, true
		}
	}
	return Chunk{}, false
}

// Combined concatenates the given chunks' sample ranges from buf into one
// gapless buffer, in list order. A nil subset means all chunks.
func Combined(buf *pcm.Buffer, chunks []Chunk) *pcm.Buffer {
	if len(chunks) == 0 {
		return pcm.New(buf.SampleRate(), buf.Channels(), 0)
	}
	parts := make([]*pcm.Buffer, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, buf.Slice(c.Start, c.End))
	}
	out, err := parts[0].Concat(parts[1:]...)
	if err != nil {
		// Slices of one buffer always share format; unreachable.
		return parts[0]
	}
	return out
}

// CombinedBuffer concatenates all of the model's chunks from buf.
func (m *Model) CombinedBuffer(buf *pcm.Buffer) *pcm.Buffer {
	return Combined(buf, m.chunks)
}
