// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sort"
	"sync"
	"time"

	"github.com/romanurban/audio-cropper/pcm"
	"github.com/romanurban/audio-cropper/segment"
)

// State is the transport state.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
)

// Mode says what kind of range is (or was last) playing.
type Mode int

const (
	ModeNone Mode = iota
	ModeSelection
	ModeChunk
	ModeSequence
)

// Clock supplies wall-clock time. Injected so tests can drive the transport
// deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Controller is the transport state machine. It slices the sub-buffer to
// play, hands it to the Sink and tracks the authoritative resume position.
// The current position is always derived on demand from pausedAt plus the
// wall-clock delta; the delta itself is never stored, because every pause or
// seek invalidates the wall-clock reference.
type Controller struct {
	mtx   *sync.Mutex
	clock Clock
	sink  Sink

	state State
	mode  Mode
	loop  bool

	duration  float64
	pausedAt  float64
	basePos   float64
	playStart time.Time

	// fallback supplies the idle reset position (nearest chunk start);
	// the caller owns that policy.
	fallback func() float64

	// last played target, kept for Resume and loop restarts.
	buf        *pcm.Buffer
	rangeStart float64
	rangeEnd   float64
	seq        []segment.Chunk

	// gen invalidates done callbacks from sinks that were stopped or
	// replaced after the callback was scheduled.
	gen int
}

// NewController builds a controller over the given sink. A nil clock means
// the system clock.
func NewController(sink Sink, clock Clock) *Controller {
	if clock == nil {
		clock = systemClock{}
	}
	return &Controller{
		mtx:      &sync.Mutex{},
		clock:    clock,
		sink:     sink,
		fallback: func() float64 { return 0 },
	}
}

// SetIdleFallback installs the position playback resets to when a
// non-looping source ends or Stop is called. Typically the start of the
// nearest (or first) chunk.
func (c *Controller) SetIdleFallback(f func() float64) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if f != nil {
		c.fallback = f
	}
}

// SetDuration sets the loaded buffer's duration, used to clamp Seek.
func (c *Controller) SetDuration(d float64) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.duration = d
}

// SetLoop toggles loop-on-end behavior.
func (c *Controller) SetLoop(loop bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.loop = loop
}

// State returns the transport state.
func (c *Controller) State() State {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.state
}

// Mode returns what kind of range is active.
func (c *Controller) Mode() Mode {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.mode
}

// Position returns the current playback time: pausedAt when not playing,
// otherwise the start of the running source plus elapsed wall time.
func (c *Controller) Position() float64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.positionLocked()
}

func (c *Controller) positionLocked() float64 {
	if c.state != StatePlaying {
		return c.pausedAt
	}
	return c.basePos + c.clock.Now().Sub(c.playStart).Seconds()
}

// PlaySelection plays the [start, end) range of buf. Playback begins at the
// resume position when it falls inside the range, at the range start
// otherwise.
func (c *Controller) PlaySelection(buf *pcm.Buffer, start, end float64) error {
	if start > end {
		start, end = end, start
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.mode = ModeSelection
	c.buf = buf
	c.rangeStart, c.rangeEnd = start, end
	c.seq = nil
	c.duration = buf.Duration()
	return c.startRangeLocked(buf, start, end)
}

// PlayChunk plays one chunk's range of buf, resuming inside it when
// possible.
func (c *Controller) PlayChunk(buf *pcm.Buffer, chunk segment.Chunk) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.mode = ModeChunk
	c.buf = buf
	c.rangeStart, c.rangeEnd = chunk.Start, chunk.End
	c.seq = nil
	c.duration = buf.Duration()
	return c.startRangeLocked(buf, chunk.Start, chunk.End)
}

// PlaySequence plays all chunks in time order as one gapless source,
// starting from the chunk containing the resume position (or the first chunk
// past it, or the first chunk).
func (c *Controller) PlaySequence(buf *pcm.Buffer, chunks []segment.Chunk) error {
	if len(chunks) == 0 {
		return ErrNothingToPlay
	}
	ordered := make([]segment.Chunk, len(chunks))
	copy(ordered, chunks)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })

	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.mode = ModeSequence
	c.buf = buf
	c.seq = ordered
	c.duration = buf.Duration()
	return c.startSequenceLocked(buf, ordered)
}

func (c *Controller) startRangeLocked(buf *pcm.Buffer, start, end float64) error {
	pos := start
	if c.pausedAt >= start && c.pausedAt < end {
		pos = c.pausedAt
	}
	return c.playSubLocked(buf.Slice(pos, end), pos)
}

func (c *Controller) startSequenceLocked(buf *pcm.Buffer, chunks []segment.Chunk) error {
	pos := chunks[0].Start
	idx := 0
	for i, ch := range chunks {
		if ch.Contains(c.pausedAt) {
			pos, idx = c.pausedAt, i
			break
		}
		if ch.Start > c.pausedAt {
			pos, idx = ch.Start, i
			break
		}
	}
	tail := make([]segment.Chunk, len(chunks)-idx)
	copy(tail, chunks[idx:])
	tail[0].Start = pos
	return c.playSubLocked(segment.Combined(buf, tail), pos)
}

func (c *Controller) playSubLocked(sub *pcm.Buffer, pos float64) error {
	c.gen++
	gen := c.gen
	if err := c.sink.Play(sub, func() { c.sourceEnded(gen) }); err != nil {
		c.state = StateIdle
		return err
	}
	c.state = StatePlaying
	c.basePos = pos
	c.playStart = c.clock.Now()
	return nil
}

// sourceEnded runs when the sink drains naturally. Looping restarts the
// active range (or the full sequence); otherwise the transport goes idle and
// the resume position resets to the caller-supplied fallback.
func (c *Controller) sourceEnded(gen int) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if gen != c.gen || c.state != StatePlaying {
		return
	}
	if c.loop {
		switch c.mode {
		case ModeSequence:
			c.pausedAt = c.seq[0].Start
			_ = c.startSequenceLocked(c.buf, c.seq)
		default:
			c.pausedAt = c.rangeStart
			_ = c.startRangeLocked(c.buf, c.rangeStart, c.rangeEnd)
		}
		return
	}
	c.state = StateIdle
	c.mode = ModeNone
	c.pausedAt = c.fallback()
}

// Pause stops the sink, captures the elapsed position into the resume point
// and keeps the active target so Resume can pick it back up.
func (c *Controller) Pause() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.state != StatePlaying {
		return
	}
	c.pausedAt = c.positionLocked()
	c.gen++
	c.sink.Stop()
	c.state = StatePaused
}

// Resume restarts the paused target from the captured position.
func (c *Controller) Resume() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.state != StatePaused || c.buf == nil {
		return ErrNothingToPlay
	}
	if c.mode == ModeSequence {
		return c.startSequenceLocked(c.buf, c.seq)
	}
	return c.startRangeLocked(c.buf, c.rangeStart, c.rangeEnd)
}

// Stop halts playback, clears the active target and resets the resume
// position to the fallback.
func (c *Controller) Stop() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.gen++
	c.sink.Stop()
	c.state = StateIdle
	c.mode = ModeNone
	c.buf = nil
	c.seq = nil
	c.pausedAt = c.fallback()
}

// Seek moves the resume position to t (clamped to the buffer) and reports
// whether a source was playing. The caller decides whether to restart
// playback at the new position.
func (c *Controller) Seek(t float64) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if t < 0 {
		t = 0
	}
	if c.duration > 0 && t > c.duration {
		t = c.duration
	}
	wasPlaying := c.state == StatePlaying
	if wasPlaying {
		c.gen++
		c.sink.Stop()
		c.state = StatePaused
	}
	c.pausedAt = t
	return wasPlaying
}
