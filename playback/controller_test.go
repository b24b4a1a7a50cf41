// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/romanurban/audio-cropper/internal/audiotest"
	"github.com/romanurban/audio-cropper/pcm"
	"github.com/romanurban/audio-cropper/segment"
)

const eps = 1e-6

// fakeClock hands out a settable instant so position math is deterministic.
type fakeClock struct {
	mtx sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.now = c.now.Add(d)
}

// fakeSink records every Play call and lets the test fire or drop the done
// callback by hand.
type fakeSink struct {
	mtx    sync.Mutex
	plays  []*pcm.Buffer
	done   func()
	stops  int
	failed error
}

func (s *fakeSink) Play(buf *pcm.Buffer, done func()) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.failed != nil {
		return s.failed
	}
	s.plays = append(s.plays, buf)
	s.done = done
	return nil
}

func (s *fakeSink) Stop() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.stops++
	s.done = nil
}

func (s *fakeSink) lastPlayed() *pcm.Buffer {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if len(s.plays) == 0 {
		return nil
	}
	return s.plays[len(s.plays)-1]
}

func (s *fakeSink) playCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.plays)
}

// finish simulates the running source draining naturally.
func (s *fakeSink) finish() {
	s.mtx.Lock()
	done := s.done
	s.done = nil
	s.mtx.Unlock()
	if done != nil {
		done()
	}
}

func testBuffer() *pcm.Buffer {
	// 10 seconds at 100 Hz keeps frame math readable.
	return audiotest.RampBuffer(100, 1, 1000)
}

func TestController_PlaySelection(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())
	buf := testBuffer()

	if err := c.PlaySelection(buf, 2, 5); err != nil {
		t.Fatalf("PlaySelection() error = %v", err)
	}
	if c.State() != StatePlaying {
		t.Errorf("State() = %v, want StatePlaying", c.State())
	}
	if c.Mode() != ModeSelection {
		t.Errorf("Mode() = %v, want ModeSelection", c.Mode())
	}
	if got := sink.lastPlayed().Frames(); got != 300 {
		t.Errorf("played %d frames, want 300", got)
	}
	if pos := c.Position(); math.Abs(pos-2) > eps {
		t.Errorf("Position() = %v, want 2", pos)
	}
}

func TestController_PlaySelection_InvertedRange(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())

	if err := c.PlaySelection(testBuffer(), 5, 2); err != nil {
		t.Fatalf("PlaySelection() error = %v", err)
	}
	if got := sink.lastPlayed().Frames(); got != 300 {
		t.Errorf("played %d frames, want 300", got)
	}
	if pos := c.Position(); math.Abs(pos-2) > eps {
		t.Errorf("Position() = %v, want 2", pos)
	}
}

func TestController_PositionTracksClock(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	clock := newFakeClock()
	c := NewController(sink, clock)

	if err := c.PlaySelection(testBuffer(), 2, 8); err != nil {
		t.Fatal(err)
	}
	clock.Advance(1500 * time.Millisecond)
	if pos := c.Position(); math.Abs(pos-3.5) > eps {
		t.Errorf("Position() = %v, want 3.5", pos)
	}
}

func TestController_PauseResume(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	clock := newFakeClock()
	c := NewController(sink, clock)
	buf := testBuffer()

	if err := c.PlaySelection(buf, 2, 8); err != nil {
		t.Fatal(err)
	}
	clock.Advance(3 * time.Second)

	c.Pause()
	if c.State() != StatePaused {
		t.Fatalf("State() = %v, want StatePaused", c.State())
	}
	if sink.stops != 1 {
		t.Errorf("sink stopped %d times, want 1", sink.stops)
	}
	if pos := c.Position(); math.Abs(pos-5) > eps {
		t.Fatalf("paused Position() = %v, want 5", pos)
	}

	// Position holds while paused.
	clock.Advance(time.Minute)
	if pos := c.Position(); math.Abs(pos-5) > eps {
		t.Errorf("Position() drifted while paused: %v", pos)
	}

	if err := c.Resume(); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if c.State() != StatePlaying {
		t.Errorf("State() = %v, want StatePlaying", c.State())
	}
	// Resumed source covers [5, 8).
	if got := sink.lastPlayed().Frames(); got != 300 {
		t.Errorf("resumed with %d frames, want 300", got)
	}
	if pos := c.Position(); math.Abs(pos-5) > eps {
		t.Errorf("Position() = %v, want 5", pos)
	}
}

func TestController_ResumeWithoutPause(t *testing.T) {
	t.Parallel()

	c := NewController(&fakeSink{}, newFakeClock())
	if err := c.Resume(); err != ErrNothingToPlay {
		t.Errorf("Resume() error = %v, want ErrNothingToPlay", err)
	}
}

func TestController_PlaySelection_ResumesInsideRange(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())
	buf := testBuffer()

	c.Seek(4)
	if err := c.PlaySelection(buf, 2, 8); err != nil {
		t.Fatal(err)
	}
	// Starts at the seeked position, not the range start.
	if got := sink.lastPlayed().Frames(); got != 400 {
		t.Errorf("played %d frames, want 400", got)
	}
	if pos := c.Position(); math.Abs(pos-4) > eps {
		t.Errorf("Position() = %v, want 4", pos)
	}
}

func TestController_PlaySelection_ResumeOutsideRange(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())

	c.Seek(9)
	if err := c.PlaySelection(testBuffer(), 2, 8); err != nil {
		t.Fatal(err)
	}
	if pos := c.Position(); math.Abs(pos-2) > eps {
		t.Errorf("Position() = %v, want range start 2", pos)
	}
}

func TestController_PlayChunk(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())

	err := c.PlayChunk(testBuffer(), segment.Chunk{Start: 3, End: 7, ID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if c.Mode() != ModeChunk {
		t.Errorf("Mode() = %v, want ModeChunk", c.Mode())
	}
	if got := sink.lastPlayed().Frames(); got != 400 {
		t.Errorf("played %d frames, want 400", got)
	}
}

func TestController_PlaySequence(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())
	chunks := []segment.Chunk{
		{Start: 5, End: 8, ID: 2},
		{Start: 0, End: 3, ID: 1},
	}

	if err := c.PlaySequence(testBuffer(), chunks); err != nil {
		t.Fatal(err)
	}
	if c.Mode() != ModeSequence {
		t.Errorf("Mode() = %v, want ModeSequence", c.Mode())
	}
	// Both chunks concatenated: 300 + 300 frames.
	if got := sink.lastPlayed().Frames(); got != 600 {
		t.Errorf("played %d frames, want 600", got)
	}
	if pos := c.Position(); math.Abs(pos) > eps {
		t.Errorf("Position() = %v, want 0", pos)
	}
}

func TestController_PlaySequence_ResumeScan(t *testing.T) {
	t.Parallel()

	chunks := []segment.Chunk{
		{Start: 0, End: 3, ID: 1},
		{Start: 5, End: 8, ID: 2},
	}

	tests := []struct {
		name       string
		seekTo     float64
		wantPos    float64
		wantFrames int
	}{
		{"inside first chunk", 1, 1, 500},   // [1,3) + [5,8)
		{"in the gap", 4, 5, 300},           // snaps to the next chunk
		{"inside second chunk", 6, 6, 200},  // [6,8)
		{"past everything", 9, 0, 600},      // falls back to the first chunk
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			c := NewController(sink, newFakeClock())
			c.SetDuration(10)
			c.Seek(tt.seekTo)

			if err := c.PlaySequence(testBuffer(), chunks); err != nil {
				t.Fatal(err)
			}
			if pos := c.Position(); math.Abs(pos-tt.wantPos) > eps {
				t.Errorf("Position() = %v, want %v", pos, tt.wantPos)
			}
			if got := sink.lastPlayed().Frames(); got != tt.wantFrames {
				t.Errorf("played %d frames, want %d", got, tt.wantFrames)
			}
		})
	}
}

func TestController_PlaySequence_Empty(t *testing.T) {
	t.Parallel()

	c := NewController(&fakeSink{}, newFakeClock())
	if err := c.PlaySequence(testBuffer(), nil); err != ErrNothingToPlay {
		t.Errorf("PlaySequence() error = %v, want ErrNothingToPlay", err)
	}
}

func TestController_NaturalEndResetsToFallback(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())
	c.SetIdleFallback(func() float64 { return 2.5 })

	if err := c.PlaySelection(testBuffer(), 3, 6); err != nil {
		t.Fatal(err)
	}
	sink.finish()

	if c.State() != StateIdle {
		t.Errorf("State() = %v, want StateIdle", c.State())
	}
	if c.Mode() != ModeNone {
		t.Errorf("Mode() = %v, want ModeNone", c.Mode())
	}
	if pos := c.Position(); math.Abs(pos-2.5) > eps {
		t.Errorf("Position() = %v, want fallback 2.5", pos)
	}
}

func TestController_LoopRestartsRange(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())
	c.SetLoop(true)

	if err := c.PlaySelection(testBuffer(), 3, 6); err != nil {
		t.Fatal(err)
	}
	sink.finish()

	if c.State() != StatePlaying {
		t.Fatalf("State() = %v, want StatePlaying after loop", c.State())
	}
	if got := sink.playCount(); got != 2 {
		t.Fatalf("sink played %d times, want 2", got)
	}
	if pos := c.Position(); math.Abs(pos-3) > eps {
		t.Errorf("Position() = %v, want loop restart at 3", pos)
	}
}

func TestController_LoopRestartsSequence(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())
	c.SetLoop(true)
	chunks := []segment.Chunk{
		{Start: 0, End: 3, ID: 1},
		{Start: 5, End: 8, ID: 2},
	}

	if err := c.PlaySequence(testBuffer(), chunks); err != nil {
		t.Fatal(err)
	}
	sink.finish()

	if got := sink.playCount(); got != 2 {
		t.Fatalf("sink played %d times, want 2", got)
	}
	if got := sink.lastPlayed().Frames(); got != 600 {
		t.Errorf("loop restarted with %d frames, want 600", got)
	}
}

func TestController_StaleDoneCallbackIgnored(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())

	if err := c.PlaySelection(testBuffer(), 2, 8); err != nil {
		t.Fatal(err)
	}
	sink.mtx.Lock()
	stale := sink.done
	sink.mtx.Unlock()

	// A second Play supersedes the first; the old callback must be a no-op.
	if err := c.PlaySelection(testBuffer(), 0, 4); err != nil {
		t.Fatal(err)
	}
	stale()

	if c.State() != StatePlaying {
		t.Errorf("State() = %v, stale callback must not end playback", c.State())
	}
}

func TestController_Stop(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	clock := newFakeClock()
	c := NewController(sink, clock)
	c.SetIdleFallback(func() float64 { return 1 })

	if err := c.PlaySelection(testBuffer(), 2, 8); err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Second)
	c.Stop()

	if c.State() != StateIdle {
		t.Errorf("State() = %v, want StateIdle", c.State())
	}
	if pos := c.Position(); math.Abs(pos-1) > eps {
		t.Errorf("Position() = %v, want fallback 1", pos)
	}
	if err := c.Resume(); err != ErrNothingToPlay {
		t.Errorf("Resume() after Stop error = %v, want ErrNothingToPlay", err)
	}
}

func TestController_Seek(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())
	c.SetDuration(10)

	if was := c.Seek(4); was {
		t.Error("Seek() reported playing on an idle transport")
	}
	if pos := c.Position(); math.Abs(pos-4) > eps {
		t.Errorf("Position() = %v, want 4", pos)
	}

	if was := c.Seek(-3); was {
		t.Error("Seek() reported playing on an idle transport")
	}
	if pos := c.Position(); pos != 0 {
		t.Errorf("Position() = %v, want clamp to 0", pos)
	}

	c.Seek(15)
	if pos := c.Position(); math.Abs(pos-10) > eps {
		t.Errorf("Position() = %v, want clamp to duration 10", pos)
	}
}

func TestController_SeekWhilePlaying(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	c := NewController(sink, newFakeClock())

	if err := c.PlaySelection(testBuffer(), 0, 10); err != nil {
		t.Fatal(err)
	}
	if was := c.Seek(7); !was {
		t.Error("Seek() = false, want true while playing")
	}
	if c.State() != StatePaused {
		t.Errorf("State() = %v, want StatePaused after seek", c.State())
	}
	if sink.stops != 1 {
		t.Errorf("sink stopped %d times, want 1", sink.stops)
	}

	// Resume picks up from the seeked position.
	if err := c.Resume(); err != nil {
		t.Fatal(err)
	}
	if got := sink.lastPlayed().Frames(); got != 300 {
		t.Errorf("resumed with %d frames, want 300", got)
	}
}

func TestController_PlayErrorLeavesIdle(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{failed: ErrNothingToPlay}
	c := NewController(sink, newFakeClock())

	if err := c.PlaySelection(testBuffer(), 0, 5); err == nil {
		t.Fatal("PlaySelection() error = nil, want sink failure")
	}
	if c.State() != StateIdle {
		t.Errorf("State() = %v, want StateIdle after sink failure", c.State())
	}
}
