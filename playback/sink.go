// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"encoding/binary"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/romanurban/audio-cropper/pcm"
)

// Sink renders one buffer at a time. Play replaces any running source; done
// must be invoked exactly once if (and only if) the buffer drains naturally.
// Stop halts the running source without invoking its done callback.
type Sink interface {
	Play(buf *pcm.Buffer, done func()) error
	Stop()
}

// DeviceSink plays buffers on the host audio device via oto. One sink owns
// the device context; only one source plays at a time.
type DeviceSink struct {
	ctx   *oto.Context
	ready chan struct{}

	mtx    sync.Mutex
	player oto.Player
	gen    int
}

// NewDeviceSink opens the host audio device for 16-bit output at the given
// rate and channel count.
func NewDeviceSink(sampleRate, channels int) (*DeviceSink, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channels, 2)
	if err != nil {
		return nil, err
	}
	return &DeviceSink{ctx: ctx, ready: ready}, nil
}

// Play converts buf to interleaved 16-bit PCM and streams it to the device.
// done fires from the watcher goroutine when the source drains on its own.
func (s *DeviceSink) Play(buf *pcm.Buffer, done func()) error {
	<-s.ready

	samples := buf.Int16Interleaved()
	raw := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(v))
	}

	s.mtx.Lock()
	if s.player != nil {
		s.player.Close()
	}
	s.gen++
	gen := s.gen
	p := s.ctx.NewPlayer(bytes.NewReader(raw))
	s.player = p
	s.mtx.Unlock()

	p.Play()
	go s.watch(p, gen, done)
	return nil
}

func (s *DeviceSink) watch(p oto.Player, gen int, done func()) {
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	s.mtx.Lock()
	current := s.gen == gen
	if current {
		s.player = nil
	}
	s.mtx.Unlock()
	p.Close()
	// A stopped or replaced source never reports a natural end.
	if current {
		done()
	}
}

// Stop closes the running source, if any.
func (s *DeviceSink) Stop() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.player != nil {
		s.gen++
		s.player.Close()
		s.player = nil
	}
}
