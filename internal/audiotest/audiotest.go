// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic test signals, both as whole
// pcm.Buffers and as streaming sources compatible with audio.Source.
package audiotest

import (
	"io"
	"math"

	"github.com/romanurban/audio-cropper/pcm"
)

// Buffer builds a buffer whose samples come from waveform(frame, channel).
func Buffer(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *pcm.Buffer {
	buf := pcm.New(sampleRate, channels, frames)
	for c := 0; c < channels; c++ {
		ch := buf.Channel(c)
		for f := 0; f < frames; f++ {
			ch[f] = waveform(f, c)
		}
	}
	return buf
}

// ConstantBuffer has every sample equal to value.
func ConstantBuffer(sampleRate, channels, frames int, value float32) *pcm.Buffer {
	return Buffer(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// SilentBuffer is all zeros.
func SilentBuffer(sampleRate, channels, frames int) *pcm.Buffer {
	return ConstantBuffer(sampleRate, channels, frames, 0)
}

// SineBuffer is a sine wave at the given frequency, identical per channel.
func SineBuffer(sampleRate, channels, frames int, frequency float64) *pcm.Buffer {
	return Buffer(sampleRate, channels, frames, func(f, _ int) float32 {
		t := float64(f) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// RampBuffer rises linearly from 0 toward 1 across the buffer, which makes
// frame positions recognizable after edits.
func RampBuffer(sampleRate, channels, frames int) *pcm.Buffer {
	return Buffer(sampleRate, channels, frames, func(f, _ int) float32 {
		return float32(f) / float32(frames)
	})
}

// Source streams a buffer as interleaved samples, implementing audio.Source
// without importing it.
type Source struct {
	buf  *pcm.Buffer
	next int // next frame to emit
}

// NewSource wraps buf as a streaming source.
func NewSource(buf *pcm.Buffer) *Source {
	return &Source{buf: buf}
}

func (s *Source) SampleRate() int { return s.buf.SampleRate() }
func (s *Source) Channels() int   { return s.buf.Channels() }
func (s *Source) Close() error    { return nil }

// Reset rewinds the stream.
func (s *Source) Reset() { s.next = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	if s.next >= s.buf.Frames() {
		return 0, io.EOF
	}

	frames := len(dst) / channels
	if remaining := s.buf.Frames() - s.next; frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			dst[f*channels+c] = s.buf.Channel(c)[s.next+f]
		}
	}
	s.next += frames

	n := frames * channels
	if s.next >= s.buf.Frames() {
		return n, io.EOF
	}
	return n, nil
}
