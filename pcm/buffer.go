// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"

	"github.com/romanurban/audio-cropper/utils"
)

// Buffer is a decoded audio signal: planar (per-channel) float32 samples in
// [-1, 1] plus a sample rate. All channels hold the same number of frames.
//
// Buffers are immutable by convention: editing operations return a new Buffer
// and never retain or share channel slices with their input once returned.
type Buffer struct {
	sampleRate int
	data       [][]float32
}

// New allocates a zeroed buffer with the given sample rate, channel count and
// frame count.
func New(sampleRate, channels, frames int) *Buffer {
	if sampleRate <= 0 || channels < 1 || frames < 0 {
		return nil
	}
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	return &Buffer{sampleRate: sampleRate, data: data}
}

// FromChannels wraps existing per-channel sample slices. All channels must
// have equal length. The slices are owned by the returned buffer.
func FromChannels(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 || len(channels) == 0 {
		return nil, ErrInvalidFormat
	}
	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrChannelLengthMismatch
		}
	}
	return &Buffer{sampleRate: sampleRate, data: channels}, nil
}

// FromInterleaved deinterleaves samples into a planar buffer. len(samples)
// must be a multiple of channels.
func FromInterleaved(sampleRate, channels int, samples []float32) (*Buffer, error) {
	if sampleRate <= 0 || channels < 1 {
		return nil, ErrInvalidFormat
	}
	if len(samples)%channels != 0 {
		return nil, ErrChannelLengthMismatch
	}
	frames := len(samples) / channels
	buf := New(sampleRate, channels, frames)
	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			buf.data[c][f] = samples[base+c]
		}
	}
	return buf, nil
}

// SampleRate returns the rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.data) }

// Frames returns the per-channel sample count.
func (b *Buffer) Frames() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / float64(b.sampleRate)
}

// Channel returns the sample slice for channel c. The slice is live buffer
// data; callers that hold a returned Buffer must not write through it.
func (b *Buffer) Channel(c int) []float32 { return b.data[c] }

// FrameIndex converts a time in seconds to a frame index using the floor
// rule, clamped to [0, Frames()].
func (b *Buffer) FrameIndex(t float64) int {
	i := int(math.Floor(t * float64(b.sampleRate)))
	if i < 0 {
		return 0
	}
	if i > b.Frames() {
		return b.Frames()
	}
	return i
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := New(b.sampleRate, b.Channels(), b.Frames())
	for c := range b.data {
		copy(out.data[c], b.data[c])
	}
	return out
}

// SliceFrames copies frames [from, to) into a new buffer. The range is
// clamped; an inverted or empty range yields a zero-frame buffer.
func (b *Buffer) SliceFrames(from, to int) *Buffer {
	if from < 0 {
		from = 0
	}
	if to > b.Frames() {
		to = b.Frames()
	}
	if to < from {
		to = from
	}
	out := New(b.sampleRate, b.Channels(), to-from)
	for c := range b.data {
		copy(out.data[c], b.data[c][from:to])
	}
	return out
}

// Slice copies the time range [start, end) seconds into a new buffer, using
// the same floor boundary rule as every editing operation.
func (b *Buffer) Slice(start, end float64) *Buffer {
	return b.SliceFrames(b.FrameIndex(start), b.FrameIndex(end))
}

// Concat appends the given buffers after b into one new buffer. All inputs
// must share b's sample rate and channel count.
func (b *Buffer) Concat(rest ...*Buffer) (*Buffer, error) {
	frames := b.Frames()
	for _, r := range rest {
		if r.sampleRate != b.sampleRate || r.Channels() != b.Channels() {
			return nil, ErrInvalidFormat
		}
		frames += r.Frames()
	}
	out := New(b.sampleRate, b.Channels(), frames)
	for c := range b.data {
		n := copy(out.data[c], b.data[c])
		for _, r := range rest {
			n += copy(out.data[c][n:], r.data[c])
		}
	}
	return out, nil
}

// Interleaved returns the samples as one interleaved slice
// (frame-major, channel-minor).
func (b *Buffer) Interleaved() []float32 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]float32, frames*channels)
	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			out[base+c] = b.data[c][f]
		}
	}
	return out
}

// Int16Interleaved converts to interleaved 16-bit PCM, clamping to [-1, 1].
func (b *Buffer) Int16Interleaved() []int16 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]int16, frames*channels)
	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			out[base+c] = utils.Float32ToInt16(b.data[c][f])
		}
	}
	return out
}

// DownmixMono averages all channels into one mono slice. Used by waveform
// peak extraction; the buffer itself is untouched.
func (b *Buffer) DownmixMono() []float32 {
	frames := b.Frames()
	channels := b.Channels()
	out := make([]float32, frames)
	if channels == 1 {
		copy(out, b.data[0])
		return out
	}
	inv := float32(1.0) / float32(channels)
	for f := 0; f < frames; f++ {
		sum := float32(0)
		for c := 0; c < channels; c++ {
			sum += b.data[c][f]
		}
		out[f] = sum * inv
	}
	return out
}
