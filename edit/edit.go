// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"math"

	"github.com/romanurban/audio-cropper/pcm"
	"github.com/romanurban/audio-cropper/utils"
)

// FadeDirection selects the fade curve orientation.
type FadeDirection int

const (
	FadeIn FadeDirection = iota
	FadeOut
)

// DefaultNormalizeTarget is the loudness target in dBFS used when callers do
// not supply one.
const DefaultNormalizeTarget = -3.0

// maxNormalizeGain caps the normalization gain at +30 dB. The guard exists so
// that near-silent material cannot be blown up into pure noise.
var maxNormalizeGain = utils.DBToLinear(30)

// DeleteRange returns a buffer with the time range [start, end) removed and
// the tail shifted left. A zero-length range returns an unchanged copy.
func DeleteRange(buf *pcm.Buffer, start, end float64) *pcm.Buffer {
	from := buf.FrameIndex(start)
	to := buf.FrameIndex(end)
	if to <= from {
		return buf.Clone()
	}
	out := pcm.New(buf.SampleRate(), buf.Channels(), buf.Frames()-(to-from))
	for c := 0; c < buf.Channels(); c++ {
		src := buf.Channel(c)
		dst := out.Channel(c)
		n := copy(dst, src[:from])
		copy(dst[n:], src[to:])
	}
	return out
}

// Fade applies a cosine-eased gain ramp over [start, end). Fade-in ramps from
// 0 to unity, fade-out from unity to 0; samples outside the range are copied
// unchanged.
func Fade(buf *pcm.Buffer, start, end float64, dir FadeDirection) *pcm.Buffer {
	from := buf.FrameIndex(start)
	to := buf.FrameIndex(end)
	out := buf.Clone()
	if to <= from {
		return out
	}
	span := float64(to - from)
	for c := 0; c < out.Channels(); c++ {
		ch := out.Channel(c)
		for i := from; i < to; i++ {
			raw := float64(i-from) / span
			if dir == FadeOut {
				raw = 1 - raw
			}
			m := 0.5 * (1 - math.Cos(raw*math.Pi))
			ch[i] = float32(float64(ch[i]) * m)
		}
	}
	return out
}

// Silence zeroes every sample in [start, end).
func Silence(buf *pcm.Buffer, start, end float64) *pcm.Buffer {
	from := buf.FrameIndex(start)
	to := buf.FrameIndex(end)
	out := buf.Clone()
	for c := 0; c < out.Channels(); c++ {
		ch := out.Channel(c)
		for i := from; i < to; i++ {
			ch[i] = 0
		}
	}
	return out
}

// Normalize scales [start, end) so its RMS loudness reaches targetDb (dBFS,
// usually negative). If the RMS gain would push the range's peak above the
// target, the gain falls back to targetLinear/peak so nothing clips. The gain
// never exceeds +30 dB. A silent range (peak of 0) is returned unchanged.
//
// Samples are hard-clipped to [-1, 1] after scaling; clipping only actually
// occurs when the gain cap was the binding constraint.
func Normalize(buf *pcm.Buffer, start, end float64, targetDb float64) *pcm.Buffer {
	from := buf.FrameIndex(start)
	to := buf.FrameIndex(end)
	out := buf.Clone()
	if to <= from {
		return out
	}

	// Pass 1: RMS and peak across all channels combined.
	var sumSquares float64
	var peak float64
	for c := 0; c < out.Channels(); c++ {
		ch := out.Channel(c)
		for i := from; i < to; i++ {
			s := float64(ch[i])
			sumSquares += s * s
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
	}
	if peak == 0 {
		return out
	}

	count := float64((to - from) * out.Channels())
	rms := math.Sqrt(sumSquares / count)
	targetLinear := utils.DBToLinear(targetDb)

	gain := targetLinear / rms
	if peak*gain > targetLinear {
		// RMS gain would clip the loudest sample past the target level.
		gain = targetLinear / peak
	}
	if gain > maxNormalizeGain {
		gain = maxNormalizeGain
	}

	// Pass 2: apply and hard-clip.
	for c := 0; c < out.Channels(); c++ {
		ch := out.Channel(c)
		for i := from; i < to; i++ {
			s := float64(ch[i]) * gain
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			ch[i] = float32(s)
		}
	}
	return out
}
