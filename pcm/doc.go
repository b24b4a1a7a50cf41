// SPDX-License-Identifier: EPL-2.0

// Package pcm defines the Buffer value type shared by the whole editor core.
//
// A Buffer is a decoded signal: a sample rate plus one float32 slice per
// channel, all of equal length. Samples are normalized to [-1.0, 1.0]:
//   - 0.0 is silence
//   - ±1.0 is maximum amplitude
//
// # Ownership
//
// Buffers are immutable by convention. Operations such as Slice, Concat and
// Clone always copy; nothing in this package mutates an existing Buffer, and
// editing operations elsewhere in the module return fresh Buffers rather than
// writing through shared slices.
//
// # Time to frames
//
// FrameIndex converts seconds to a frame index with floor(t * rate), clamped
// to the buffer. Every range-based operation in the module uses this same
// rule on both ends of a range, which keeps deletions and exports
// sample-accurate with no off-by-one drift between components.
//
// # Interop
//
// Interleaved and FromInterleaved convert between the planar layout used here
// and the interleaved layout used by decoders and playback devices.
// Int16Interleaved clamps and scales for 16-bit PCM output.
package pcm
