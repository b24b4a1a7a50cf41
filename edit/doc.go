// SPDX-License-Identifier: EPL-2.0

// Package edit implements the stateless sample-level editing operations:
// range deletion, cosine fades, silencing and RMS normalization.
//
// Every operation takes a pcm.Buffer plus a normalized time range
// (start <= end), converts both ends with the shared floor rule, applies the
// transform identically to every channel and returns a new Buffer. The input
// is never modified. Zero-length ranges are legal and return an unchanged
// copy.
//
// Only DeleteRange changes the frame count; no operation ever changes the
// sample rate or channel count.
//
// # Normalization
//
// Normalize is two-pass. The first pass measures RMS and peak over the range
// (all channels pooled); the second applies gain = target/RMS, demoted to
// target/peak whenever the RMS gain would push the peak past the target
// level, and capped at +30 dB. Output is hard-clipped to [-1, 1], which can
// only bite when the 30 dB cap was hit.
package edit
