// SPDX-License-Identifier: EPL-2.0

// Package playback is the transport state machine over a loaded buffer.
//
// The Controller plays three kinds of range: a free selection, a single
// chunk, or the whole chunk sequence concatenated gaplessly. It slices the
// sub-buffer with pcm + segment helpers and hands it to a Sink; the sink's
// completion callback drives loop restarts and the transition back to idle.
//
// Position is computed, never stored: pausedAt is authoritative whenever the
// transport is not playing, and while playing the position is the source
// start plus the wall-clock delta from the injected Clock. Pause, Stop and
// Seek all re-anchor pausedAt and invalidate the old wall-clock reference.
//
// DeviceSink is the oto-backed implementation; tests substitute their own
// Sink and Clock.
package playback
