// SPDX-License-Identifier: EPL-2.0

// Package audiocropper is an embeddable audio editing core.
//
// Given a decoded signal it maintains an ordered partition of the timeline
// into chunks, a free-form range selection, sample-accurate editing
// operations (delete, fade, silence, normalize) and export of arbitrary
// sub-ranges. Drawing, file handling and input wiring stay outside; the core
// exchanges time positions, chunk lists and PCM buffers with them.
//
// # Layout
//
//   - pcm: the Buffer value type every component shares
//   - segment: the chunk partition and its split/delete algebra
//   - edit: the stateless sample-range transforms
//   - layout: time <-> pixel mapping (gapped and zoomed strategies)
//   - playback: the transport state machine and device sink
//   - session: the coordinator tying everything to one loaded signal
//   - export: WAV and injected lossy encoding of sub-ranges
//   - audio, formats/...: the decode boundary (WAV, MP3, Ogg Vorbis, AIFF)
//   - render: waveform peak envelopes for the drawing layer
//
// # Quick Start
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//
//	f, _ := os.Open("take.wav")
//	src, _ := registry.Decode("wav", f)
//
//	sess := session.New(sink, nil, nil)
//	if err := sess.Load(src); err != nil {
//	    // handle
//	}
//
//	sess.Split(3.0)
//	sess.PointerDown(1.0)
//	sess.PointerMove(2.5)
//	sess.PointerUp(2.5)
//	sess.DeleteActive()
//
//	blob, _ := sess.ExportAllWAV()
//
// The Loaded buffer, chunk list and selection are replaced atomically by
// every structural edit; see the session package for the interaction rules.
package audiocropper
