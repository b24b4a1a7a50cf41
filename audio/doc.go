// SPDX-License-Identifier: EPL-2.0

// Package audio is the decode boundary of the editor core.
//
// # Source Interface
//
// Decoders produce a Source, a pull-based stream of interleaved float32
// samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// ReadSamples returns io.EOF with n == 0 when the stream is finished; any
// other error is a decode failure.
//
// # Format Registry
//
// The Registry maps format keys to decoders so callers can resolve a decoder
// from a file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("mp3", mp3.Decoder{})
//	src, err := registry.Decode("wav", file)
//
// Looking up an unregistered key fails with ErrUnsupportedFormat, which lets
// the caller retry with a different file without tearing anything down.
//
// # Collecting
//
// The editor operates on whole pcm.Buffers, not streams. Collect drains a
// Source into one:
//
//	src, _ := registry.Decode("wav", file)
//	buf, err := audio.Collect(src)
//
// All editing, playback and export then work on the collected buffer.
package audio
