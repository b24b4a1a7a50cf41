// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE PCM audio.
//
// Decoding goes through github.com/go-audio/wav, which walks the real chunk
// list, so files with extra metadata chunks load fine. Samples come out as an
// audio.Source of float32 values in [-1.0, 1.0], normalized by the file's
// bit depth.
//
// Encoding is the uncompressed export path of the editor: a fixed 44-byte
// header (RIFF, "fmt ", "data") followed by interleaved 16-bit little-endian
// PCM. The layout is kept bit-exact because exported files feed external
// tools that parse the canonical header.
package wav
