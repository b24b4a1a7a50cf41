package audiocropper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/romanurban/audio-cropper/audio"
	"github.com/romanurban/audio-cropper/formats/aiff"
	"github.com/romanurban/audio-cropper/formats/mp3"
	"github.com/romanurban/audio-cropper/formats/vorbis"
	"github.com/romanurban/audio-cropper/formats/wav"
	"github.com/romanurban/audio-cropper/pcm"
)

// DefaultRegistry returns a decoder registry with every built-in format:
// "wav", "mp3", "ogg" and "aiff".
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

// FormatForPath derives the registry key from a file extension. Unknown
// extensions return "" and fail decoding with audio.ErrUnsupportedFormat.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return "wav"
	case ".mp3":
		return "mp3"
	case ".ogg", ".oga":
		return "ogg"
	case ".aif", ".aiff":
		return "aiff"
	default:
		return ""
	}
}

// LoadFile decodes an audio file into a buffer, picking the decoder by file
// extension.
func LoadFile(path string) (*pcm.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := DefaultRegistry().Decode(FormatForPath(path), f)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return audio.Collect(src)
}
