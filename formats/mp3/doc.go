// Package mp3 decodes MPEG-1 Layer III audio via
// github.com/hajimehoshi/go-mp3. Output is always stereo.
package mp3
