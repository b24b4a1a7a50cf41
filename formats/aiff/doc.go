// Package aiff decodes 16-bit PCM AIFF audio via github.com/go-audio/aiff.
package aiff
