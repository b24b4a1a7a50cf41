// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrDecodeFailed      = errors.New("decode failed")
)
