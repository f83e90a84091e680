// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrDecode marks malformed encoded input (e.g. bad base64).
	ErrDecode = errors.New("malformed encoded audio")
	// ErrFormat marks an unusable audio format or payload size.
	ErrFormat = errors.New("unsupported audio format")
	// ErrResource marks a failure to acquire the audio output context.
	ErrResource = errors.New("audio output unavailable")
)
