// SPDX-License-Identifier: EPL-2.0

package b64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/ttswav/audio"
)

// stripper removes the ASCII whitespace atob tolerates.
var stripper = strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "", "\f", "")

// Decode turns a standard-alphabet base64 string into raw bytes.
// Padding is optional. Malformed input returns an error wrapping
// audio.ErrDecode; no partial output is returned.
func Decode(s string) ([]byte, error) {
	s = stripper.Replace(s)
	if s == "" {
		return []byte{}, nil
	}

	enc := base64.StdEncoding
	if len(s)%4 != 0 {
		if strings.HasSuffix(s, "=") {
			return nil, fmt.Errorf("%w: bad padding length %d", audio.ErrDecode, len(s))
		}
		enc = base64.RawStdEncoding
	}

	out := make([]byte, enc.DecodedLen(len(s)))
	n, err := enc.Decode(out, []byte(s))
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, fmt.Errorf("%w: illegal base64 data at offset %d", audio.ErrDecode, int64(corrupt))
		}
		return nil, fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}

	return out[:n], nil
}

// DecodedLen is the exact byte length s decodes to, ignoring validity.
func DecodedLen(s string) int {
	s = stripper.Replace(s)
	trimmed := strings.TrimRight(s, "=")
	return len(trimmed) * 3 / 4
}

// Encode is the inverse of Decode, always padded.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
