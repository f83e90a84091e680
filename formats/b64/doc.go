// SPDX-License-Identifier: EPL-2.0

// Package b64 decodes the base64 text a TTS service returns into raw PCM bytes.
//
// The standard alphabet is used, padding is optional and embedded ASCII
// whitespace is ignored:
//
//	pcm, err := b64.Decode(resp.Audio)
//	if errors.Is(err, audio.ErrDecode) {
//	    // malformed response, abort this request
//	}
//
// Decode("") returns an empty slice and no error.
package b64
