// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/base64"
	"encoding/binary"
	"math"
)

// PCM16 packs samples as little-endian int16, already interleaved.
func PCM16(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// SinePCM16 renders a 0.5 amplitude sine as interleaved PCM16 bytes.
func SinePCM16(sampleRate, channels, frames int, frequency float64) []byte {
	samples := make([]int16, 0, frames*channels)
	for f := range frames {
		v := int16(math.Round(0.5 * Sine(f, sampleRate, frequency) * 32767))
		for range channels {
			samples = append(samples, v)
		}
	}
	return PCM16(samples...)
}

// Base64PCM16 is PCM16 encoded the way TTS responses deliver it.
func Base64PCM16(samples ...int16) string {
	return base64.StdEncoding.EncodeToString(PCM16(samples...))
}
