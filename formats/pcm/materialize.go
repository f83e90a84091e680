// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/ttswav/audio"
	"github.com/ik5/ttswav/utils"
)

// Materialize splits interleaved PCM16LE bytes into one normalized float32
// slice per channel.
//
// Bytes after the last whole frame (len(data) % f.BlockAlign()) are dropped.
// The only error is an invalid f, reported as audio.ErrFormat.
func Materialize(data []byte, f audio.Format) (*audio.SampleBuffer, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("materialize: %w", err)
	}

	blockAlign := f.BlockAlign()
	frames := len(data) / blockAlign
	buf := audio.NewSampleBuffer(f.SampleRate, f.Channels, frames)

	for c := range f.Channels {
		dst := buf.Data[c]
		off := c * audio.BytesPerSample
		for i := range frames {
			v := int16(binary.LittleEndian.Uint16(data[off:]))
			dst[i] = utils.Int16ToFloat32(v)
			off += blockAlign
		}
	}

	return buf, nil
}

// Trailing returns how many bytes Materialize would drop for data.
func Trailing(data []byte, f audio.Format) int {
	if f.BlockAlign() <= 0 {
		return len(data)
	}
	return len(data) % f.BlockAlign()
}

// FromSamples quantizes buf back to interleaved PCM16LE bytes.
func FromSamples(buf *audio.SampleBuffer) []byte {
	channels := buf.NumChannels()
	frames := buf.NumFrames()
	out := make([]byte, frames*channels*audio.BytesPerSample)

	for c, samples := range buf.Data {
		for i := range frames {
			off := (i*channels + c) * audio.BytesPerSample
			binary.LittleEndian.PutUint16(out[off:], uint16(utils.Float32ToInt16(samples[i])))
		}
	}

	return out
}
