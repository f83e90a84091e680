// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// BitsPerSample is the only sample width handled by this module.
const BitsPerSample = 16

// BytesPerSample is the width of one PCM16 sample.
const BytesPerSample = BitsPerSample / 8

// Format describes raw PCM audio supplied out-of-band (raw PCM carries no header).
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// DefaultFormat is what TTS responses are delivered as: 24kHz mono PCM16.
var DefaultFormat = Format{
	SampleRate:    24000,
	Channels:      1,
	BitsPerSample: BitsPerSample,
}

// NewFormat returns a 16-bit format with the given rate and channel count.
func NewFormat(sampleRate, channels int) Format {
	return Format{
		SampleRate:    sampleRate,
		Channels:      channels,
		BitsPerSample: BitsPerSample,
	}
}

// Validate reports ErrFormat when the format cannot be handled.
// Only mono and stereo PCM16 at a positive sample rate is accepted.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrFormat, f.SampleRate)
	}

	if f.Channels != 1 && f.Channels != 2 {
		return fmt.Errorf("%w: channels must be 1 or 2, got %d", ErrFormat, f.Channels)
	}

	if f.BitsPerSample != BitsPerSample {
		return fmt.Errorf("%w: only %d-bit PCM supported, got %d", ErrFormat, BitsPerSample, f.BitsPerSample)
	}

	return nil
}

// BlockAlign is the size of one frame in bytes.
func (f Format) BlockAlign() int { return f.Channels * BytesPerSample }

// ByteRate is the number of PCM bytes per second.
func (f Format) ByteRate() int { return f.SampleRate * f.BlockAlign() }

// Frames returns how many whole frames fit in n bytes.
func (f Format) Frames(n int) int {
	if f.BlockAlign() <= 0 {
		return 0
	}
	return n / f.BlockAlign()
}

// Duration of n bytes of PCM in this format.
func (f Format) Duration(n int) time.Duration {
	if f.SampleRate <= 0 {
		return 0
	}
	return time.Duration(f.Frames(n)) * time.Second / time.Duration(f.SampleRate)
}

func (f Format) String() string {
	return fmt.Sprintf("%dHz %dch %d-bit", f.SampleRate, f.Channels, f.BitsPerSample)
}
