// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// SampleBuffer holds decoded audio split per channel. Every channel slice has
// the same length and values are normalized to [-1, 1].
//
// A SampleBuffer is handed to a playback subsystem as-is and is never
// modified after it is built.
type SampleBuffer struct {
	SampleRate int
	Data       [][]float32
}

// NewSampleBuffer allocates channels slices of frames samples each.
func NewSampleBuffer(sampleRate, channels, frames int) *SampleBuffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &SampleBuffer{
		SampleRate: sampleRate,
		Data:       data,
	}
}

func (b *SampleBuffer) NumChannels() int { return len(b.Data) }

// NumFrames is the per-channel sample count.
func (b *SampleBuffer) NumFrames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Channel returns the samples of channel c, or nil when out of range.
func (b *SampleBuffer) Channel(c int) []float32 {
	if c < 0 || c >= len(b.Data) {
		return nil
	}
	return b.Data[c]
}

func (b *SampleBuffer) Format() Format {
	return NewFormat(b.SampleRate, b.NumChannels())
}

func (b *SampleBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.NumFrames()) * time.Second / time.Duration(b.SampleRate)
}

// Interleaved returns the samples in frame order: L0 R0 L1 R1 ...
func (b *SampleBuffer) Interleaved() []float32 {
	channels := b.NumChannels()
	frames := b.NumFrames()
	out := make([]float32, frames*channels)

	for c, samples := range b.Data {
		for f, s := range samples {
			out[f*channels+c] = s
		}
	}

	return out
}

// Source exposes the buffer as an interleaved Source.
func (b *SampleBuffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf   *SampleBuffer
	frame int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.NumChannels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.NumChannels()
	if channels == 0 {
		return 0, io.EOF
	}

	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := s.buf.NumFrames() - s.frame
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = s.buf.Data[c][s.frame+f]
		}
	}
	s.frame += frames

	if s.frame >= s.buf.NumFrames() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
