// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"testing"
	"time"
)

func stereoBuffer() *SampleBuffer {
	return &SampleBuffer{
		SampleRate: 4,
		Data: [][]float32{
			{0.1, 0.2, 0.3},
			{-0.1, -0.2, -0.3},
		},
	}
}

func TestSampleBuffer_Shape(t *testing.T) {
	t.Parallel()

	b := stereoBuffer()

	if b.NumChannels() != 2 {
		t.Errorf("NumChannels() = %d, want 2", b.NumChannels())
	}
	if b.NumFrames() != 3 {
		t.Errorf("NumFrames() = %d, want 3", b.NumFrames())
	}
	if b.Duration() != 750*time.Millisecond {
		t.Errorf("Duration() = %v, want 750ms", b.Duration())
	}
	if b.Format() != NewFormat(4, 2) {
		t.Errorf("Format() = %v", b.Format())
	}
	if b.Channel(2) != nil || b.Channel(-1) != nil {
		t.Error("Channel() out of range should be nil")
	}
}

func TestNewSampleBuffer(t *testing.T) {
	t.Parallel()

	b := NewSampleBuffer(24000, 2, 0)
	if b.NumChannels() != 2 || b.NumFrames() != 0 {
		t.Fatalf("got %d channels / %d frames, want 2 / 0", b.NumChannels(), b.NumFrames())
	}
	for c := range 2 {
		if b.Channel(c) == nil {
			t.Errorf("Channel(%d) is nil, want empty slice", c)
		}
	}
}

func TestSampleBuffer_Interleaved(t *testing.T) {
	t.Parallel()

	got := stereoBuffer().Interleaved()
	want := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	if !slices.Equal(got, want) {
		t.Errorf("Interleaved() = %v, want %v", got, want)
	}
}

func TestSampleBuffer_Source(t *testing.T) {
	t.Parallel()

	src := stereoBuffer().Source()
	if src.Channels() != 2 || src.SampleRate() != 4 {
		t.Fatalf("Source() = %d ch / %d Hz", src.Channels(), src.SampleRate())
	}

	buf := make([]float32, 4)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 4 {
		t.Fatalf("first ReadSamples() = %d, %v; want 4, nil", n, err)
	}
	if !slices.Equal(buf, []float32{0.1, -0.1, 0.2, -0.2}) {
		t.Errorf("first read = %v", buf)
	}

	n, err = src.ReadSamples(buf)
	if err != io.EOF || n != 2 {
		t.Fatalf("second ReadSamples() = %d, %v; want 2, EOF", n, err)
	}

	n, err = src.ReadSamples(buf)
	if err != io.EOF || n != 0 {
		t.Fatalf("third ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
}

func TestSampleBuffer_SourceMisalignedDst(t *testing.T) {
	t.Parallel()

	src := stereoBuffer().Source()
	if _, err := src.ReadSamples(make([]float32, 3)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestSampleBuffer_Empty(t *testing.T) {
	t.Parallel()

	var b SampleBuffer
	if b.NumFrames() != 0 || b.Duration() != 0 {
		t.Error("zero SampleBuffer should have no frames")
	}
	if len(b.Interleaved()) != 0 {
		t.Error("zero SampleBuffer should interleave to nothing")
	}
	if _, err := b.Source().ReadSamples(make([]float32, 2)); err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want EOF", err)
	}
}
