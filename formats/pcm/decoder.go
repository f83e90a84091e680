// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/ttswav/audio"
	"github.com/ik5/ttswav/utils"
)

type source struct {
	r      io.Reader
	format audio.Format
	buf    []byte
	eof    bool
}

func (s *source) SampleRate() int { return s.format.SampleRate }
func (s *source) Channels() int   { return s.format.Channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / audio.BytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.format.Channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	// need is frame aligned, so a short read only happens at end of stream
	need := len(dst) * audio.BytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w", err)
		}
		s.eof = true
	}

	// a trailing partial frame is dropped, as in Materialize
	usable := n - n%s.format.BlockAlign()
	samples := usable / audio.BytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if s.eof {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder reads headerless PCM16LE in Format.
type Decoder struct {
	Format audio.Format
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if err := d.Format.Validate(); err != nil {
		return nil, fmt.Errorf("pcm decoder: %w", err)
	}

	return &source{
		r:      r,
		format: d.Format,
		buf:    make([]byte, 8192),
	}, nil
}
