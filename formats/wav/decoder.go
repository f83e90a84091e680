// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/ttswav/audio"
	"github.com/ik5/ttswav/utils"
)

// wavReader is the part of gowav.Decoder the source needs; lets tests fake it.
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data: make([]int, len(dst)),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
			SourceBitDepth: audio.BitsPerSample,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	// dst is frame aligned, so a short read only happens at end of data
	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w", err)
		}
		s.eof = true
	}
	if n < len(dst) {
		s.eof = true
	}

	// a trailing partial frame is dropped, as in pcm.Materialize
	n -= n % s.channels
	for i := range n {
		dst[i] = utils.Int16ToFloat32(int16(s.intBuf.Data[i]))
	}

	if s.eof {
		return n, io.EOF
	}
	return n, nil
}

// Info describes a parsed WAV file.
type Info struct {
	Format   audio.Format
	DataLen  int
	Duration time.Duration
}

// Decoder reads PCM16 WAV files such as those produced by Encode.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, info, err := open(r)
	if err != nil {
		return nil, err
	}

	return &source{
		dec:        dec,
		sampleRate: info.Format.SampleRate,
		channels:   info.Format.Channels,
	}, nil
}

// Inspect parses the headers of a WAV file without decoding samples.
func Inspect(r io.Reader) (Info, error) {
	_, info, err := open(r)
	return info, err
}

func open(r io.Reader) (*gowav.Decoder, Info, error) {
	// go-audio needs to seek between chunks
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, Info{}, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, Info{}, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM || dec.BitDepth != audio.BitsPerSample {
		return nil, Info{}, ErrOnlyPCM16bitSupported
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, Info{}, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	f := audio.NewFormat(int(dec.SampleRate), int(dec.NumChans))
	dataLen := int(dec.PCMLen())

	return dec, Info{
		Format:   f,
		DataLen:  dataLen,
		Duration: f.Duration(dataLen),
	}, nil
}
