// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/ik5/ttswav/audio"
	"github.com/ik5/ttswav/formats/pcm"
)

const (
	// HeaderSize is the size of the canonical RIFF/fmt/data header.
	HeaderSize = 44

	// MIMEType is served with exported files.
	MIMEType = "audio/wav"

	// MaxDataLen is the largest payload whose RIFF size still fits in 32 bits.
	MaxDataLen = math.MaxUint32 - (HeaderSize - 8)

	fmtChunkSize = 16
	formatPCM    = 1
)

// Blob is a complete WAV file: a 44-byte header followed by the PCM payload.
type Blob []byte

func (b Blob) MIMEType() string { return MIMEType }

// Header returns the first HeaderSize bytes, or nil for a short blob.
func (b Blob) Header() []byte {
	if len(b) < HeaderSize {
		return nil
	}
	return b[:HeaderSize]
}

// Payload returns the PCM bytes after the header.
func (b Blob) Payload() []byte {
	if len(b) < HeaderSize {
		return nil
	}
	return b[HeaderSize:]
}

// DataLen is the payload length recorded in the data chunk header.
func (b Blob) DataLen() int {
	if len(b) < HeaderSize {
		return 0
	}
	return int(binary.LittleEndian.Uint32(b[40:44]))
}

// header fills the canonical 44 byte header for dataLen payload bytes.
func header(dataLen int, f audio.Format) []byte {
	h := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(HeaderSize-8+dataLen))
	copy(h[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(h[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(h[34:36], audio.BitsPerSample)

	// data chunk header (8 bytes)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(dataLen))

	return h
}

func check(dataLen int, f audio.Format) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if uint64(dataLen) > MaxDataLen {
		return fmt.Errorf("%w: payload of %d bytes exceeds %d", audio.ErrFormat, dataLen, uint64(MaxDataLen))
	}
	if uint64(f.ByteRate()) > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate %d overflows", audio.ErrFormat, f.ByteRate())
	}
	return nil
}

// Write streams a WAV file for the raw PCM16LE payload data to w.
// The payload is written verbatim; an odd length is not padded.
func Write(w io.Writer, data []byte, f audio.Format) error {
	if err := check(len(data), f); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}

	if _, err := w.Write(header(len(data), f)); err != nil {
		return fmt.Errorf("%w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Encode wraps the raw PCM16LE payload data in a WAV container.
// The result is always HeaderSize+len(data) bytes and never aliases data.
func Encode(data []byte, f audio.Format) (Blob, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(data)))
	if err := Write(buf, data, f); err != nil {
		return nil, err
	}
	return Blob(buf.Bytes()), nil
}

// EncodeSamples quantizes a materialized buffer back to PCM16 and encodes it.
func EncodeSamples(buf *audio.SampleBuffer) (Blob, error) {
	return Encode(pcm.FromSamples(buf), buf.Format())
}

// Filename suggests a download name: <prefix>-<unix millis>.wav.
func Filename(prefix string, t time.Time) string {
	return prefix + "-" + strconv.FormatInt(t.UnixMilli(), 10) + ".wav"
}
