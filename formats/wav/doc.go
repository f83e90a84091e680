// SPDX-License-Identifier: EPL-2.0

// Package wav wraps raw PCM16 audio in a WAV container and reads it back.
//
// # Encoding
//
// Encode takes the same raw PCM16LE bytes that were materialized for playback
// (WAV stores the original integer samples, not the normalized floats) and
// prepends the canonical 44-byte header:
//
//	blob, err := wav.Encode(data, audio.NewFormat(24000, 1))
//	name := wav.Filename("tts", time.Now()) // tts-1718000000123.wav
//	// serve blob with blob.MIMEType() == "audio/wav"
//
// Header layout (all integers little-endian):
//
//	 0  "RIFF"
//	 4  uint32  36 + dataLen
//	 8  "WAVE"
//	12  "fmt "
//	16  uint32  16
//	20  uint16  1 (PCM)
//	22  uint16  channels
//	24  uint32  sample rate
//	28  uint32  sample rate * channels * 2
//	32  uint16  channels * 2
//	34  uint16  16
//	36  "data"
//	40  uint32  dataLen
//	44  payload
//
// The payload is copied verbatim. An odd-length payload is written as-is
// without the RIFF pad byte; players accept it but strict validators may not.
// Payloads too large for the 32-bit size fields fail with audio.ErrFormat.
//
// Write streams the same bytes to an io.Writer and EncodeSamples encodes a
// materialized audio.SampleBuffer.
//
// # Decoding
//
// Decoder reads PCM 16-bit WAV files through github.com/go-audio/wav and
// returns an audio.Source of normalized samples. Inspect reports the format
// and payload size without reading samples.
//
//	info, err := wav.Inspect(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a RIFF/WAVE file
//	}
package wav
