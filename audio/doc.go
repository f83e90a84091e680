// SPDX-License-Identifier: EPL-2.0

// Package audio provides the shared audio types used by the codecs.
//
// This package contains:
//   - Format, the out-of-band description of raw PCM16 audio
//   - SampleBuffer, decoded audio split per channel
//   - Source interface for pull-based interleaved sample streams
//   - MonoMixer for folding stereo down to mono
//   - Registry for looking up decoders by format key
//   - ErrDecode, ErrFormat and ErrResource, the error taxonomy of the module
//
// # Format
//
// Raw PCM returned by a TTS service has no header, so its shape is always
// supplied by the caller:
//
//	f := audio.NewFormat(24000, 1) // 24kHz mono, 16-bit
//	if err := f.Validate(); err != nil {
//	    // errors.Is(err, audio.ErrFormat)
//	}
//
// Only mono and stereo 16-bit PCM are accepted.
//
// # Sample Buffers
//
// A SampleBuffer keeps one []float32 per channel, every value in [-1, 1]:
//
//	left := buf.Channel(0)
//	frames := buf.NumFrames()
//
// Buffers are read-only once built. Source() exposes one as an interleaved
// stream, which lets it feed MonoMixer or a playback device.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is drained. ReadAll collects a
// whole Source into one slice.
//
// # Errors
//
// Every package wraps one of the sentinels so callers can branch with
// errors.Is:
//
//	switch {
//	case errors.Is(err, audio.ErrDecode):   // bad base64
//	case errors.Is(err, audio.ErrFormat):   // bad format or oversized payload
//	case errors.Is(err, audio.ErrResource): // no audio output
//	}
package audio
