// SPDX-License-Identifier: EPL-2.0

// Package pcm turns headerless PCM16LE bytes into normalized float samples.
//
// TTS services return raw signed 16-bit little-endian PCM with the sample rate
// and channel count agreed out-of-band. Materialize converts such a payload in
// one call:
//
//	buf, err := pcm.Materialize(data, audio.NewFormat(24000, 1))
//	left := buf.Channel(0) // float32 in [-1, 1]
//
// Each sample is value/32768, clamped into [-1, 1]. Stereo payloads are
// de-interleaved, channel 0 first.
//
// # Truncation
//
// A payload whose length is not a multiple of 2*channels is not an error: the
// trailing partial frame is dropped. A 5 byte mono payload yields 2 samples.
// Trailing reports how many bytes would be dropped. audio.ErrFormat is only
// returned for an invalid Format.
//
// # Streaming
//
// Decoder wraps an io.Reader of raw PCM as an audio.Source, for callers that
// want to feed audio processors such as audio.MonoMixer:
//
//	src, _ := pcm.Decoder{Format: f}.Decode(r)
//
// FromSamples goes the other way, quantizing a SampleBuffer to PCM16LE.
package pcm
