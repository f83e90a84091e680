// SPDX-License-Identifier: EPL-2.0

// Package ttswav turns the base64 PCM audio returned by text-to-speech
// services into playable samples and downloadable WAV files.
//
// A TTS response typically carries signed 16-bit little-endian PCM, base64
// encoded, at 24kHz mono. Processing it is three steps:
//
//	data, _ := b64.Decode(resp)                     // formats/b64
//	buf, _  := pcm.Materialize(data, format)        // formats/pcm, for playback
//	blob, _ := wav.Encode(data, format)             // formats/wav, for export
//
// Pipeline bundles them and, when configured with a playback.Output, makes
// sure the audio device is up before materializing:
//
//	p := &ttswav.Pipeline{Output: playback.Shared()}
//	res, err := p.Process(resp, audio.DefaultFormat)
//	if err != nil {
//	    // errors.Is(err, audio.ErrDecode / ErrFormat / ErrResource)
//	}
//	h, _ := p.Play(res)
//	os.WriteFile(res.Filename("tts"), res.WAV, 0o644)
//
// Errors are terminal for the request: nothing partial is returned and the
// caller may simply retry.
//
// # Sessions
//
// Session wraps a Pipeline for interactive use. It refuses overlapping
// requests with ErrBusy, keeps only the latest WAV export and remembers the
// last HistoryLimit responses, evicting the oldest.
//
// # Subpackages
//
//   - audio: Format, SampleBuffer, Source, MonoMixer and the error sentinels
//   - formats/b64: base64 to bytes
//   - formats/pcm: PCM16LE to per-channel float32
//   - formats/wav: WAV encoding and reading
//   - playback: the lazily created audio output (ebitengine/oto)
//   - utils: sample quantization helpers
package ttswav
