// SPDX-License-Identifier: EPL-2.0

// Package playback hands materialized audio to the speakers.
//
// The Output interface is what the rest of the module depends on, so codecs
// and pipelines can be tested without audio hardware. Oto implements it with
// github.com/ebitengine/oto/v3:
//
//	out := playback.Shared(playback.WithLogger(logger))
//	if err := out.Acquire(audio.DefaultFormat); err != nil {
//	    // errors.Is(err, audio.ErrResource): no device or permission
//	}
//	h, err := out.Play(buf)
//	h.Wait(ctx)
//
// The device is created lazily on first use, at most once, and is never torn
// down by this package. Suspend pauses it; the next Acquire or Play resumes it.
// Because the device format is fixed once opened, a buffer with a different
// sample rate is rejected with audio.ErrResource. Stereo buffers played on a
// mono device are folded with audio.MonoMixer and mono buffers on a stereo
// device are duplicated to both channels.
package playback
