// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"time"

	"github.com/ik5/ttswav/audio"
)

// Output is an audio device that plays materialized buffers.
type Output interface {
	// Acquire makes sure the device is open and running for f, creating it
	// on first use and resuming it if suspended.
	Acquire(f audio.Format) error
	// Play starts buf and returns without waiting for it to finish.
	Play(buf *audio.SampleBuffer) (*Handle, error)
}

type player interface {
	Play()
	Pause()
	IsPlaying() bool
}

// Handle tracks one started buffer.
type Handle struct {
	p        player
	duration time.Duration
}

// Duration of the audio that was queued.
func (h *Handle) Duration() time.Duration { return h.duration }

// Playing reports whether the device is still draining the buffer.
func (h *Handle) Playing() bool { return h.p.IsPlaying() }

// Wait blocks until playback drains or ctx is done.
func (h *Handle) Wait(ctx context.Context) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for h.p.IsPlaying() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}

// Stop ends this buffer early. The device itself stays open.
func (h *Handle) Stop() {
	h.p.Pause()
}
