// SPDX-License-Identifier: EPL-2.0

package ttswav

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/ttswav/audio"
	"github.com/ik5/ttswav/formats/b64"
	"github.com/ik5/ttswav/formats/pcm"
	"github.com/ik5/ttswav/formats/wav"
	"github.com/ik5/ttswav/playback"
)

// Result is everything produced from one TTS response.
type Result struct {
	ID        uuid.UUID
	Format    audio.Format
	PCM       []byte
	Samples   *audio.SampleBuffer
	WAV       wav.Blob
	CreatedAt time.Time
}

// Duration of the decoded audio.
func (r *Result) Duration() time.Duration { return r.Samples.Duration() }

// Filename suggests a download name for r.WAV.
func (r *Result) Filename(prefix string) string {
	return wav.Filename(prefix, r.CreatedAt)
}

// Pipeline turns base64 PCM from a TTS response into playable samples and a
// WAV export.
type Pipeline struct {
	// Output, when set, is acquired (created or resumed) before the samples
	// are materialized. Nil skips playback concerns entirely.
	Output playback.Output
	Logger *slog.Logger

	now func() time.Time
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Pipeline) clock() time.Time {
	if p.now != nil {
		return p.now()
	}
	return time.Now()
}

// Process decodes encoded, then builds both the SampleBuffer and the WAV blob
// from the same bytes. Any failure aborts the whole request: no partial Result
// is returned.
func (p *Pipeline) Process(encoded string, f audio.Format) (*Result, error) {
	log := p.logger()

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	data, err := b64.Decode(encoded)
	if err != nil {
		log.Warn("tts audio decode failed", slog.Int("encoded_len", len(encoded)), slog.String("error", err.Error()))
		return nil, fmt.Errorf("process: %w", err)
	}

	if p.Output != nil {
		if err := p.Output.Acquire(f); err != nil {
			log.Error("audio output unavailable", slog.String("error", err.Error()))
			return nil, fmt.Errorf("process: %w", err)
		}
	}

	samples, err := pcm.Materialize(data, f)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}
	if dropped := pcm.Trailing(data, f); dropped > 0 {
		log.Debug("dropped partial frame", slog.Int("bytes", dropped), slog.Int("block_align", f.BlockAlign()))
	}

	blob, err := wav.Encode(data, f)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	res := &Result{
		ID:        uuid.New(),
		Format:    f,
		PCM:       data,
		Samples:   samples,
		WAV:       blob,
		CreatedAt: p.clock(),
	}

	log.Debug("tts audio processed",
		slog.String("id", res.ID.String()),
		slog.String("format", f.String()),
		slog.Int("pcm_bytes", len(data)),
		slog.Duration("duration", res.Duration()),
	)

	return res, nil
}

// Play hands res.Samples to the pipeline's Output.
func (p *Pipeline) Play(res *Result) (*playback.Handle, error) {
	if p.Output == nil {
		return nil, fmt.Errorf("%w: no output configured", audio.ErrResource)
	}
	return p.Output.Play(res.Samples)
}
