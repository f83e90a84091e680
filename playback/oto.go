// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/ttswav/audio"
)

// DefaultBufferSize is the device buffer oto is opened with.
const DefaultBufferSize = 80 * time.Millisecond

type device interface {
	NewPlayer(r io.Reader) player
	Resume() error
	Suspend() error
	Err() error
}

type opener func(f audio.Format, bufferSize time.Duration) (device, error)

type otoDevice struct {
	ctx *oto.Context
}

func (d otoDevice) NewPlayer(r io.Reader) player { return d.ctx.NewPlayer(r) }
func (d otoDevice) Resume() error                { return d.ctx.Resume() }
func (d otoDevice) Suspend() error               { return d.ctx.Suspend() }
func (d otoDevice) Err() error                   { return d.ctx.Err() }

func openOto(f audio.Format, bufferSize time.Duration) (device, error) {
	op := &oto.NewContextOptions{
		SampleRate:   f.SampleRate,
		ChannelCount: f.Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return otoDevice{ctx: ctx}, nil
}

// Option configures an Oto output.
type Option func(*Oto)

func WithLogger(l *slog.Logger) Option {
	return func(o *Oto) { o.log = l }
}

func WithBufferSize(d time.Duration) Option {
	return func(o *Oto) { o.bufferSize = d }
}

// Oto plays audio through github.com/ebitengine/oto/v3.
//
// The device is opened on the first Acquire with that call's format and is
// never closed. oto allows a single context per process, so the format is
// fixed from then on and a failed open is not retried.
type Oto struct {
	mu         sync.Mutex
	open       opener
	dev        device
	openErr    error
	format     audio.Format
	suspended  bool
	bufferSize time.Duration
	log        *slog.Logger
}

func NewOto(opts ...Option) *Oto {
	return newOto(openOto, opts...)
}

func newOto(open opener, opts ...Option) *Oto {
	o := &Oto{
		open:       open,
		bufferSize: DefaultBufferSize,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var (
	sharedOnce sync.Once
	shared     *Oto
)

// Shared returns the process-wide output. opts apply only on the first call;
// later calls get the same *Oto unchanged.
func Shared(opts ...Option) *Oto {
	sharedOnce.Do(func() { shared = NewOto(opts...) })
	return shared
}

func (o *Oto) Acquire(f audio.Format) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.acquire(f)
}

func (o *Oto) acquire(f audio.Format) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("acquire output: %w", err)
	}

	if o.dev == nil && o.openErr == nil {
		dev, err := o.open(f, o.bufferSize)
		if err != nil {
			o.openErr = fmt.Errorf("%w: %w", audio.ErrResource, err)
			o.log.Error("audio output init failed", slog.String("format", f.String()), slog.String("error", err.Error()))
			return o.openErr
		}
		o.dev = dev
		o.format = f
		o.log.Info("audio output initialized", slog.Int("sample_rate", f.SampleRate), slog.Int("channels", f.Channels))
	}
	if o.openErr != nil {
		return o.openErr
	}

	if f.SampleRate != o.format.SampleRate {
		return fmt.Errorf("%w: output fixed at %d Hz, got %d Hz", audio.ErrResource, o.format.SampleRate, f.SampleRate)
	}

	if o.suspended {
		if err := o.dev.Resume(); err != nil {
			return fmt.Errorf("%w: resume: %w", audio.ErrResource, err)
		}
		o.suspended = false
		o.log.Debug("audio output resumed")
	}

	if err := o.dev.Err(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrResource, err)
	}

	return nil
}

// Suspend pauses the device. The next Acquire or Play resumes it.
func (o *Oto) Suspend() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.dev == nil || o.suspended {
		return nil
	}
	if err := o.dev.Suspend(); err != nil {
		return fmt.Errorf("%w: suspend: %w", audio.ErrResource, err)
	}
	o.suspended = true
	o.log.Debug("audio output suspended")

	return nil
}

// Format is the format the device was opened with; zero before first use.
func (o *Oto) Format() audio.Format {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.format
}

func (o *Oto) Play(buf *audio.SampleBuffer) (*Handle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.acquire(buf.Format()); err != nil {
		return nil, err
	}

	samples, err := render(buf, o.format.Channels)
	if err != nil {
		return nil, err
	}

	p := o.dev.NewPlayer(bytes.NewReader(float32LE(samples)))
	p.Play()

	return &Handle{p: p, duration: buf.Duration()}, nil
}

// render interleaves buf for a device with channels outputs.
func render(buf *audio.SampleBuffer, channels int) ([]float32, error) {
	switch {
	case buf.NumChannels() == channels:
		return buf.Interleaved(), nil
	case buf.NumChannels() == 2 && channels == 1:
		return audio.ReadAll(audio.NewMonoMixer(buf.Source()))
	case buf.NumChannels() == 1 && channels == 2:
		mono := buf.Channel(0)
		out := make([]float32, 0, len(mono)*2)
		for _, s := range mono {
			out = append(out, s, s)
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: cannot map %d channels to %d", audio.ErrFormat, buf.NumChannels(), channels)
}

func float32LE(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(s))
	}
	return out
}
