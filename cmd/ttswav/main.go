// SPDX-License-Identifier: EPL-2.0

// Command ttswav converts base64 PCM from TTS responses into WAV files,
// plays it, and inspects exported files.
//
//	ttswav [-config file] [-rate hz] [-channels n] [-log-level l] convert [-in file] [-out dir] [-prefix p]
//	ttswav [global flags] play [-in file]
//	ttswav [global flags] inspect file.{wav|pcm}
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ik5/ttswav"
	"github.com/ik5/ttswav/audio"
	"github.com/ik5/ttswav/formats/pcm"
	"github.com/ik5/ttswav/formats/wav"
	"github.com/ik5/ttswav/internal/config"
	"github.com/ik5/ttswav/playback"
)

const usage = `usage: ttswav [-config file] [-rate hz] [-channels n] [-log-level level] <command> [args]

commands:
  convert [-in file] [-out dir] [-prefix p]   base64 PCM to a WAV file
  play [-in file]                             base64 PCM to the speakers
  inspect file.{wav|pcm}                      print format and duration
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type app struct {
	cfg    *config.Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ttswav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	configPath := fs.String("config", "", "Path to configuration file")
	rate := fs.Int("rate", 0, "Sample rate of the PCM in Hz")
	channels := fs.Int("channels", 0, "Channel count of the PCM (1 or 2)")
	level := fs.String("log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(stderr, "Failed to load environment: %v\n", err)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rate":
			cfg.Audio.SampleRate = *rate
		case "channels":
			cfg.Audio.Channels = *channels
		case "log-level":
			cfg.Logging.Level = *level
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	logger, closeLog := initLogger(cfg.Logging, stdout, stderr)
	defer closeLog()

	a := &app{
		cfg:    cfg,
		log:    logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
	}
	prev := slog.Default()
	slog.SetDefault(a.log)
	defer slog.SetDefault(prev)

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "convert":
		err = a.convert(rest)
	case "play":
		err = a.play(rest)
	case "inspect":
		err = a.inspect(rest)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		fs.Usage()
		return 2
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		a.log.Error("command failed", slog.String("command", cmd), slog.String("error", err.Error()))
		return 1
	}

	return 0
}

func (a *app) readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}

func (a *app) convert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	in := fs.String("in", "", "File holding the base64 response (default stdin)")
	out := fs.String("out", a.cfg.Export.Dir, "Directory to write the WAV file to")
	prefix := fs.String("prefix", a.cfg.Export.Prefix, "File name prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	encoded, err := a.readInput(*in)
	if err != nil {
		return err
	}

	p := &ttswav.Pipeline{Logger: a.log}
	res, err := p.Process(encoded, a.cfg.Audio.Format())
	if err != nil {
		return err
	}

	name := filepath.Join(*out, wav.Filename(*prefix, a.now()))
	if err := os.WriteFile(name, res.WAV, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	a.log.Info("wav exported",
		slog.String("path", name),
		slog.String("id", res.ID.String()),
		slog.Int("bytes", len(res.WAV)),
		slog.Duration("duration", res.Duration()),
	)
	fmt.Fprintln(a.stdout, name)

	return nil
}

func (a *app) play(args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	in := fs.String("in", "", "File holding the base64 response (default stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !a.cfg.Playback.Enabled {
		return fmt.Errorf("%w: playback disabled in configuration", audio.ErrResource)
	}

	encoded, err := a.readInput(*in)
	if err != nil {
		return err
	}

	out := playback.Shared(
		playback.WithLogger(a.log),
		playback.WithBufferSize(a.cfg.Playback.BufferSize()),
	)
	p := &ttswav.Pipeline{Output: out, Logger: a.log}

	res, err := p.Process(encoded, a.cfg.Audio.Format())
	if err != nil {
		return err
	}

	h, err := p.Play(res)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.log.Info("playing", slog.Duration("duration", h.Duration()))
	if err := h.Wait(ctx); err != nil {
		h.Stop()
		return err
	}

	return nil
}

func (a *app) inspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("inspect: expected one file, got %d", len(args))
	}
	path := args[0]

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("pcm", pcm.Decoder{Format: a.cfg.Audio.Format()})

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := reg.Get(ext)
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", audio.ErrFormat, ext, strings.Join(reg.Formats(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	samples, err := audio.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	format := audio.NewFormat(src.SampleRate(), src.Channels())
	frames := len(samples) / src.Channels()

	var peak float64
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(float64(s)))
	}

	fmt.Fprintf(a.stdout, "file:     %s\n", path)
	fmt.Fprintf(a.stdout, "format:   %s\n", format)
	fmt.Fprintf(a.stdout, "frames:   %d\n", frames)
	fmt.Fprintf(a.stdout, "duration: %s\n", format.Duration(frames*format.BlockAlign()))
	fmt.Fprintf(a.stdout, "peak:     %.4f\n", peak)

	return nil
}

// initLogger builds the logger described by cfg. The returned func closes the
// log file, if one was opened.
func initLogger(cfg config.LoggingConfig, stdout, stderr io.Writer) (*slog.Logger, func() error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var output io.Writer
	closer := func() error { return nil }
	switch cfg.Output {
	case "stderr", "":
		output = stderr
	case "stdout":
		output = stdout
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log file %s: %v, falling back to stderr\n", cfg.Output, err)
			output = stderr
		} else {
			output = file
			closer = file.Close
		}
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler).With(slog.String("service", "ttswav")), closer
}
