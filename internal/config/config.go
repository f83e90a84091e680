// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ik5/ttswav/audio"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "TTSWAV_"

// Config represents the complete ttswav configuration
type Config struct {
	Audio    AudioConfig    `yaml:"audio"`
	Export   ExportConfig   `yaml:"export"`
	Playback PlaybackConfig `yaml:"playback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AudioConfig describes the PCM the TTS service returns
type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
	Channels   int `yaml:"channels"`
}

// ExportConfig controls where WAV downloads are written
type ExportConfig struct {
	Prefix string `yaml:"prefix"`
	Dir    string `yaml:"dir"`
}

// PlaybackConfig controls the audio output device
type PlaybackConfig struct {
	Enabled      bool `yaml:"enabled"`
	BufferMillis int  `yaml:"buffer_ms"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate: audio.DefaultFormat.SampleRate,
			Channels:   audio.DefaultFormat.Channels,
		},
		Export: ExportConfig{
			Prefix: "tts",
			Dir:    ".",
		},
		Playback: PlaybackConfig{
			Enabled:      true,
			BufferMillis: 80,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and TTSWAV_* environment variables, in that order.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// LoadEnv loads .env files into the process environment. Missing files are
// not an error; existing variables are never overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from TTSWAV_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SAMPLE_RATE", &c.Audio.SampleRate},
		{"CHANNELS", &c.Audio.Channels},
		{"PLAYBACK_BUFFER_MS", &c.Playback.BufferMillis},
	}
	for _, e := range ints {
		v, ok := lookup(EnvPrefix + e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, e.key, err)
		}
		*e.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"EXPORT_PREFIX", &c.Export.Prefix},
		{"EXPORT_DIR", &c.Export.Dir},
		{"LOG_LEVEL", &c.Logging.Level},
		{"LOG_FORMAT", &c.Logging.Format},
		{"LOG_OUTPUT", &c.Logging.Output},
	}
	for _, e := range strs {
		if v, ok := lookup(EnvPrefix + e.key); ok {
			*e.dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "PLAYBACK"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sPLAYBACK: %w", EnvPrefix, err)
		}
		c.Playback.Enabled = b
	}

	return nil
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("audio config: %w", err)
	}

	if err := c.Export.Validate(); err != nil {
		return fmt.Errorf("export config: %w", err)
	}

	if err := c.Playback.Validate(); err != nil {
		return fmt.Errorf("playback config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Format is the audio.Format the section describes.
func (a *AudioConfig) Format() audio.Format {
	return audio.NewFormat(a.SampleRate, a.Channels)
}

// Validate validates audio configuration
func (a *AudioConfig) Validate() error {
	return a.Format().Validate()
}

// Validate validates export configuration
func (e *ExportConfig) Validate() error {
	if e.Prefix == "" {
		return fmt.Errorf("prefix cannot be empty")
	}

	if strings.ContainsAny(e.Prefix, `/\`) {
		return fmt.Errorf("prefix cannot contain path separators, got '%s'", e.Prefix)
	}

	if e.Dir == "" {
		return fmt.Errorf("dir cannot be empty")
	}

	return nil
}

// Validate validates playback configuration
func (p *PlaybackConfig) Validate() error {
	if p.BufferMillis < 0 || p.BufferMillis > 1000 {
		return fmt.Errorf("buffer_ms must be between 0 and 1000, got %d", p.BufferMillis)
	}

	return nil
}

// BufferSize returns the device buffer as a time.Duration
func (p *PlaybackConfig) BufferSize() time.Duration {
	return time.Duration(p.BufferMillis) * time.Millisecond
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	if l.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}

	return nil
}
