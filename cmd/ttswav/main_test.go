// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/ttswav/formats/wav"
	"github.com/ik5/ttswav/internal/config"
	"github.com/ik5/ttswav/internal/audiotest"
)

func TestRunConvertAndInspect(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("AAAAQADA\n")

	code := run([]string{"-log-level", "error", "convert", "-out", dir, "-prefix", "speech"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("convert exit %d: %s", code, stderr.String())
	}

	path := strings.TrimSpace(stdout.String())
	if filepath.Dir(path) != dir || !strings.HasPrefix(filepath.Base(path), "speech-") || filepath.Ext(path) != ".wav" {
		t.Fatalf("unexpected output path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != wav.HeaderSize+6 {
		t.Errorf("wav size = %d, want %d", len(data), wav.HeaderSize+6)
	}

	stdout.Reset()
	code = run([]string{"-log-level", "error", "inspect", path}, nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("inspect exit %d: %s", code, stderr.String())
	}

	for _, want := range []string{
		"format:   24000Hz 1ch 16-bit",
		"frames:   3",
		"duration: 125µs",
		"peak:     0.5000",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("inspect output missing %q:\n%s", want, stdout.String())
		}
	}
}

func TestRunInspectRawPCM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "speech.pcm")
	if err := os.WriteFile(path, audiotest.PCM16(0, 0, 16384, -16384), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-log-level", "error", "-rate", "8000", "-channels", "2", "inspect", path}, nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("inspect exit %d: %s", code, stderr.String())
	}

	for _, want := range []string{"8000Hz 2ch 16-bit", "frames:   2", "duration: 250µs"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("inspect output missing %q:\n%s", want, stdout.String())
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "speech.mp3")
	if err := os.WriteFile(unknown, []byte("ID3"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  int
	}{
		{"no command", nil, "", 2},
		{"unknown command", []string{"transcode"}, "", 2},
		{"bad flag", []string{"-nope"}, "", 2},
		{"bad channels", []string{"-channels", "4", "convert", "-out", dir}, "AAAA", 1},
		{"bad base64", []string{"-log-level", "error", "convert", "-out", dir}, "not-valid-base64!!", 1},
		{"missing dir", []string{"-log-level", "error", "convert", "-out", filepath.Join(dir, "missing")}, "AAAA", 1},
		{"unknown extension", []string{"-log-level", "error", "inspect", unknown}, "", 1},
		{"inspect without file", []string{"-log-level", "error", "inspect"}, "", 1},
		{"subcommand help", []string{"convert", "-h"}, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := run(tt.args, strings.NewReader(tt.stdin), &stdout, &stderr); got != tt.want {
				t.Errorf("exit = %d, want %d (stderr: %s)", got, tt.want, stderr.String())
			}
		})
	}
}

func TestInitLogger(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "ttswav.log")

	tests := []struct {
		name       string
		output     string
		wantStdout bool
		wantStderr bool
	}{
		{"stdout", "stdout", true, false},
		{"stderr", "stderr", false, true},
		{"file", logPath, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			logger, closeLog := initLogger(config.LoggingConfig{Level: "info", Format: "json", Output: tt.output}, &stdout, &stderr)

			logger.Info("hello")
			if err := closeLog(); err != nil {
				t.Fatalf("close: %v", err)
			}

			if got := strings.Contains(stdout.String(), `"msg":"hello"`); got != tt.wantStdout {
				t.Errorf("stdout has log = %v, want %v", got, tt.wantStdout)
			}
			if got := strings.Contains(stderr.String(), `"msg":"hello"`); got != tt.wantStderr {
				t.Errorf("stderr has log = %v, want %v", got, tt.wantStderr)
			}
		})
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"service":"ttswav"`) {
		t.Errorf("log file = %q", data)
	}
}
