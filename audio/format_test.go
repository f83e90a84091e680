// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
	"time"
)

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"default", DefaultFormat, false},
		{"stereo 48k", NewFormat(48000, 2), false},
		{"zero rate", NewFormat(0, 1), true},
		{"negative rate", NewFormat(-8000, 1), true},
		{"zero channels", NewFormat(24000, 0), true},
		{"three channels", NewFormat(24000, 3), true},
		{"8-bit", Format{SampleRate: 8000, Channels: 1, BitsPerSample: 8}, true},
		{"missing bit depth", Format{SampleRate: 8000, Channels: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.format.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFormat) {
				t.Errorf("Validate() error = %v, want ErrFormat", err)
			}
		})
	}
}

func TestFormat_Derived(t *testing.T) {
	t.Parallel()

	f := NewFormat(24000, 2)

	if got := f.BlockAlign(); got != 4 {
		t.Errorf("BlockAlign() = %d, want 4", got)
	}
	if got := f.ByteRate(); got != 96000 {
		t.Errorf("ByteRate() = %d, want 96000", got)
	}
	if got := f.Frames(10); got != 2 {
		t.Errorf("Frames(10) = %d, want 2", got)
	}
	if got := f.Duration(96000); got != time.Second {
		t.Errorf("Duration(96000) = %v, want 1s", got)
	}
	if got := f.String(); got != "24000Hz 2ch 16-bit" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormat_ZeroValue(t *testing.T) {
	t.Parallel()

	var f Format
	if f.Frames(100) != 0 {
		t.Error("Frames() on zero Format should be 0")
	}
	if f.Duration(100) != 0 {
		t.Error("Duration() on zero Format should be 0")
	}
}
