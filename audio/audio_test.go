// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/ttswav/internal/audiotest"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(24000, 1, 10), nil
}

type failingDecoder struct{}

func (failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("mp3"); ok {
		t.Error("Registry.Get() returned ok=true for unregistered format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("pcm", &stubDecoder{name: "first"})
	second := &stubDecoder{name: "second"}
	registry.Register("pcm", second)

	got, _ := registry.Get("pcm")
	if got != second {
		t.Error("Register() did not replace existing decoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &stubDecoder{})
	registry.Register("pcm", failingDecoder{})

	got := registry.Formats()
	slices.Sort(got)
	if !slices.Equal(got, []string{"pcm", "wav"}) {
		t.Errorf("Formats() = %v, want [pcm wav]", got)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	done := make(chan struct{})

	for i := range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			registry.Register(string(rune('a'+i)), &stubDecoder{})
			registry.Get("a")
		}()
	}
	for range 8 {
		<-done
	}

	if n := len(registry.Formats()); n != 8 {
		t.Errorf("len(Formats()) = %d, want 8", n)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(24000, 2, 5000, 0.25)

	got, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 10000 {
		t.Fatalf("len(ReadAll()) = %d, want 10000", len(got))
	}
	for i, v := range got {
		if v != 0.25 {
			t.Fatalf("got[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestReadAll_Empty(t *testing.T) {
	t.Parallel()

	got, err := ReadAll(audiotest.NewSilentSource(24000, 1, 0))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(ReadAll()) = %d, want 0", len(got))
	}
}
