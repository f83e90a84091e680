// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ik5/ttswav/audio"
	"github.com/ik5/ttswav/formats/wav"
)

func ExampleEncode() {
	// four mono samples at 24kHz
	data := []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0xC0, 0xFF, 0x7F}

	blob, err := wav.Encode(data, audio.DefaultFormat)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("size:", len(blob))
	fmt.Println("riff:", binary.LittleEndian.Uint32(blob[4:8]))
	fmt.Println("data:", blob.DataLen())
	fmt.Println("type:", blob.MIMEType())
	// Output:
	// size: 52
	// riff: 44
	// data: 8
	// type: audio/wav
}

func ExampleFilename() {
	fmt.Println(wav.Filename("speech", time.UnixMilli(1700000000000)))
	// Output: speech-1700000000000.wav
}

func ExampleInspect() {
	blob, _ := wav.Encode(make([]byte, 48000), audio.DefaultFormat)

	info, err := wav.Inspect(bytes.NewReader(blob))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(info.Format, info.DataLen, info.Duration)
	// Output: 24000Hz 1ch 16-bit 48000 1s
}
