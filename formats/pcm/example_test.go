// SPDX-License-Identifier: EPL-2.0

package pcm_test

import (
	"fmt"

	"github.com/ik5/ttswav/audio"
	"github.com/ik5/ttswav/formats/pcm"
)

// ExampleMaterialize splits a stereo payload into its two channels.
func ExampleMaterialize() {
	// int16 LE: 0, 32767, -32768, -1
	data := []byte{0x00, 0x00, 0xFF, 0x7F, 0x00, 0x80, 0xFF, 0xFF}

	buf, err := pcm.Materialize(data, audio.NewFormat(24000, 2))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("left:  %.6f\n", buf.Channel(0))
	fmt.Printf("right: %.6f\n", buf.Channel(1))
	// Output:
	// left:  [0.000000 -1.000000]
	// right: [0.999969 -0.000031]
}

// ExampleMaterialize_truncation shows that a partial trailing frame is dropped.
func ExampleMaterialize_truncation() {
	data := []byte{0x00, 0x40, 0x00, 0xC0, 0x01}

	buf, _ := pcm.Materialize(data, audio.DefaultFormat)

	fmt.Println("samples:", buf.NumFrames())
	fmt.Println("dropped bytes:", pcm.Trailing(data, audio.DefaultFormat))
	fmt.Println(buf.Channel(0))
	// Output:
	// samples: 2
	// dropped bytes: 1
	// [0.5 -0.5]
}
