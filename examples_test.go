package wave

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
)

func ExampleNewReader() {
	stream := bytes.NewReader(buildWave(
		testChunk{id: "fmt ", body: fmtBody(1, 2, 44100, 16)},
		testChunk{id: "data", body: int16LEBytes(0, 0, -32768, 32767)},
	))

	w, err := NewReader(stream)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(w)
	// Output: PCM - 2 channel(s), 44100 Hz @ 16 bits, 2 frame(s)
}

func ExampleReader_ReadFrame() {
	stream := bytes.NewReader(buildWave(
		testChunk{id: "fmt ", body: fmtBody(1, 2, 44100, 16)},
		testChunk{id: "data", body: int16LEBytes(1, -1, 32767, -32768)},
	))

	w, err := NewReader(stream)
	if err != nil {
		log.Fatal(err)
	}

	for {
		frame, err := w.ReadFrame()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(frame)
	}
	// Output:
	// [1 -1]
	// [32767 -32768]
}
