package wave

import (
	"bytes"
	"encoding/binary"
	"math"
)

type testChunk struct {
	id   string
	body []byte
}

// buildWave assembles a RIFF/WAVE byte image from the given chunks, writing
// the pad byte after odd-sized bodies the way a conforming encoder would.
func buildWave(chunks ...testChunk) []byte {
	var body bytes.Buffer

	for _, c := range chunks {
		body.WriteString(c.id)

		var size [4]byte
		binary.LittleEndian.PutUint32(size[:], uint32(len(c.body)))
		body.Write(size[:])
		body.Write(c.body)

		if len(c.body)%2 == 1 {
			body.WriteByte(0)
		}
	}

	var out bytes.Buffer

	out.WriteString("RIFF")

	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(4+body.Len()))
	out.Write(size[:])

	out.WriteString("WAVE")
	out.Write(body.Bytes())

	return out.Bytes()
}

// fmtBody builds a canonical 16-byte fmt chunk body with a consistent byte
// rate and block align derived from the other fields.
func fmtBody(tag, channels uint16, sampleRate uint32, bits uint16) []byte {
	blockAlign := channels * bits / 8

	return fmtBodyRaw(tag, channels, sampleRate, blockAlign, bits)
}

// fmtBodyRaw builds a 16-byte fmt chunk body with full control over the
// declared block align, for corruption tests.
func fmtBodyRaw(tag, channels uint16, sampleRate uint32, blockAlign, bits uint16) []byte {
	buf := make([]byte, 16)

	binary.LittleEndian.PutUint16(buf[0:2], tag)
	binary.LittleEndian.PutUint16(buf[2:4], channels)
	binary.LittleEndian.PutUint32(buf[4:8], sampleRate)
	binary.LittleEndian.PutUint32(buf[8:12], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(buf[12:14], blockAlign)
	binary.LittleEndian.PutUint16(buf[14:16], bits)

	return buf
}

func int16LEBytes(samples ...int16) []byte {
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}

	return buf
}

func int32LEBytes(samples ...int32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(s))
	}

	return buf
}

func float32LEBytes(samples ...float32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(s))
	}

	return buf
}

func int24LEBytes(samples ...int32) []byte {
	buf := make([]byte, 3*len(samples))
	for i, s := range samples {
		buf[3*i] = byte(s)
		buf[3*i+1] = byte(s >> 8)
		buf[3*i+2] = byte(s >> 16)
	}

	return buf
}
