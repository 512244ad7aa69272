package wave

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

const (
	scalePCMInt8  = 127.5
	scalePCMInt16 = 32768.0
	scalePCMInt24 = 8388608.0
	scalePCMInt32 = 2147483648.0
	centerPCMInt8 = 127.5
)

// sampleDecodeFunc returns the integer PCM decoder for the given bit depth.
// 8-bit samples are unsigned per the WAVE convention; wider samples are
// little-endian two's complement, 24-bit ones sign-extended into the wider
// int.
func sampleDecodeFunc(bitsPerSample int) (func(io.Reader, []byte) (int, error), error) {
	switch bitsPerSample {
	case 8:
		return func(r io.Reader, buf []byte) (int, error) {
			if _, err := io.ReadFull(r, buf[:1]); err != nil {
				return 0, err
			}

			return int(buf[0]), nil
		}, nil
	case 16:
		return func(r io.Reader, buf []byte) (int, error) {
			if _, err := io.ReadFull(r, buf[:2]); err != nil {
				return 0, err
			}

			return int(int16(binary.LittleEndian.Uint16(buf[:2]))), nil
		}, nil
	case 24:
		return func(r io.Reader, buf []byte) (int, error) {
			if _, err := io.ReadFull(r, buf[:3]); err != nil {
				return 0, err
			}

			return int(audio.Int24LETo32(buf[:3])), nil
		}, nil
	case 32:
		return func(r io.Reader, buf []byte) (int, error) {
			if _, err := io.ReadFull(r, buf[:4]); err != nil {
				return 0, err
			}

			return int(int32(binary.LittleEndian.Uint32(buf[:4]))), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitsPerSample, bitsPerSample)
	}
}

// decodeFloat32Sample reads one IEEE-754 single-precision sample, bit-exact.
func decodeFloat32Sample(r io.Reader, buf []byte) (float32, error) {
	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return 0, err
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:4])), nil
}

// sampleDecodeFloat32Func returns a decoder producing samples normalized to
// [-1, 1]: integer PCM is scaled by its bit depth, IEEE float is clamped.
func sampleDecodeFloat32Func(bitsPerSample int, tag FormatTag) (func(io.Reader, []byte) (float32, error), error) {
	if tag == FormatIEEEFloat {
		if bitsPerSample != 32 {
			return nil, fmt.Errorf("%w: %d-bit IEEE float", ErrUnsupportedBitsPerSample, bitsPerSample)
		}

		return func(r io.Reader, buf []byte) (float32, error) {
			v, err := decodeFloat32Sample(r, buf)
			if err != nil {
				return 0, err
			}

			return clampFloat32(v, -1, 1), nil
		}, nil
	}

	if tag != FormatPCM {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormatTag, tag)
	}

	decodeInt, err := sampleDecodeFunc(bitsPerSample)
	if err != nil {
		return nil, err
	}

	return func(r io.Reader, buf []byte) (float32, error) {
		v, err := decodeInt(r, buf)
		if err != nil {
			return 0, err
		}

		return normalizePCMInt(v, bitsPerSample), nil
	}, nil
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

func normalizePCMInt(sample, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32((float64(sample) - centerPCMInt8) / scalePCMInt8)
	case 16:
		return float32(float64(sample) / scalePCMInt16)
	case 24:
		return float32(float64(sample) / scalePCMInt24)
	case 32:
		return float32(float64(sample) / scalePCMInt32)
	default:
		return 0
	}
}

// PCMBuffer fills buf.Data with normalized float32 samples and reports how
// many were written. A count short of len(buf.Data) means the data chunk is
// exhausted; that is not an error.
func (w *Reader) PCMBuffer(buf *audio.Float32Buffer) (int, error) {
	if buf == nil {
		return 0, nil
	}

	buf.Format = w.Format()
	buf.SourceBitDepth = int(w.BitDepth)

	for n := 0; n < len(buf.Data); n++ {
		v, err := w.nextNormSample()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}

			return n, err
		}

		buf.Data[n] = v
	}

	return len(buf.Data), nil
}

// FullPCMBuffer decodes every remaining sample into memory as normalized
// float32 values. Large streams are better served by repeated PCMBuffer
// calls.
func (w *Reader) FullPCMBuffer() (*audio.Float32Buffer, error) {
	buf := &audio.Float32Buffer{
		Format:         w.Format(),
		SourceBitDepth: int(w.BitDepth),
		Data:           make([]float32, 0, w.totalSamples()-w.samplesRead),
	}

	for {
		v, err := w.nextNormSample()
		if errors.Is(err, io.EOF) {
			return buf, nil
		}

		if err != nil {
			return buf, err
		}

		buf.Data = append(buf.Data, v)
	}
}

// DataChunk exposes the raw data chunk positioned at the current sample
// cursor, for callers that want the undecoded payload bytes.
func (w *Reader) DataChunk() *riff.Chunk {
	if w == nil {
		return nil
	}

	return w.data
}
