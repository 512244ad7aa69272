package wave

import (
	"fmt"
	"time"
)

// FormatTag identifies the sample encoding declared by the fmt chunk.
type FormatTag uint16

const (
	// FormatPCM is linear integer PCM: unsigned 8-bit, or signed
	// little-endian two's complement at 16, 24 or 32 bits.
	FormatPCM FormatTag = 1
	// FormatIEEEFloat is 32-bit IEEE-754 floating point.
	FormatIEEEFloat FormatTag = 3

	// formatExtensible is WAVE_FORMAT_EXTENSIBLE, recognized so it can be
	// named in errors but not decoded.
	formatExtensible FormatTag = 0xFFFE
)

// String implements the Stringer interface.
func (t FormatTag) String() string {
	switch t {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case formatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("tag %d", uint16(t))
	}
}

// ChunkInfo records the identity and declared body size of a chunk that was
// skipped while locating the fmt and data chunks. Order in the
// Reader.SkippedChunks slice is stream order.
type ChunkInfo struct {
	ID   [4]byte
	Size uint32
}

func (c ChunkInfo) String() string {
	return fmt.Sprintf("%q (%d bytes)", c.ID[:], c.Size)
}

func framesDuration(frames, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}

	seconds := float64(frames) / float64(sampleRate)

	return time.Duration(seconds * float64(time.Second))
}
