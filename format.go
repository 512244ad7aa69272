package wave

import (
	"fmt"

	"github.com/go-audio/riff"
)

// Format holds the validated contents of the fmt chunk. It is immutable once
// decoded; the Reader keeps one copy for its lifetime since the encoding
// cannot change mid-stream.
type Format struct {
	Tag            FormatTag
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// BytesPerSample returns the storage size of one sample value.
func (f *Format) BytesPerSample() int {
	if f == nil {
		return 0
	}

	return int(f.BitsPerSample) / 8
}

// BytesPerFrame returns the storage size of one frame, one sample per
// channel. It always equals the validated block align.
func (f *Format) BytesPerFrame() int {
	if f == nil {
		return 0
	}

	return f.BytesPerSample() * int(f.NumChannels)
}

// decodeFormatChunk decodes and validates the first 16 bytes of the fmt
// chunk body. Larger bodies (fmt extensions) are permitted; the extension
// bytes are left in the chunk for the caller to drain.
func decodeFormatChunk(chunk *riff.Chunk) (*Format, error) {
	if chunk == nil {
		return nil, errNilChunk
	}

	f := &Format{}

	var tag uint16
	if err := chunk.ReadLE(&tag); err != nil {
		return nil, fmt.Errorf("%w: fmt chunk format tag", ErrUnexpectedEOF)
	}

	f.Tag = FormatTag(tag)
	if f.Tag != FormatPCM && f.Tag != FormatIEEEFloat {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormatTag, f.Tag)
	}

	if err := chunk.ReadLE(&f.NumChannels); err != nil {
		return nil, fmt.Errorf("%w: fmt chunk channel count", ErrUnexpectedEOF)
	}

	if f.NumChannels == 0 {
		return nil, fmt.Errorf("%w: 0 channels", ErrInvalidChannelCount)
	}

	if err := chunk.ReadLE(&f.SampleRate); err != nil {
		return nil, fmt.Errorf("%w: fmt chunk sample rate", ErrUnexpectedEOF)
	}

	if f.SampleRate == 0 {
		return nil, fmt.Errorf("%w: 0 Hz", ErrInvalidSampleRate)
	}

	// The byte-rate field is derivable from the other fields, so it is
	// recorded but not validated.
	if err := chunk.ReadLE(&f.AvgBytesPerSec); err != nil {
		return nil, fmt.Errorf("%w: fmt chunk byte rate", ErrUnexpectedEOF)
	}

	if err := chunk.ReadLE(&f.BlockAlign); err != nil {
		return nil, fmt.Errorf("%w: fmt chunk block align", ErrUnexpectedEOF)
	}

	if err := chunk.ReadLE(&f.BitsPerSample); err != nil {
		return nil, fmt.Errorf("%w: fmt chunk bit depth", ErrUnexpectedEOF)
	}

	switch f.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitsPerSample, f.BitsPerSample)
	}

	if f.Tag == FormatIEEEFloat && f.BitsPerSample != 32 {
		return nil, fmt.Errorf("%w: %d-bit IEEE float", ErrUnsupportedBitsPerSample, f.BitsPerSample)
	}

	if want := int(f.NumChannels) * int(f.BitsPerSample) / 8; int(f.BlockAlign) != want {
		return nil, fmt.Errorf("%w: declared %d, expected %d", ErrInconsistentBlockAlign, f.BlockAlign, want)
	}

	return f, nil
}
