package wave

import "errors"

// Errors reported while opening and reading a wave stream. All of them are
// terminal for the Reader instance that returned them: malformed framing
// cannot be fixed by re-reading. Call sites wrap these with the offending
// bytes or position, so match with errors.Is.
var (
	// ErrInvalidRIFFID is returned when the stream does not start with the
	// four ASCII bytes "RIFF".
	ErrInvalidRIFFID = errors.New("not a RIFF stream")
	// ErrInvalidWAVEID is returned when a RIFF stream does not carry the
	// "WAVE" form identifier, i.e. it is a RIFF container but not audio.
	ErrInvalidWAVEID = errors.New("not a WAVE stream")
	// ErrMissingFormatChunk is returned when the stream ends before a fmt
	// chunk is found.
	ErrMissingFormatChunk = errors.New("no fmt chunk before end of stream")
	// ErrMissingDataChunk is returned when the stream ends before a data
	// chunk is found.
	ErrMissingDataChunk = errors.New("no data chunk before end of stream")
	// ErrUnsupportedFormatTag is returned for any format tag other than
	// integer PCM (1) or IEEE float (3), including WAVE_FORMAT_EXTENSIBLE.
	ErrUnsupportedFormatTag = errors.New("unsupported format tag")
	// ErrUnsupportedBitsPerSample is returned for bit depths other than
	// 8, 16, 24 or 32, and for IEEE float at any depth other than 32.
	ErrUnsupportedBitsPerSample = errors.New("unsupported bits per sample")
	// ErrInvalidChannelCount is returned when the fmt chunk declares zero
	// channels.
	ErrInvalidChannelCount = errors.New("invalid channel count")
	// ErrInvalidSampleRate is returned when the fmt chunk declares a zero
	// sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	// ErrInconsistentBlockAlign is returned when the declared block align
	// disagrees with channels * bits / 8, which indicates corruption or a
	// layout this reader cannot decode safely.
	ErrInconsistentBlockAlign = errors.New("block align inconsistent with channels and bit depth")
	// ErrUnexpectedEOF is returned when the stream ends in the middle of a
	// structure: a chunk header, a chunk body being skipped, or a sample
	// frame. It is distinct from io.EOF, which signals normal exhaustion of
	// the data chunk.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")
	// ErrSampleFormatMismatch is returned by the typed sample reads when the
	// requested representation does not match the validated format.
	ErrSampleFormatMismatch = errors.New("sample type does not match the wave format")

	errNilChunk = errors.New("nil chunk pointer")
)
