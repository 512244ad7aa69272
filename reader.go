package wave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// Reader decodes PCM sample frames from a RIFF/WAVE byte stream.
//
// NewReader consumes the container framing up to the data payload, so a
// fresh Reader is already positioned on the first sample frame. The source
// is read strictly forward and the sample sequence is not restartable: to
// decode the same stream again, rewind or reopen the source and construct a
// new Reader. A Reader mutates cursor state on every read and is not safe
// for concurrent use.
type Reader struct {
	r io.Reader

	// Fmt is the validated fmt chunk.
	Fmt *Format

	// Convenience copies of the validated format fields.
	NumChans   uint16
	BitDepth   uint16
	SampleRate uint32
	Tag        FormatTag

	// RiffSize is the payload size declared by the RIFF prologue. It is
	// recorded verbatim and never checked against the stream, since a
	// streaming source may not know its total length up front.
	RiffSize uint32
	// PCMSize is the byte size declared by the data chunk header.
	PCMSize int

	// SkippedChunks lists, in stream order, the chunks passed over while
	// locating the fmt and data chunks.
	SkippedChunks []ChunkInfo

	data        *riff.Chunk
	frameCount  int
	samplesRead int

	// Decode functions are selected once, after format validation; the
	// encoding cannot change mid-stream.
	sampleBuf   []byte
	decodeInt   func(io.Reader, []byte) (int, error)
	decodeFloat func(io.Reader, []byte) (float32, error)
	decodeNorm  func(io.Reader, []byte) (float32, error)
}

// NewReader opens a wave stream: it validates the RIFF prologue, locates and
// validates the fmt chunk, and positions the stream at the start of the data
// payload, all in one forward pass. The returned Reader borrows r for its
// lifetime.
func NewReader(r io.Reader) (*Reader, error) {
	w := &Reader{r: r}

	if err := w.readPrologue(); err != nil {
		return nil, err
	}

	if err := w.findFormatChunk(); err != nil {
		return nil, err
	}

	if err := w.findDataChunk(); err != nil {
		return nil, err
	}

	w.NumChans = w.Fmt.NumChannels
	w.BitDepth = w.Fmt.BitsPerSample
	w.SampleRate = w.Fmt.SampleRate
	w.Tag = w.Fmt.Tag

	w.frameCount = w.PCMSize / w.Fmt.BytesPerFrame()
	w.sampleBuf = make([]byte, w.Fmt.BytesPerSample())

	var err error

	if w.Tag == FormatIEEEFloat {
		w.decodeFloat = decodeFloat32Sample
	} else {
		w.decodeInt, err = sampleDecodeFunc(int(w.BitDepth))
		if err != nil {
			return nil, err
		}
	}

	w.decodeNorm, err = sampleDecodeFloat32Func(int(w.BitDepth), w.Tag)
	if err != nil {
		return nil, err
	}

	return w, nil
}

// readPrologue validates the fixed 12-byte RIFF/WAVE prologue. A wrong or
// truncated identifier names which of the two was at fault, so a non-RIFF
// file is distinguishable from a RIFF file that isn't audio.
func (w *Reader) readPrologue() error {
	var hdr [12]byte

	n, err := io.ReadFull(w.r, hdr[:])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("failed to read RIFF prologue: %w", err)
	}

	if !bytes.Equal(hdr[0:4], riff.RiffID[:]) {
		return fmt.Errorf("%w: got %q", ErrInvalidRIFFID, hdr[:min(n, 4)])
	}

	if !bytes.Equal(hdr[8:12], riff.WavFormatID[:]) {
		return fmt.Errorf("%w: got %q", ErrInvalidWAVEID, hdr[8:max(n, 8)])
	}

	w.RiffSize = binary.LittleEndian.Uint32(hdr[4:8])

	return nil
}

// nextChunk reads the next 8-byte chunk header and wraps the body in a
// riff.Chunk limited to the declared size. The declared size excludes the
// RIFF pad byte; drainChunk accounts for it. A clean end of stream at a
// chunk boundary is io.EOF, a partial header is ErrUnexpectedEOF.
func (w *Reader) nextChunk() (*riff.Chunk, error) {
	var hdr [8]byte

	n, err := io.ReadFull(w.r, hdr[:])
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	if err != nil {
		return nil, fmt.Errorf("%w: chunk header cut short at %d byte(s)", ErrUnexpectedEOF, n)
	}

	var id [4]byte
	copy(id[:], hdr[:4])

	size := binary.LittleEndian.Uint32(hdr[4:8])

	return &riff.Chunk{
		ID:   id,
		Size: int(size),
		R:    io.LimitReader(w.r, int64(size)),
	}, nil
}

// drainChunk consumes the unread remainder of a chunk body, plus the one pad
// byte RIFF requires after odd-sized bodies. The pad byte belongs to no
// chunk's logical content.
func (w *Reader) drainChunk(chunk *riff.Chunk) error {
	if rem := int64(chunk.Size - chunk.Pos); rem > 0 {
		if _, err := io.CopyN(io.Discard, chunk.R, rem); err != nil {
			return fmt.Errorf("%w: %q chunk body", ErrUnexpectedEOF, chunk.ID[:])
		}
	}

	if chunk.Size%2 != 0 {
		if _, err := io.CopyN(io.Discard, w.r, 1); err != nil {
			return fmt.Errorf("%w: %q chunk padding", ErrUnexpectedEOF, chunk.ID[:])
		}
	}

	return nil
}

func (w *Reader) findFormatChunk() error {
	for {
		chunk, err := w.nextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w after %d chunk(s)", ErrMissingFormatChunk, len(w.SkippedChunks))
			}

			return err
		}

		if chunk.ID == riff.FmtID {
			w.Fmt, err = decodeFormatChunk(chunk)
			if err != nil {
				return err
			}

			// fmt bodies larger than 16 bytes carry extension data this
			// reader does not interpret.
			return w.drainChunk(chunk)
		}

		w.SkippedChunks = append(w.SkippedChunks, ChunkInfo{ID: chunk.ID, Size: uint32(chunk.Size)})

		if err := w.drainChunk(chunk); err != nil {
			return err
		}
	}
}

func (w *Reader) findDataChunk() error {
	for {
		chunk, err := w.nextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w after %d chunk(s)", ErrMissingDataChunk, len(w.SkippedChunks))
			}

			return err
		}

		if chunk.ID == riff.DataFormatID {
			w.PCMSize = chunk.Size
			w.data = chunk

			return nil
		}

		w.SkippedChunks = append(w.SkippedChunks, ChunkInfo{ID: chunk.ID, Size: uint32(chunk.Size)})

		if err := w.drainChunk(chunk); err != nil {
			return err
		}
	}
}

// NumFrames returns the number of complete, accessible sample frames in the
// data chunk. A trailing partial frame is never surfaced; see TrailingBytes.
func (w *Reader) NumFrames() int {
	if w == nil {
		return 0
	}

	return w.frameCount
}

// TrailingBytes returns how many bytes at the end of the data chunk do not
// form a complete frame. Some encoders round the size field imprecisely;
// those bytes are recorded here rather than treated as an error.
func (w *Reader) TrailingBytes() int {
	if w == nil || w.Fmt == nil {
		return 0
	}

	return w.PCMSize % w.Fmt.BytesPerFrame()
}

// Duration returns the playable length of the accessible frames.
func (w *Reader) Duration() time.Duration {
	if w == nil || w.Fmt == nil {
		return 0
	}

	return framesDuration(w.frameCount, int(w.SampleRate))
}

// Format returns the stream description in go-audio terms.
func (w *Reader) Format() *audio.Format {
	if w == nil || w.Fmt == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(w.NumChans),
		SampleRate:  int(w.SampleRate),
	}
}

// WaveFormat returns a copy of the validated fmt chunk contents.
func (w *Reader) WaveFormat() *Format {
	if w == nil || w.Fmt == nil {
		return nil
	}

	out := *w.Fmt

	return &out
}

// String implements the Stringer interface.
func (w *Reader) String() string {
	if w == nil || w.Fmt == nil {
		return "wave: no format"
	}

	return fmt.Sprintf("%s - %d channel(s), %d Hz @ %d bits, %d frame(s)",
		w.Tag, w.NumChans, w.SampleRate, w.BitDepth, w.frameCount)
}

func (w *Reader) totalSamples() int {
	return w.frameCount * int(w.NumChans)
}

func (w *Reader) remainingFrames() int {
	return (w.totalSamples() - w.samplesRead) / int(w.NumChans)
}

func (w *Reader) shortReadErr(err error) error {
	return fmt.Errorf("%w: sample %d of %d: %v",
		ErrUnexpectedEOF, w.samplesRead, w.totalSamples(), err)
}

func (w *Reader) nextIntSample() (int, error) {
	if w.samplesRead >= w.totalSamples() {
		return 0, io.EOF
	}

	v, err := w.decodeInt(w.data, w.sampleBuf)
	if err != nil {
		return 0, w.shortReadErr(err)
	}

	w.samplesRead++

	return v, nil
}

func (w *Reader) nextFloatSample() (float32, error) {
	if w.samplesRead >= w.totalSamples() {
		return 0, io.EOF
	}

	v, err := w.decodeFloat(w.data, w.sampleBuf)
	if err != nil {
		return 0, w.shortReadErr(err)
	}

	w.samplesRead++

	return v, nil
}

func (w *Reader) nextNormSample() (float32, error) {
	if w.samplesRead >= w.totalSamples() {
		return 0, io.EOF
	}

	v, err := w.decodeNorm(w.data, w.sampleBuf)
	if err != nil {
		return 0, w.shortReadErr(err)
	}

	w.samplesRead++

	return v, nil
}

// ReadFrame returns the next frame of integer PCM samples in interleaved
// channel order. 8-bit samples are unsigned (0..255); 16, 24 and 32-bit
// samples are sign-extended little-endian two's complement. Exhaustion is
// reported as io.EOF and every later call keeps returning io.EOF; a stream
// that ends mid-frame is ErrUnexpectedEOF instead.
func (w *Reader) ReadFrame() ([]int, error) {
	if w.Tag != FormatPCM {
		return nil, fmt.Errorf("%w: stream holds %s samples", ErrSampleFormatMismatch, w.Tag)
	}

	if w.remainingFrames() == 0 {
		return nil, io.EOF
	}

	frame := make([]int, w.NumChans)
	for i := range frame {
		v, err := w.nextIntSample()
		if err != nil {
			return nil, err
		}

		frame[i] = v
	}

	return frame, nil
}

// ReadFloatFrame returns the next frame of IEEE float samples in interleaved
// channel order, bit-exact and unclamped. Exhaustion is io.EOF, as for
// ReadFrame.
func (w *Reader) ReadFloatFrame() ([]float32, error) {
	if w.Tag != FormatIEEEFloat {
		return nil, fmt.Errorf("%w: stream holds %s samples", ErrSampleFormatMismatch, w.Tag)
	}

	if w.remainingFrames() == 0 {
		return nil, io.EOF
	}

	frame := make([]float32, w.NumChans)
	for i := range frame {
		v, err := w.nextFloatSample()
		if err != nil {
			return nil, err
		}

		frame[i] = v
	}

	return frame, nil
}

// ReadUint8 returns the next sample of an 8-bit PCM stream.
func (w *Reader) ReadUint8() (uint8, error) {
	if w.Tag != FormatPCM || w.BitDepth != 8 {
		return 0, w.sampleMismatchErr()
	}

	v, err := w.nextIntSample()
	if err != nil {
		return 0, err
	}

	return uint8(v), nil
}

// ReadInt16 returns the next sample of a 16-bit PCM stream.
func (w *Reader) ReadInt16() (int16, error) {
	if w.Tag != FormatPCM || w.BitDepth != 16 {
		return 0, w.sampleMismatchErr()
	}

	v, err := w.nextIntSample()
	if err != nil {
		return 0, err
	}

	return int16(v), nil
}

// ReadInt24 returns the next sample of a 24-bit PCM stream, sign-extended
// into an int32.
func (w *Reader) ReadInt24() (int32, error) {
	if w.Tag != FormatPCM || w.BitDepth != 24 {
		return 0, w.sampleMismatchErr()
	}

	v, err := w.nextIntSample()
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

// ReadInt32 returns the next sample of a 32-bit integer PCM stream.
func (w *Reader) ReadInt32() (int32, error) {
	if w.Tag != FormatPCM || w.BitDepth != 32 {
		return 0, w.sampleMismatchErr()
	}

	v, err := w.nextIntSample()
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

// ReadFloat32 returns the next sample of a 32-bit IEEE float stream,
// bit-exact and unclamped.
func (w *Reader) ReadFloat32() (float32, error) {
	if w.Tag != FormatIEEEFloat {
		return 0, w.sampleMismatchErr()
	}

	return w.nextFloatSample()
}

func (w *Reader) sampleMismatchErr() error {
	return fmt.Errorf("%w: stream holds %d-bit %s samples", ErrSampleFormatMismatch, w.BitDepth, w.Tag)
}
