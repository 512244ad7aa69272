// Package wave reads uncompressed PCM audio out of RIFF/WAVE streams.
//
// A Reader consumes a sequential io.Reader in a single forward pass: it
// checks the RIFF/WAVE prologue, walks the chunk sequence until the fmt
// chunk, validates the declared sample encoding, and stops at the start of
// the data payload. Samples are then pulled one frame at a time (ReadFrame,
// ReadFloatFrame), one value at a time (ReadUint8 through ReadFloat32), or
// in bulk as normalized float32 buffers (PCMBuffer, FullPCMBuffer).
//
// Supported encodings are 8-bit unsigned, 16/24/32-bit signed little-endian
// integer PCM, and 32-bit IEEE float. Normal exhaustion of the data chunk is
// reported as io.EOF; malformed or truncated streams fail with the sentinel
// errors declared in this package, each carrying what was actually found.
//
// No seeking is performed: unwanted chunks are skipped by consuming their
// bytes, so the reader composes with pipes and network streams as well as
// files.
package wave
