package inlinestr

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// A block stores one column of same-capacity values:
//
//	[magic:4]["ISB1"]
//	[capacity:4]  byte width of every record
//	[count:4]     number of records
//	[payload:4]   length of the compressed payload
//	[payload]     zstd frame of count*capacity raw records
//
// Header integers are big-endian, matching the record layout.
const (
	blockMagic      = "ISB1"
	blockHeaderSize = 16

	// maxBlockBytes caps the raw records of one block.
	maxBlockBytes = 1 << 30
)

var (
	blockEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	blockDecoder, _ = zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(maxBlockBytes))
)

// payloadBound is a generous upper bound on the zstd frame for raw bytes of
// input: frame overhead plus three bytes per 128 KiB block of stored data.
func payloadBound(raw uint64) uint64 {
	return raw + raw>>10 + 64
}

// WriteBlock writes values as one compressed block.
func WriteBlock[L Lanes](w io.Writer, values []Str[L]) (int64, error) {
	var zero Str[L]
	size := int(zero.Capacity())
	if uint64(len(values))*uint64(size) > maxBlockBytes {
		return 0, fmt.Errorf("%w: %d records of %s exceed one block", ErrInputTooLong, len(values), zero.Capacity())
	}
	raw := make([]byte, 0, len(values)*size)
	for _, v := range values {
		raw, _ = v.AppendBinary(raw)
	}
	payload := blockEncoder.EncodeAll(raw, nil)

	var hdr [blockHeaderSize]byte
	copy(hdr[:4], blockMagic)
	binary.BigEndian.PutUint32(hdr[4:], uint32(size))
	binary.BigEndian.PutUint32(hdr[8:], uint32(len(values)))
	binary.BigEndian.PutUint32(hdr[12:], uint32(len(payload)))

	var written int64
	n, err := w.Write(hdr[:])
	written += int64(n)
	if err != nil {
		return written, err
	}
	n, err = w.Write(payload)
	written += int64(n)
	return written, err
}

// ReadBlock reads one block written by WriteBlock for the same capacity.
// A block of another capacity fails with ErrTypeMismatch.
func ReadBlock[L Lanes](r io.Reader) ([]Str[L], error) {
	var hdr [blockHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("reading block header: %w", err)
	}
	if string(hdr[:4]) != blockMagic {
		return nil, fmt.Errorf("%w: bad block magic %q", ErrMalformed, hdr[:4])
	}
	var zero Str[L]
	size := int(zero.Capacity())
	if c := Capacity(binary.BigEndian.Uint32(hdr[4:])); c != zero.Capacity() {
		return nil, fmt.Errorf("%w: block holds %s, want %s", ErrTypeMismatch, c, zero.Capacity())
	}
	count := uint64(binary.BigEndian.Uint32(hdr[8:]))
	rawLen := count * uint64(size)
	if rawLen > maxBlockBytes {
		return nil, fmt.Errorf("%w: %d records of %s exceed one block", ErrMalformed, count, zero.Capacity())
	}
	payloadLen := uint64(binary.BigEndian.Uint32(hdr[12:]))
	if payloadLen > payloadBound(rawLen) {
		return nil, fmt.Errorf("%w: payload of %d bytes for %d raw bytes", ErrMalformed, payloadLen, rawLen)
	}

	payload, err := io.ReadAll(io.LimitReader(r, int64(payloadLen)))
	if err != nil {
		return nil, fmt.Errorf("reading block payload: %w", err)
	}
	if uint64(len(payload)) != payloadLen {
		return nil, fmt.Errorf("reading block payload: %w", io.ErrUnexpectedEOF)
	}

	var raw []byte
	if len(payload) > 0 {
		if raw, err = blockDecoder.DecodeAll(payload, nil); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	if uint64(len(raw)) != rawLen {
		return nil, fmt.Errorf("%w: payload holds %d bytes, want %d", ErrMalformed, len(raw), rawLen)
	}

	out := make([]Str[L], count)
	for i := range out {
		if err := out[i].UnmarshalBinary(raw[i*size : (i+1)*size]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return out, nil
}
