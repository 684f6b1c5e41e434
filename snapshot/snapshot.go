// Package snapshot stores engine states in a compact checksummed binary
// frame:
//
//	"BGST0001" | codec (1 byte) | uvarint raw size | body | xxhash64(raw)
//
// The raw body is the binary form of a bitgen.State. The body is the raw
// body compressed with codec.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/moontrade/bitgen"
	"github.com/moontrade/bitgen/logger"
)

const signature = "BGST0001"

// MaxRawSize bounds the decoded body size accepted by Decode.
const MaxRawSize = 1 << 20

var (
	ErrSignature          = errors.New("invalid snapshot signature")
	ErrCorrupt            = errors.New("corrupt snapshot")
	ErrUnknownCompression = errors.New("unknown compression")
)

const (
	flagHasUint32 = 1 << iota
	flagBuffer
)

// Encode frames s compressed with codec.
func Encode(s bitgen.State, codec Codec) ([]byte, error) {
	raw := appendState(make([]byte, 0, rawSizeHint(s)), s)
	used, body, err := compress(codec, raw)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(signature)+1+binary.MaxVarintLen64+len(body)+8)
	out = append(out, signature...)
	out = append(out, byte(used))
	out = appendUvarint(out, uint64(len(raw)))
	out = append(out, body...)
	out = binary.LittleEndian.AppendUint64(out, xxhash.Sum64(raw))
	logger.Trace("algorithm", s.Algorithm, "codec", used.String(),
		"raw", len(raw), "size", len(out), "snapshot encoded")
	return out, nil
}

// Decode parses a frame produced by Encode.
func Decode(data []byte) (bitgen.State, error) {
	if len(data) < len(signature)+1+1+8 {
		return bitgen.State{}, fmt.Errorf("%w: %d bytes", ErrCorrupt, len(data))
	}
	if string(data[:len(signature)]) != signature {
		return bitgen.State{}, ErrSignature
	}
	data = data[len(signature):]
	codec := Codec(data[0])
	data = data[1:]
	size, n := binary.Uvarint(data)
	if n <= 0 || size > MaxRawSize {
		return bitgen.State{}, fmt.Errorf("%w: bad raw size", ErrCorrupt)
	}
	data = data[n:]
	if len(data) < 8 {
		return bitgen.State{}, fmt.Errorf("%w: missing checksum", ErrCorrupt)
	}
	body, sum := data[:len(data)-8], binary.LittleEndian.Uint64(data[len(data)-8:])

	raw, err := decompress(codec, body, int(size))
	if err != nil {
		return bitgen.State{}, err
	}
	if xxhash.Sum64(raw) != sum {
		return bitgen.State{}, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}
	return readState(raw)
}

// Write encodes s and writes the frame to w.
func Write(w io.Writer, s bitgen.State, codec Codec) error {
	frame, err := Encode(s, codec)
	if err != nil {
		return err
	}
	_, err = w.Write(frame)
	return err
}

// Read reads one frame from r until EOF.
func Read(r io.Reader) (bitgen.State, error) {
	data, err := io.ReadAll(io.LimitReader(r, 2*MaxRawSize))
	if err != nil {
		return bitgen.State{}, err
	}
	return Decode(data)
}

func rawSizeHint(s bitgen.State) int {
	return 32 + len(s.Algorithm) + 8*(len(s.Words)+len(s.Aux.Buffer))
}

func appendUvarint(dst []byte, x uint64) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], x)
	return append(dst, buf[:n]...)
}

func appendState(dst []byte, s bitgen.State) []byte {
	dst = appendUvarint(dst, uint64(len(s.Algorithm)))
	dst = append(dst, s.Algorithm...)
	dst = appendUvarint(dst, uint64(len(s.Words)))
	for _, w := range s.Words {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}

	var flags byte
	if s.Aux.HasUint32 {
		flags |= flagHasUint32
	}
	if s.Aux.Buffer != nil {
		flags |= flagBuffer
	}
	dst = append(dst, flags)
	dst = binary.LittleEndian.AppendUint32(dst, s.Aux.Uinteger)
	dst = binary.AppendVarint(dst, int64(s.Aux.Index))
	dst = binary.AppendVarint(dst, int64(s.Aux.BufferLoc))
	if s.Aux.Buffer != nil {
		dst = appendUvarint(dst, uint64(len(s.Aux.Buffer)))
		for _, w := range s.Aux.Buffer {
			dst = binary.LittleEndian.AppendUint64(dst, w)
		}
	}
	return dst
}

// reader walks a raw body. The first failure sticks.
type reader struct {
	b   []byte
	err error
}

func (r *reader) fail(what string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: truncated %s", ErrCorrupt, what)
	}
	r.b = nil
}

func (r *reader) uvarint(what string) uint64 {
	v, n := binary.Uvarint(r.b)
	if n <= 0 {
		r.fail(what)
		return 0
	}
	r.b = r.b[n:]
	return v
}

func (r *reader) varint(what string) int64 {
	v, n := binary.Varint(r.b)
	if n <= 0 {
		r.fail(what)
		return 0
	}
	r.b = r.b[n:]
	return v
}

func (r *reader) bytes(n uint64, what string) []byte {
	if uint64(len(r.b)) < n {
		r.fail(what)
		return nil
	}
	v := r.b[:n]
	r.b = r.b[n:]
	return v
}

func (r *reader) words(what string) []uint64 {
	n := r.uvarint(what)
	if n > uint64(len(r.b))/8 {
		r.fail(what)
		return nil
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(r.b[8*i:])
	}
	r.b = r.b[8*n:]
	return out
}

func readState(raw []byte) (bitgen.State, error) {
	r := reader{b: raw}
	var s bitgen.State
	s.Algorithm = string(r.bytes(r.uvarint("algorithm"), "algorithm"))
	s.Words = r.words("core words")
	flags := r.bytes(1, "flags")
	uinteger := r.bytes(4, "uinteger")
	s.Aux.Index = int(r.varint("index"))
	s.Aux.BufferLoc = int(r.varint("buffer_loc"))
	if r.err != nil {
		return bitgen.State{}, r.err
	}
	s.Aux.HasUint32 = flags[0]&flagHasUint32 != 0
	s.Aux.Uinteger = binary.LittleEndian.Uint32(uinteger)
	if flags[0]&flagBuffer != 0 {
		s.Aux.Buffer = r.words("buffer")
	}
	if r.err != nil {
		return bitgen.State{}, r.err
	}
	if len(r.b) != 0 {
		return bitgen.State{}, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(r.b))
	}
	return s, nil
}
