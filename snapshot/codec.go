package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/DataDog/zstd"
	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the compression applied to a snapshot body.
type Codec uint8

const (
	None Codec = iota
	Snappy
	LZ4
	Zstd
)

// ZstdLevel is the compression level used for Zstd bodies.
var ZstdLevel = 3

func (c Codec) String() string {
	switch c {
	case None:
		return "none"
	case Snappy:
		return "snappy"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	}
	return fmt.Sprintf("codec(%d)", uint8(c))
}

// ParseCodec maps a codec name to its Codec. The empty name means None.
func ParseCodec(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return None, nil
	case "snappy":
		return Snappy, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

// compress returns the body for raw under c. The returned codec differs from
// c when compression did not pay off.
func compress(c Codec, raw []byte) (Codec, []byte, error) {
	switch c {
	case None:
		return None, raw, nil
	case Snappy:
		return Snappy, snappy.Encode(nil, raw), nil
	case LZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, dst, nil)
		if err != nil {
			return None, nil, err
		}
		// Incompressible
		if n == 0 || n >= len(raw) {
			return None, raw, nil
		}
		return LZ4, dst[:n], nil
	case Zstd:
		out, err := zstd.CompressLevel(nil, raw, ZstdLevel)
		if err != nil {
			return None, nil, err
		}
		return Zstd, out, nil
	}
	return None, nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
}

func decompress(c Codec, body []byte, size int) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	switch c {
	case None:
		raw = body
	case Snappy:
		var n int
		if n, err = snappy.DecodedLen(body); err == nil && n != size {
			return nil, fmt.Errorf("%w: snappy body is %d bytes, header says %d", ErrCorrupt, n, size)
		}
		if err == nil {
			raw, err = snappy.Decode(make([]byte, size), body)
		}
	case LZ4:
		raw = make([]byte, size)
		var n int
		n, err = lz4.UncompressBlock(body, raw)
		raw = raw[:n]
	case Zstd:
		raw, err = decompressZstd(body, size)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, c, err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: body is %d bytes, header says %d", ErrCorrupt, len(raw), size)
	}
	return raw, nil
}

// decompressZstd streams at most size bytes out of body. The frame's own
// content size is not trusted.
func decompressZstd(body []byte, size int) ([]byte, error) {
	r := zstd.NewReader(bytes.NewReader(body))
	defer r.Close()
	raw := make([]byte, size)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return nil, fmt.Errorf("body exceeds %d bytes", size)
	}
	return raw, nil
}
