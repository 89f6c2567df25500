package tokens

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the stream format of an input.
type Compression uint8

const (
	// CompressionNone is plain text.
	CompressionNone Compression = 0
	// CompressionLZ4 is an LZ4 frame stream.
	CompressionLZ4 Compression = 1
	// CompressionZSTD is a zstd frame stream.
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

const magicLen = 4

// ErrUnknownCompression is returned when writing with an unsupported Compression.
var ErrUnknownCompression = errors.New("unknown compression")

// Detect reports the stream format from the first bytes of an input.
func Detect(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZSTD
	case bytes.HasPrefix(head, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Decompress wraps r in a decoder matching its leading magic bytes.
// Plain input is returned buffered but otherwise untouched.
//
// The returned reader must be closed; closing does not close r.
func Decompress(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(magicLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, CompressionNone, err
	}

	switch c := Detect(head); c {
	case CompressionZSTD:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("zstd: %w", err)
		}
		return zstdReadCloser{dec}, c, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(br)), c, nil
	default:
		return io.NopCloser(br), c, nil
	}
}

// zstdReadCloser releases the decoder's goroutines on Close.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// Compress wraps w in an encoder for c. The returned writer must be closed
// to flush the final frame; closing does not close w.
func Compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return enc, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
