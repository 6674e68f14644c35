package pix

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Compressor is the lossless byte codec used to store snapshots.
// Nothing in the history logic depends on the algorithm or its ratio,
// only on round-trip correctness, so it is an injected capability; see
// [WithCompressor]. The default is [LZ4].
type Compressor interface {
	Compress(src []byte) []byte
	Decompress(src []byte) ([]byte, error)
}

// Block framing: a one-byte kind tag followed by the raw size as a
// little-endian uint32, then the payload.
const (
	blockRaw  = 0x00 // payload stored uncompressed
	blockLZ4  = 0x01 // payload is an LZ4 block
	headerLen = 5
)

// LZ4 compresses snapshot buffers with the LZ4 block format, prepending
// the uncompressed size. Input that does not shrink is stored raw.
type LZ4 struct{}

// Compress implements Compressor.
func (LZ4) Compress(src []byte) []byte {
	buf := make([]byte, headerLen+lz4.CompressBlockBound(len(src)))
	binary.LittleEndian.PutUint32(buf[1:headerLen], uint32(len(src)))

	var c lz4.Compressor
	n, err := c.CompressBlock(src, buf[headerLen:])
	if err != nil || n == 0 || n >= len(src) {
		// Incompressible; store raw.
		buf[0] = blockRaw
		return append(buf[:headerLen], src...)
	}

	buf[0] = blockLZ4
	return buf[:headerLen+n]
}

// Decompress implements Compressor.
func (LZ4) Decompress(src []byte) ([]byte, error) {
	if len(src) < headerLen {
		return nil, fmt.Errorf("pix: compressed block too short: %d bytes", len(src))
	}
	size := int(binary.LittleEndian.Uint32(src[1:headerLen]))
	payload := src[headerLen:]

	switch src[0] {
	case blockRaw:
		if len(payload) != size {
			return nil, fmt.Errorf("pix: raw block is %d bytes, header says %d", len(payload), size)
		}
		dst := make([]byte, size)
		copy(dst, payload)
		return dst, nil
	case blockLZ4:
		dst := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return nil, fmt.Errorf("pix: lz4 decompress: %w", err)
		}
		if n != size {
			return nil, fmt.Errorf("pix: lz4 block decompressed to %d bytes, header says %d", n, size)
		}
		return dst, nil
	default:
		return nil, fmt.Errorf("pix: unknown block kind 0x%02x", src[0])
	}
}
