package container

import (
	"fmt"

	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/uleb128"
)

// ChunkType is the one-byte chunk-type tag. IDX (0x06) deliberately
// coincides numerically with the bhāṣā control byte META_START — see
// spec.md §9 and internal/stream/controlbytes.go; the two never collide
// in practice because a decoder only ever reads a chunk-type byte while
// in the container's chunk-header lane, never while inside a chunk
// payload.
type ChunkType byte

const (
	ChunkPhon ChunkType = 0x01
	ChunkBha  ChunkType = 0x02
	ChunkLipi ChunkType = 0x03
	ChunkMeta ChunkType = 0x04
	ChunkDict ChunkType = 0x05
	ChunkIdx  ChunkType = 0x06
	ChunkAnvy ChunkType = 0x07
	ChunkExt  ChunkType = 0x08
	ChunkEOF  ChunkType = 0xFF
)

func (t ChunkType) String() string {
	switch t {
	case ChunkPhon:
		return "PHON"
	case ChunkBha:
		return "BHA"
	case ChunkLipi:
		return "LIPI"
	case ChunkMeta:
		return "META"
	case ChunkDict:
		return "DICT"
	case ChunkIdx:
		return "IDX"
	case ChunkAnvy:
		return "ANVY"
	case ChunkExt:
		return "EXT"
	case ChunkEOF:
		return "EOF"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", byte(t))
	}
}

// Chunk is one type-tagged, length-framed payload block.
type Chunk struct {
	Type    ChunkType
	Payload []byte
}

// Encode appends the chunk's type+length+payload framing to dst.
func (c Chunk) Encode(dst []byte) []byte {
	dst = append(dst, byte(c.Type))
	dst = uleb128.Append(dst, uint32(len(c.Payload)))
	dst = append(dst, c.Payload...)
	return dst
}

// EncodeEOF appends the mandatory terminating EOF chunk (0xFF 0x00).
func EncodeEOF(dst []byte) []byte {
	return Chunk{Type: ChunkEOF}.Encode(dst)
}

// readChunk reads one chunk starting at offset off, returning the chunk
// and the offset of the next chunk.
func readChunk(data []byte, off int64) (Chunk, int64, error) {
	if off >= int64(len(data)) {
		return Chunk{}, 0, slbcerr.Container(off, "truncated chunk header", nil)
	}
	typ := ChunkType(data[off])
	length, n, err := uleb128.Read(data, off+1)
	if err != nil {
		return Chunk{}, 0, err
	}
	payloadStart := off + 1 + int64(n)
	payloadEnd := payloadStart + int64(length)
	if payloadEnd > int64(len(data)) {
		return Chunk{}, 0, slbcerr.Container(payloadStart, fmt.Sprintf("truncated chunk payload: declared %d bytes, %d available", length, int64(len(data))-payloadStart), nil)
	}
	payload := append([]byte(nil), data[payloadStart:payloadEnd]...)
	return Chunk{Type: typ, Payload: payload}, payloadEnd, nil
}
