package container

import "github.com/abhyagra/slbc/internal/slbcerr"

// File is a fully parsed .slbc container: its header plus the ordered
// chunk sequence (EOF chunk excluded — its presence is validated but it
// carries no payload of interest to callers).
type File struct {
	Header Header
	Chunks []Chunk
}

// EncodeFile serializes a header and chunk sequence into a complete
// .slbc byte stream, appending the mandatory EOF chunk.
func EncodeFile(h Header, chunks []Chunk) []byte {
	out := h.Encode()
	for _, c := range chunks {
		out = c.Encode(out)
	}
	return EncodeEOF(out)
}

// DecodeFile parses a complete .slbc byte stream: header, chunks, and
// the mandatory EOF chunk. A file with no EOF chunk is refused —
// spec.md §8 invariant 8.
func DecodeFile(data []byte) (File, error) {
	h, off64, err := ParseHeader(data)
	if err != nil {
		return File{}, err
	}
	off := int64(off64)

	var chunks []Chunk
	for {
		if off >= int64(len(data)) {
			return File{}, slbcerr.Container(off, "missing mandatory EOF chunk", nil)
		}
		c, next, err := readChunk(data, off)
		if err != nil {
			return File{}, err
		}
		if c.Type == ChunkEOF {
			if len(c.Payload) != 0 {
				return File{}, slbcerr.Container(off, "EOF chunk must have zero-length payload", nil)
			}
			return File{Header: h, Chunks: chunks}, nil
		}
		chunks = append(chunks, c)
		off = next
	}
}
