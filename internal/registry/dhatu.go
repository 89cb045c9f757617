package registry

import (
	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/uleb128"
)

// DhatuEntry is one verbal-root registry record: `[ULEB128 id][ULEB128
// iast-len][iast utf8][GAṆA(4)|PADA(2)|KARMA(2)][IT flags][SET flags]`
// (spec.md §4.8).
type DhatuEntry struct {
	ID       uint32
	IAST     string
	Gana     byte // 4 bits
	Pada     byte // 2 bits
	Karma    byte // 2 bits
	ItFlags  byte
	SetFlags byte
}

// Encode appends the entry's wire bytes to dst.
func (e DhatuEntry) Encode(dst []byte) []byte {
	dst = uleb128.Append(dst, e.ID)
	dst = appendString(dst, e.IAST)
	dst = append(dst, (e.Gana&0x0F)<<4|(e.Pada&0x03)<<2|(e.Karma&0x03))
	dst = append(dst, e.ItFlags, e.SetFlags)
	return dst
}

// EncodeDhatuTable serializes a full dhātu registry: header + entries.
func EncodeDhatuTable(entries []DhatuEntry) []byte {
	out := Header{Kind: KindDhatu, Version: FormatVersion, Count: uint32(len(entries))}.Encode()
	for _, e := range entries {
		out = e.Encode(out)
	}
	return out
}

// DecodeDhatuTable parses a full dhātu registry binary.
func DecodeDhatuTable(data []byte) ([]DhatuEntry, error) {
	h, err := ParseHeader(data, KindDhatu)
	if err != nil {
		return nil, err
	}
	entries, _, err := DecodeDhatuEntries(data, int64(HeaderLength), h.Count)
	return entries, err
}

// DecodeDhatuEntries parses count dhātu entries starting at off, for
// callers that read entries without a registry file header — e.g. the
// DICT chunk's embedded/hybrid inline-entry blocks.
func DecodeDhatuEntries(data []byte, off int64, count uint32) ([]DhatuEntry, int64, error) {
	entries := make([]DhatuEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		id, n, err := uleb128.Read(data, off)
		if err != nil {
			return nil, 0, err
		}
		off += int64(n)
		iast, next, err := readString(data, off)
		if err != nil {
			return nil, 0, err
		}
		off = next
		if off+3 > int64(len(data)) {
			return nil, 0, slbcerr.Registry(uint64(id), "truncated dhātu metadata", nil)
		}
		packed := data[off]
		entries = append(entries, DhatuEntry{
			ID:       id,
			IAST:     iast,
			Gana:     (packed >> 4) & 0x0F,
			Pada:     (packed >> 2) & 0x03,
			Karma:    packed & 0x03,
			ItFlags:  data[off+1],
			SetFlags: data[off+2],
		})
		off += 3
	}
	return entries, off, nil
}
