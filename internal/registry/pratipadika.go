package registry

import (
	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/uleb128"
)

// PratipadikaEntry is one nominal-stem registry record: `[ULEB128
// id][ULEB128 iast-len][iast utf8][STEM_CLASS(4)|LIṄGA(3)|rsv(1)][FLAGS]`
// (spec.md §4.8).
type PratipadikaEntry struct {
	ID        uint32
	IAST      string
	StemClass byte // 4 bits
	Linga     byte // 3 bits
	Flags     byte
}

// Encode appends the entry's wire bytes to dst.
func (e PratipadikaEntry) Encode(dst []byte) []byte {
	dst = uleb128.Append(dst, e.ID)
	dst = appendString(dst, e.IAST)
	dst = append(dst, (e.StemClass&0x0F)<<4|(e.Linga&0x07)<<1)
	dst = append(dst, e.Flags)
	return dst
}

// EncodePratipadikaTable serializes a full prātipadika registry.
func EncodePratipadikaTable(entries []PratipadikaEntry) []byte {
	out := Header{Kind: KindPratipadika, Version: FormatVersion, Count: uint32(len(entries))}.Encode()
	for _, e := range entries {
		out = e.Encode(out)
	}
	return out
}

// DecodePratipadikaTable parses a full prātipadika registry binary.
func DecodePratipadikaTable(data []byte) ([]PratipadikaEntry, error) {
	h, err := ParseHeader(data, KindPratipadika)
	if err != nil {
		return nil, err
	}
	entries, _, err := DecodePratipadikaEntries(data, int64(HeaderLength), h.Count)
	return entries, err
}

// DecodePratipadikaEntries parses count prātipadika entries starting at
// off, for callers without a registry file header (the DICT chunk's
// inline-entry blocks).
func DecodePratipadikaEntries(data []byte, off int64, count uint32) ([]PratipadikaEntry, int64, error) {
	entries := make([]PratipadikaEntry, 0, count)
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
		if off+2 > int64(len(data)) {
			return nil, 0, slbcerr.Registry(uint64(id), "truncated prātipadika metadata", nil)
		}
		packed := data[off]
		entries = append(entries, PratipadikaEntry{
			ID:        id,
			IAST:      iast,
			StemClass: (packed >> 4) & 0x0F,
			Linga:     (packed >> 1) & 0x07,
			Flags:     data[off+1],
		})
		off += 2
	}
	return entries, off, nil
}
