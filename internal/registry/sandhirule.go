package registry

import (
	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/uleb128"
)

// SandhiRuleEntry is one sandhi-rule registry record: `[ULEB128
// id][ULEB128 iast-len][iast utf8][TYPE(4)|rsv(4)][length-prefixed sūtra
// ref]` (spec.md §4.8). This implementation stores only the sūtra
// reference string (e.g. "8.2.39"), not the rule's operational logic —
// see DESIGN.md's TBD-1 resolution: applying the rule is the
// algebra kernel's job (internal/algebra), the registry only indexes
// which sūtra authorizes it.
type SandhiRuleEntry struct {
	ID       uint32
	IAST     string
	Type     byte // 4 bits
	SutraRef string
}

// Encode appends the entry's wire bytes to dst.
func (e SandhiRuleEntry) Encode(dst []byte) []byte {
	dst = uleb128.Append(dst, e.ID)
	dst = appendString(dst, e.IAST)
	dst = append(dst, (e.Type&0x0F)<<4)
	dst = appendString(dst, e.SutraRef)
	return dst
}

// EncodeSandhiRuleTable serializes a full sandhi-rule registry.
func EncodeSandhiRuleTable(entries []SandhiRuleEntry) []byte {
	out := Header{Kind: KindSandhiRule, Version: FormatVersion, Count: uint32(len(entries))}.Encode()
	for _, e := range entries {
		out = e.Encode(out)
	}
	return out
}

// DecodeSandhiRuleTable parses a full sandhi-rule registry binary.
func DecodeSandhiRuleTable(data []byte) ([]SandhiRuleEntry, error) {
	h, err := ParseHeader(data, KindSandhiRule)
	if err != nil {
		return nil, err
	}
	entries, _, err := DecodeSandhiRuleEntries(data, int64(HeaderLength), h.Count)
	return entries, err
}

// DecodeSandhiRuleEntries parses count sandhi-rule entries starting at
// off, for callers without a registry file header (the DICT chunk's
// inline-entry blocks).
func DecodeSandhiRuleEntries(data []byte, off int64, count uint32) ([]SandhiRuleEntry, int64, error) {
	entries := make([]SandhiRuleEntry, 0, count)
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
		if off+1 > int64(len(data)) {
			return nil, 0, slbcerr.Registry(uint64(id), "truncated sandhi-rule metadata", nil)
		}
		typ := (data[off] >> 4) & 0x0F
		off++
		sutra, next2, err := readString(data, off)
		if err != nil {
			return nil, 0, err
		}
		off = next2
		entries = append(entries, SandhiRuleEntry{ID: id, IAST: iast, Type: typ, SutraRef: sutra})
	}
	return entries, off, nil
}
