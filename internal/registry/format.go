// Package registry implements the dhātu/prātipadika/sandhi-rule binary
// registry format (spec.md §4.8): TSV-sourced data compiled to a
// fixed 12-byte-header binary, plus the merged read-only lookup table
// extensions are loaded into before any decoding begins (spec.md §5).
package registry

import (
	"encoding/binary"
	"fmt"

	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/uleb128"
)

// Kind names one of the three registry types.
type Kind byte

const (
	KindDhatu Kind = iota
	KindPratipadika
	KindSandhiRule
)

func (k Kind) String() string {
	switch k {
	case KindDhatu:
		return "dhatu"
	case KindPratipadika:
		return "pratipadika"
	case KindSandhiRule:
		return "sandhi-rule"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Magic is the 4-byte header signature per Kind, and Ext its file
// extension, per spec.md §6.
var (
	Magic = map[Kind]string{
		KindDhatu:       "SPDR",
		KindPratipadika: "SPPR",
		KindSandhiRule:  "SPSR",
	}
	Ext = map[Kind]string{
		KindDhatu:       ".sldr",
		KindPratipadika: ".slpr",
		KindSandhiRule:  ".slsr",
	}
)

// FormatVersion is the binary registry format's own version field,
// independent of the .slbc container version.
const FormatVersion uint16 = 1

// HeaderLength is the fixed registry header size in bytes.
const HeaderLength = 12

// Header is the fixed 12-byte registry file header.
type Header struct {
	Kind    Kind
	Version uint16
	Count   uint32
}

// Encode serializes the header.
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderLength)
	copy(buf[0:4], Magic[h.Kind])
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	binary.LittleEndian.PutUint32(buf[6:10], h.Count)
	// bytes 10-11 reserved, always zero
	return buf
}

// ParseHeader parses and validates the fixed header for an expected Kind.
func ParseHeader(data []byte, want Kind) (Header, error) {
	if len(data) < HeaderLength {
		return Header{}, slbcerr.RegistryNoID(fmt.Sprintf("truncated registry header: got %d bytes, need %d", len(data), HeaderLength), nil)
	}
	wantMagic := Magic[want]
	if string(data[0:4]) != wantMagic {
		return Header{}, slbcerr.RegistryNoID(fmt.Sprintf("bad registry magic: got %q, want %q", data[0:4], wantMagic), nil)
	}
	if data[10] != 0 || data[11] != 0 {
		return Header{}, slbcerr.RegistryNoID("reserved header bytes must be zero", nil)
	}
	return Header{
		Kind:    want,
		Version: binary.LittleEndian.Uint16(data[4:6]),
		Count:   binary.LittleEndian.Uint32(data[6:10]),
	}, nil
}

// appendString appends a ULEB128 length prefix followed by s's UTF-8 bytes.
func appendString(dst []byte, s string) []byte {
	dst = uleb128.Append(dst, uint32(len(s)))
	return append(dst, s...)
}

// readString reads a ULEB128-length-prefixed UTF-8 string starting at off.
func readString(data []byte, off int64) (string, int64, error) {
	n, sz, err := uleb128.Read(data, off)
	if err != nil {
		return "", 0, err
	}
	start := off + int64(sz)
	end := start + int64(n)
	if end > int64(len(data)) {
		return "", 0, slbcerr.RegistryNoID(fmt.Sprintf("truncated string field at offset %d", start), nil)
	}
	return string(data[start:end]), end, nil
}
