// Package container implements the .slbc file framing of spec.md §4.7:
// the 14-byte fixed header, the optional extended header, chunk framing,
// and the mandatory EOF chunk. The shape — a magic-prefixed fixed header
// parsed with explicit length checks, returning a wrapped error on any
// mismatch — follows the teacher's internal/protocol/{ysf,dmr} frame
// parsers (Frame.Parse checking magic, sync pattern, and declared
// lengths before trusting the payload).
package container

import (
	"encoding/binary"
	"fmt"

	"github.com/abhyagra/slbc/internal/slbcerr"
)

// Magic is the fixed 4-byte file signature.
const Magic = "SLBC"

// HeaderLength is the fixed header size in bytes.
const HeaderLength = 14

// Version bytes, spec.md §6: 0x00000008 is the base format, 0x00000009
// adds the numeral dual-layer span extension.
var (
	VersionBase        = [4]byte{0x00, 0x00, 0x00, 0x08}
	VersionNumeralSpan = [4]byte{0x00, 0x00, 0x00, 0x09}
)

// Flag bits packed into header byte 11. Bytes 8-10 of the flags field
// are always zero.
const (
	FlagHasLipi     byte = 1 << 0
	FlagHasMeta     byte = 1 << 1
	FlagInterleaved byte = 1 << 2
	FlagVedic       byte = 1 << 3
	FlagVya         byte = 1 << 4
	flagReservedMask byte = 0b11100000
)

// Mode names the flag-derived extraction mode, spec.md §4.7.
type Mode int

const (
	ModeBhashaCanonical Mode = iota
	ModePatha
	ModeVyakhya
)

func (m Mode) String() string {
	switch m {
	case ModeBhashaCanonical:
		return "bhasha-canonical"
	case ModePatha:
		return "patha"
	case ModeVyakhya:
		return "vyakhya"
	default:
		return "unknown"
	}
}

// Header is the fixed 14-byte file header plus any extended header
// bytes that follow it.
type Header struct {
	Version    [4]byte
	Flags      byte // header byte 11 only; bytes 8-10 are always zero
	ExtHeader  []byte
}

// HasLipi, HasMeta, Interleaved, Vedic, Vya read the flag bits.
func (h Header) HasLipi() bool     { return h.Flags&FlagHasLipi != 0 }
func (h Header) HasMeta() bool     { return h.Flags&FlagHasMeta != 0 }
func (h Header) Interleaved() bool { return h.Flags&FlagInterleaved != 0 }
func (h Header) Vedic() bool       { return h.Flags&FlagVedic != 0 }
func (h Header) Vya() bool         { return h.Flags&FlagVya != 0 }

// Mode derives the extraction mode from the flag bits, spec.md §4.7.
func (h Header) Mode() Mode {
	switch {
	case !h.HasLipi():
		return ModeBhashaCanonical
	case h.Vya():
		return ModeVyakhya
	default:
		return ModePatha
	}
}

// Encode serializes the header (fixed 14 bytes followed by ExtHeader).
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderLength+len(h.ExtHeader))
	copy(buf[0:4], Magic)
	copy(buf[4:8], h.Version[:])
	// bytes 8-10 of the flags field are always zero
	buf[11] = h.Flags
	binary.LittleEndian.PutUint16(buf[12:14], uint16(len(h.ExtHeader)))
	copy(buf[HeaderLength:], h.ExtHeader)
	return buf
}

// ParseHeader parses the fixed header and extended header from data,
// returning the header and the byte offset of the first chunk.
func ParseHeader(data []byte) (Header, int, error) {
	if len(data) < HeaderLength {
		return Header{}, 0, slbcerr.Container(0, fmt.Sprintf("truncated header: got %d bytes, need %d", len(data), HeaderLength), nil)
	}
	if string(data[0:4]) != Magic {
		return Header{}, 0, slbcerr.Container(0, fmt.Sprintf("bad magic: got %q, want %q", data[0:4], Magic), nil)
	}
	var h Header
	copy(h.Version[:], data[4:8])
	if h.Version != VersionBase && h.Version != VersionNumeralSpan {
		return Header{}, 0, slbcerr.Container(4, fmt.Sprintf("unsupported version % X", h.Version), nil)
	}
	if data[8] != 0 || data[9] != 0 || data[10] != 0 {
		return Header{}, 0, slbcerr.Container(8, "flags bytes 8-10 must be zero", nil)
	}
	h.Flags = data[11]
	if h.Flags&flagReservedMask != 0 {
		return Header{}, 0, slbcerr.Container(11, "reserved flag bits must be zero", nil)
	}
	extLen := int(binary.LittleEndian.Uint16(data[12:14]))
	if len(data) < HeaderLength+extLen {
		return Header{}, 0, slbcerr.Container(int64(HeaderLength), "truncated extended header", nil)
	}
	h.ExtHeader = append([]byte(nil), data[HeaderLength:HeaderLength+extLen]...)
	return h, HeaderLength + extLen, nil
}
