// Package dictchunk implements the DICT container chunk's payload codec
// (spec.md §4.9): per-registry-type annotation data embedded inline,
// referenced in an external file, or both, with a fixed resolution
// order at decode time.
package dictchunk

import (
	"encoding/binary"
	"fmt"

	"github.com/abhyagra/slbc/internal/registry"
	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/uleb128"
)

// Mode names the DICT payload's embedding strategy.
type Mode byte

const (
	ModeEmbedded Mode = 0x00
	ModeExternal Mode = 0x01
	ModeHybrid   Mode = 0x02
)

func (m Mode) String() string {
	switch m {
	case ModeEmbedded:
		return "embedded"
	case ModeExternal:
		return "external"
	case ModeHybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("unknown(0x%02X)", byte(m))
	}
}

// Payload is a parsed DICT chunk. At most one of the Inline* fields is
// populated (none for ModeExternal), selected by RegistryType; External* fields are set only
// when Mode is ModeExternal or ModeHybrid.
type Payload struct {
	RegistryType registry.Kind
	Mode         Mode

	ExternalVersion  uint16
	ExternalFilename string

	InlineDhatu       []registry.DhatuEntry
	InlinePratipadika []registry.PratipadikaEntry
	InlineSandhiRule  []registry.SandhiRuleEntry
}

// Encode serializes payload to DICT chunk wire bytes.
func Encode(p Payload) []byte {
	dst := []byte{byte(p.RegistryType), byte(p.Mode)}
	if p.Mode == ModeExternal || p.Mode == ModeHybrid {
		dst = appendExternalBlock(dst, p.ExternalVersion, p.ExternalFilename)
	}
	if p.Mode == ModeEmbedded || p.Mode == ModeHybrid {
		dst = appendInlineEntries(dst, p)
	}
	return dst
}

func appendExternalBlock(dst []byte, version uint16, filename string) []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, version)
	dst = append(dst, buf...)
	dst = uleb128.Append(dst, uint32(len(filename)))
	return append(dst, filename...)
}

func appendInlineEntries(dst []byte, p Payload) []byte {
	switch p.RegistryType {
	case registry.KindDhatu:
		dst = uleb128.Append(dst, uint32(len(p.InlineDhatu)))
		for _, e := range p.InlineDhatu {
			dst = e.Encode(dst)
		}
	case registry.KindPratipadika:
		dst = uleb128.Append(dst, uint32(len(p.InlinePratipadika)))
		for _, e := range p.InlinePratipadika {
			dst = e.Encode(dst)
		}
	case registry.KindSandhiRule:
		dst = uleb128.Append(dst, uint32(len(p.InlineSandhiRule)))
		for _, e := range p.InlineSandhiRule {
			dst = e.Encode(dst)
		}
	}
	return dst
}

// Decode parses a DICT chunk payload.
func Decode(data []byte) (Payload, error) {
	if len(data) < 2 {
		return Payload{}, slbcerr.RegistryNoID("truncated DICT payload: missing registry-type/mode bytes", nil)
	}
	p := Payload{RegistryType: registry.Kind(data[0]), Mode: Mode(data[1])}
	off := int64(2)

	if p.Mode == ModeExternal || p.Mode == ModeHybrid {
		if off+2 > int64(len(data)) {
			return Payload{}, slbcerr.RegistryNoID("truncated DICT external block version field", nil)
		}
		p.ExternalVersion = binary.LittleEndian.Uint16(data[off : off+2])
		off += 2
		nameLen, n, err := uleb128.Read(data, off)
		if err != nil {
			return Payload{}, err
		}
		off += int64(n)
		end := off + int64(nameLen)
		if end > int64(len(data)) {
			return Payload{}, slbcerr.RegistryNoID("truncated DICT external filename", nil)
		}
		p.ExternalFilename = string(data[off:end])
		off = end
	}

	if p.Mode == ModeEmbedded || p.Mode == ModeHybrid {
		count, n, err := uleb128.Read(data, off)
		if err != nil {
			return Payload{}, err
		}
		off += int64(n)
		switch p.RegistryType {
		case registry.KindDhatu:
			entries, next, err := registry.DecodeDhatuEntries(data, off, count)
			if err != nil {
				return Payload{}, err
			}
			p.InlineDhatu, off = entries, next
		case registry.KindPratipadika:
			entries, next, err := registry.DecodePratipadikaEntries(data, off, count)
			if err != nil {
				return Payload{}, err
			}
			p.InlinePratipadika, off = entries, next
		case registry.KindSandhiRule:
			entries, next, err := registry.DecodeSandhiRuleEntries(data, off, count)
			if err != nil {
				return Payload{}, err
			}
			p.InlineSandhiRule, off = entries, next
		default:
			return Payload{}, slbcerr.RegistryNoID(fmt.Sprintf("unknown DICT registry-type %d", p.RegistryType), nil)
		}
	}

	return p, nil
}

// Resolver loads the external registry file an external or hybrid DICT
// chunk names. The layering builtin, then external, then embedded entries
// (spec.md §4.9) is done by extract.ResolveAnnotations, which refuses an
// entity ID that a later layer defines again with a RegistryError.
type Resolver struct {
	ExternalLoader func(filename string) ([]byte, error)
}

// ResolveExternal loads the external registry bytes a ModeExternal or
// ModeHybrid payload references. Returns a RegistryError, not a
// silently-empty result, if the file cannot be loaded — spec.md §4.9:
// "If an external file is referenced but unavailable, the decoder
// reports an error; it does not silently drop annotations."
func (r Resolver) ResolveExternal(p Payload) ([]byte, error) {
	if p.Mode != ModeExternal && p.Mode != ModeHybrid {
		return nil, slbcerr.RegistryNoID("ResolveExternal called on a payload with no external block", nil)
	}
	if r.ExternalLoader == nil {
		return nil, slbcerr.RegistryNoID(fmt.Sprintf("external registry file %q unavailable: no loader configured", p.ExternalFilename), nil)
	}
	data, err := r.ExternalLoader(p.ExternalFilename)
	if err != nil {
		return nil, slbcerr.RegistryNoID(fmt.Sprintf("external registry file %q unavailable", p.ExternalFilename), err)
	}
	return data, nil
}
