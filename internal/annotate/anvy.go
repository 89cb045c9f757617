// Package annotate implements the ANVY container chunk: vyākhyā
// (commentary) text anchored to a byte-offset span of the decoded
// phoneme stream, with an optional reference into a dhātu/prātipadika/
// sandhi-rule registry entry. The wire shape — ULEB128 count, then
// per-entry ULEB128-framed fields and a length-prefixed UTF-8 string —
// follows the same framing internal/registry's entry codecs use
// (internal/registry/dhatu.go's DhatuEntry.Encode).
package annotate

import (
	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/uleb128"
)

// Entry is one commentary note anchored to a span of the decoded
// phoneme stream. RegistryRef is 0 when the note cites no registry
// entry; registry IDs are never 0 (internal/registry assigns standard
// entries starting at 1).
type Entry struct {
	SpanStart  uint32
	SpanLength uint32
	RegistryRef uint32
	Text       string
}

// Encode serializes entries as an ANVY chunk payload.
func Encode(entries []Entry) []byte {
	dst := uleb128.Append(nil, uint32(len(entries)))
	for _, e := range entries {
		dst = uleb128.Append(dst, e.SpanStart)
		dst = uleb128.Append(dst, e.SpanLength)
		dst = uleb128.Append(dst, e.RegistryRef)
		dst = uleb128.Append(dst, uint32(len(e.Text)))
		dst = append(dst, e.Text...)
	}
	return dst
}

// Decode parses an ANVY chunk payload.
func Decode(data []byte) ([]Entry, error) {
	count, n, err := uleb128.Read(data, 0)
	if err != nil {
		return nil, err
	}
	off := int64(n)

	entries := make([]Entry, 0, count)
	for i := uint32(0); i < count; i++ {
		var e Entry
		var textLen uint32

		e.SpanStart, n, err = uleb128.Read(data, off)
		if err != nil {
			return nil, err
		}
		off += int64(n)

		e.SpanLength, n, err = uleb128.Read(data, off)
		if err != nil {
			return nil, err
		}
		off += int64(n)

		e.RegistryRef, n, err = uleb128.Read(data, off)
		if err != nil {
			return nil, err
		}
		off += int64(n)

		textLen, n, err = uleb128.Read(data, off)
		if err != nil {
			return nil, err
		}
		off += int64(n)

		end := off + int64(textLen)
		if end > int64(len(data)) {
			return nil, slbcerr.Span(off, "truncated ANVY entry text")
		}
		e.Text = string(data[off:end])
		off = end

		entries = append(entries, e)
	}
	return entries, nil
}
