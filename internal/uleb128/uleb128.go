// Package uleb128 implements unsigned LEB128 varints bounded to 32-bit
// values (max 5 encoded bytes), used throughout SLBC for chunk lengths,
// SAṄKHYĀ span counts, and registry entry-count/id fields.
package uleb128

import "github.com/abhyagra/slbc/internal/slbcerr"

// MaxBytes is the longest a valid ULEB128-32 encoding may be: ceil(32/7).
const MaxBytes = 5

// Append encodes v and appends its ULEB128 bytes to dst, returning the
// extended slice.
func Append(dst []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			dst = append(dst, b|0x80)
		} else {
			dst = append(dst, b)
			return dst
		}
	}
}

// Read decodes a ULEB128-32 value starting at offset off in src,
// returning the value, the number of bytes consumed, and an error if
// the encoding exceeds 5 bytes or the decoded value overflows 32 bits.
func Read(src []byte, off int64) (value uint32, n int, err error) {
	var shift uint
	var result uint64
	i := 0
	for {
		if int64(i) >= int64(len(src))-off {
			return 0, 0, slbcerr.Container(off, "ULEB128: truncated, ran out of input", nil)
		}
		b := src[off+int64(i)]
		i++
		if i > MaxBytes {
			return 0, 0, slbcerr.Container(off, "ULEB128: overlong encoding (> 5 bytes)", nil)
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	if result > 0xFFFFFFFF {
		return 0, 0, slbcerr.Container(off, "ULEB128: value overflows 32 bits", nil)
	}
	return uint32(result), i, nil
}
