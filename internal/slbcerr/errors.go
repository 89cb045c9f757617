// Package slbcerr defines the SLBC error taxonomy.
//
// The codec recovers nothing silently: every decode-time failure surfaces
// to the caller tagged with a Kind plus whatever locator applies (byte
// offset, registry ID, or input token). Domain-kernel precondition
// violations are a separate matter — see Domain below — and are reported
// the same way the teacher's codec helpers treated malformed call data:
// loudly, never swallowed into a zero value.
package slbcerr

import "fmt"

// Kind names one of the error categories from the codec's error taxonomy.
type Kind string

const (
	KindInputEncoding Kind = "InputEncodingError"
	KindDomain        Kind = "DomainError"
	KindContainer     Kind = "ContainerError"
	KindSpan          Kind = "SpanError"
	KindRegistry      Kind = "RegistryError"
	KindInvariant     Kind = "InvariantError"
)

// Error is the concrete error type returned by every SLBC package. It
// carries at most one locator, whichever applies to Kind.
type Error struct {
	Kind Kind
	Msg  string

	// Offset is the byte offset into the stream being decoded, for
	// ContainerError / SpanError.
	Offset int64
	HasOffset bool

	// Token is the offending input token, for InputEncodingError.
	Token string

	// RegistryID is the entity ID involved, for RegistryError.
	RegistryID uint64
	HasRegistryID bool

	Err error
}

func (e *Error) Error() string {
	switch {
	case e.HasOffset:
		return fmt.Sprintf("%s: %s (offset %d)", e.Kind, e.Msg, e.Offset)
	case e.HasRegistryID:
		return fmt.Sprintf("%s: %s (id %d)", e.Kind, e.Msg, e.RegistryID)
	case e.Token != "":
		return fmt.Sprintf("%s: %s (token %q)", e.Kind, e.Msg, e.Token)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// InputEncoding reports an unrecognized IAST token or illegal numeral char.
func InputEncoding(token, msg string) *Error {
	return &Error{Kind: KindInputEncoding, Msg: msg, Token: token}
}

// Container reports a framing-level failure at a given byte offset.
func Container(offset int64, msg string, err error) *Error {
	return &Error{Kind: KindContainer, Msg: msg, Offset: offset, HasOffset: true, Err: err}
}

// Span reports a SAṄKHYĀ/NUM span failure at a given byte offset.
func Span(offset int64, msg string) *Error {
	return &Error{Kind: KindSpan, Msg: msg, Offset: offset, HasOffset: true}
}

// Registry reports a malformed registry, a collision, or an unresolved
// reference, tagged by entity ID.
func Registry(id uint64, msg string, err error) *Error {
	return &Error{Kind: KindRegistry, Msg: msg, RegistryID: id, HasRegistryID: true, Err: err}
}

// RegistryNoID reports a registry-level failure with no single entity ID
// (e.g. a bad header magic).
func RegistryNoID(msg string, err error) *Error {
	return &Error{Kind: KindRegistry, Msg: msg, Err: err}
}

// Invariant reports an unreachable state-machine transition — always a bug.
func Invariant(msg string) *Error {
	return &Error{Kind: KindInvariant, Msg: msg}
}

// Domain panics with a DomainError-tagged message. Algebra kernel
// preconditions are programmer errors, not data errors, so they surface
// as panics rather than returned errors — matching spec.md §7's
// distinction between DomainError and the stream/container/registry
// error kinds that are returned normally.
func Domain(msg string) {
	panic(&Error{Kind: KindDomain, Msg: msg})
}
