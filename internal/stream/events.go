package stream

// EventKind names one token-stream event kind (spec.md §3).
type EventKind int

const (
	EventPhoneme EventKind = iota
	EventPadaStart
	EventPadaEnd
	EventPhonStart
	EventPhonEnd
	EventSpace
	EventDanda
	EventDoubleDanda
	EventAvagraha
	EventAnu
	EventSankhyaSpan
	EventNumSpan
	EventMetaEnvelope
)

// Event is one decoded unit of the token stream.
type Event struct {
	Kind EventKind

	// Phoneme holds the byte for EventPhoneme.
	Phoneme byte

	// Digits holds the decoded digit sequence for EventSankhyaSpan, in
	// natural left-to-right numeric order (the stream itself carries
	// them right-to-left, units first — see Decode).
	Digits []int

	// Glyphs holds the digit-glyph values (0-9) for EventNumSpan, in
	// left-to-right visual order, leading zeros preserved.
	Glyphs []int

	// Meta holds the raw passthrough bytes for EventMetaEnvelope: every
	// byte between the (possibly nested) META_START/META_END delimiters,
	// uninterpreted.
	Meta []byte
}
