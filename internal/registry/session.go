package registry

import "github.com/google/uuid"

// Session is one load context: a unique identifier plus the merged,
// sealed registry table built for it. extract.ResolveAnnotations and
// `registry stats` build a Session and report its ID, so a run's output
// can be correlated with the registry merge that produced it.
type Session struct {
	ID    uuid.UUID
	Store *Store
}

// NewSession seals store and wraps it in a fresh session identifier.
// Sealing here, rather than leaving it to the caller, keeps
// "no decoding begins before the merge is sealed" (spec.md §5) a
// property of constructing a Session at all.
func NewSession(store *Store) Session {
	store.Seal()
	return Session{ID: uuid.New(), Store: store}
}
