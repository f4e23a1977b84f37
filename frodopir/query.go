package frodopir

import "github.com/itzmeanjan/frodopir/matrix"

// queryStatus tracks where a single in-flight query is in its lifecycle:
// ∅ (no entry) → prepared → sent → ∅ (removed after decode).
type queryStatus int

const (
	queryPrepared queryStatus = iota
	querySent
)

// queryEntry is the cached per-index state between prepare_query and
// process_response: the precomputed b and c row vectors, and which state
// the entry is in.
type queryEntry struct {
	status queryStatus
	b      *matrix.Matrix
	c      *matrix.Matrix
}
