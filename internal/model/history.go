package model

// DefaultHistoryLimit is the number of results a session keeps.
const DefaultHistoryLimit = 4

// History is a newest-first, bounded sequence of reaction results owned by
// the calling session. It is not safe for concurrent use; sessions append
// and trim sequentially. Not persisted beyond the session.
type History struct {
	entries []ReactionResult
	limit   int
}

// NewHistory creates a history bounded to the given number of entries.
// A non-positive limit falls back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Add prepends a result, discarding the oldest entry on overflow.
func (h *History) Add(result ReactionResult) {
	h.entries = append([]ReactionResult{result}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Entries returns the retained results, newest first. The returned slice is
// a copy; mutating it does not affect the history.
func (h *History) Entries() []ReactionResult {
	out := make([]ReactionResult, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of retained results.
func (h *History) Len() int {
	return len(h.entries)
}
