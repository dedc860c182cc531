package domain

// Post is a single feed entry. Listings carry only ID and CreatedAt; the
// raw text is fetched separately and never persisted.
type Post struct {
	ID        int64
	CreatedAt string
	RawText   string
}

// ReplyOutcome is the transient result of one reply submission. It is
// logged, never stored.
type ReplyOutcome struct {
	Success bool
	Message string
}
