package domain

import "time"

// SearchParameter is one recorded execution of the client listing query.
// Search and Sort are kept as the caller sent them.
type SearchParameter struct {
	ID        int64
	Search    string
	Sort      string
	Page      int
	PageSize  int
	CreatedAt time.Time
}
