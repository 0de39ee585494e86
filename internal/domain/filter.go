package domain

import "math"

// ClientFilter contains filtering/pagination parameters for client listings.
// Page is 1-based.
type ClientFilter struct {
	Search   string
	Sort     ClientSort
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the filter's page. It
// saturates at math.MaxInt instead of overflowing.
func (f ClientFilter) Offset() int {
	if f.Page < 1 || f.PageSize <= 0 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.PageSize {
		return math.MaxInt
	}
	return (f.Page - 1) * f.PageSize
}
