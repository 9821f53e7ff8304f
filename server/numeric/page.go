// Package numeric holds small numeric helpers used for paginated command
// output and for presenting numbers to users.
package numeric

import "golang.org/x/exp/constraints"

// NextPageIndex returns the index of the page after current in a listing of
// pages pages. It wraps around to the first page after the last one.
func NextPageIndex[I constraints.Integer](current, pages I) I {
	if pages-1 > current {
		return current + 1
	}
	return 0
}

// PreviousPageIndex returns the index of the page before current in a listing
// of pages pages. It wraps around to the last page before the first one.
func PreviousPageIndex[I constraints.Integer](current, pages I) I {
	if current > 0 {
		return current - 1
	}
	return pages - 1
}

// PageBounds returns the half-open range [start, end) of the elements on page
// index in a collection of total elements split into pages of size perPage.
// The bounds are clamped to the collection.
func PageBounds[I constraints.Integer](index, perPage, total I) (start, end I) {
	if perPage <= 0 || index < 0 {
		return 0, 0
	}
	start = min(index*perPage, total)
	end = min(start+perPage, total)
	return start, end
}

// PageCount returns the number of pages needed to show total elements with
// perPage elements per page.
func PageCount[I constraints.Integer](total, perPage I) I {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
