package usecase

import (
	"slices"

	"doctor-directory/internal/delivery/dto"
)

// PageSize is the number of doctors shown per page.
const PageSize = 25

// Paginate returns page (1-based) of list. Pages outside the list yield an
// empty slice rather than an error.
func Paginate[T any](list []T, pageSize, page int) []T {
	// Checked before multiplying so huge pages cannot overflow the offset.
	if pageSize < 1 || page < 1 || page > TotalPages(len(list), pageSize) {
		return []T{}
	}

	start := (page - 1) * pageSize
	if start >= len(list) {
		return []T{}
	}
	end := min(start+pageSize, len(list))

	return slices.Clone(list[start:end])
}

// TotalPages is ceil(count/pageSize), but never less than one so an empty
// list still has a first page to show.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	return max(1, (count+pageSize-1)/pageSize)
}

// ComputePageRange returns the 1-based window of total shown on page.
func ComputePageRange(page, pageSize, total int) dto.PageRange {
	if page < 1 || pageSize < 1 || page > TotalPages(total, pageSize) {
		return dto.PageRange{}
	}

	start := (page-1)*pageSize + 1
	if start > total {
		return dto.PageRange{}
	}

	return dto.PageRange{
		Start: start,
		End:   min(page*pageSize, total),
	}
}
