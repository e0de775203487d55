package converter

import (
	"net/url"
	"strconv"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// Query keys of the navigable directory URL.
const (
	QueryKeySearch      = "search"
	QueryKeyMode        = "mode"
	QueryKeySpecialties = "specialties"
	QueryKeySort        = "sort"
	QueryKeyPage        = "page"
)

const specialtySeparator = ","

// QueryToDirectoryState hydrates directory state from a URL query.
// It never fails: absent keys take their defaults and out-of-domain
// values (unknown mode or sort, non-positive or garbage page) are unset.
func QueryToDirectoryState(query url.Values) entity.DirectoryState {
	filter := entity.FilterState{
		Search:           query.Get(QueryKeySearch),
		ConsultationMode: entity.ParseConsultationMode(query.Get(QueryKeyMode)),
		SortBy:           entity.ParseSortOption(query.Get(QueryKeySort)),
	}
	if raw := query.Get(QueryKeySpecialties); raw != "" {
		filter = filter.WithSpecialties(splitSpecialties(raw))
	}

	page, err := strconv.Atoi(query.Get(QueryKeyPage))
	if err != nil {
		page = 1
	}

	return entity.DirectoryState{Filter: filter}.WithPage(page)
}

// DirectoryStateToQuery persists directory state as a URL query holding
// only non-default fields, so the default state is an empty query. Values
// are normalized the same way hydration does, which keeps
// hydrate-then-persist a fixed point.
func DirectoryStateToQuery(state entity.DirectoryState) url.Values {
	query := url.Values{}

	if state.Filter.Search != "" {
		query.Set(QueryKeySearch, state.Filter.Search)
	}
	if mode := entity.ParseConsultationMode(string(state.Filter.ConsultationMode)); mode != entity.ConsultationModeNone {
		query.Set(QueryKeyMode, string(mode))
	}
	if specialties := specialtiesParam(state.Filter.Specialties); specialties != "" {
		query.Set(QueryKeySpecialties, specialties)
	}
	if sortBy := entity.ParseSortOption(string(state.Filter.SortBy)); sortBy != entity.SortNone {
		query.Set(QueryKeySort, string(sortBy))
	}
	if state.Page.CurrentPage > 1 {
		query.Set(QueryKeyPage, strconv.Itoa(state.Page.CurrentPage))
	}

	return query
}

// EncodeDirectoryState returns the canonical query string for state,
// without a leading "?".
func EncodeDirectoryState(state entity.DirectoryState) string {
	return DirectoryStateToQuery(state).Encode()
}

// JoinQuery appends an encoded query to path, leaving path bare when the
// query is empty.
func JoinQuery(path, encoded string) string {
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

func splitSpecialties(raw string) []string {
	return strings.Split(raw, specialtySeparator)
}

// specialtiesParam joins tags the way hydration will read them back. A tag
// containing the separator cannot survive the trip intact, so it is split
// here rather than on the next load.
func specialtiesParam(specialties []string) string {
	joined := strings.Join(specialties, specialtySeparator)
	normalized := entity.FilterState{}.WithSpecialties(splitSpecialties(joined)).Specialties
	return strings.Join(normalized, specialtySeparator)
}
