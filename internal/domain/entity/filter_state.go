package entity

import (
	"slices"
	"strings"
)

// ConsultationMode is the consultation channel a user asked for.
type ConsultationMode string

const (
	ConsultationModeNone     ConsultationMode = ""
	ConsultationModeVideo    ConsultationMode = "Video Consult"
	ConsultationModeInClinic ConsultationMode = "In Clinic"
)

// ParseConsultationMode maps a free-form value onto a known mode.
// Anything outside the enum is treated as unset.
func ParseConsultationMode(s string) ConsultationMode {
	switch mode := ConsultationMode(s); mode {
	case ConsultationModeVideo, ConsultationModeInClinic:
		return mode
	default:
		return ConsultationModeNone
	}
}

// SortOption selects the ordering of the filtered list.
type SortOption string

const (
	SortNone         SortOption = ""
	SortByFees       SortOption = "fees"
	SortByExperience SortOption = "experience"
)

// ParseSortOption maps a free-form value onto a known sort key.
// Anything outside the enum is treated as unset.
func ParseSortOption(s string) SortOption {
	switch opt := SortOption(s); opt {
	case SortByFees, SortByExperience:
		return opt
	default:
		return SortNone
	}
}

// FilterState is the user-controlled search, filter and sort selection.
// Values are replaced, never mutated: every With* method returns a copy.
type FilterState struct {
	Search           string
	ConsultationMode ConsultationMode
	Specialties      []string
	SortBy           SortOption
}

func (f FilterState) WithSearch(search string) FilterState {
	f.Search = search
	return f
}

func (f FilterState) WithConsultationMode(mode ConsultationMode) FilterState {
	f.ConsultationMode = mode
	return f
}

func (f FilterState) WithSortBy(sortBy SortOption) FilterState {
	f.SortBy = sortBy
	return f
}

// WithSpecialties replaces the selected specialties. Blank and repeated
// tags are dropped; the order of first appearance is kept.
func (f FilterState) WithSpecialties(specialties []string) FilterState {
	f.Specialties = normalizeSpecialties(specialties)
	return f
}

// ToggleSpecialty selects the tag if it is not selected and deselects it
// otherwise.
func (f FilterState) ToggleSpecialty(specialty string) FilterState {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return f
	}
	if f.HasSpecialty(specialty) {
		f.Specialties = slices.DeleteFunc(slices.Clone(f.Specialties), func(s string) bool {
			return s == specialty
		})
		return f
	}
	f.Specialties = append(slices.Clone(f.Specialties), specialty)
	return f
}

// RestrictSpecialties keeps only the selected tags accepted by known.
func (f FilterState) RestrictSpecialties(known func(string) bool) FilterState {
	if len(f.Specialties) == 0 {
		return f
	}
	f.Specialties = slices.DeleteFunc(slices.Clone(f.Specialties), func(s string) bool {
		return !known(s)
	})
	return f
}

func (f FilterState) HasSpecialty(specialty string) bool {
	return slices.Contains(f.Specialties, specialty)
}

// PageState holds the 1-based page currently shown.
type PageState struct {
	CurrentPage int
}

// DirectoryState is everything the navigable URL carries.
type DirectoryState struct {
	Filter FilterState
	Page   PageState
}

// NewDirectoryState returns the state of a URL without a query string.
func NewDirectoryState() DirectoryState {
	return DirectoryState{Page: PageState{CurrentPage: 1}}
}

// ApplyFilter installs a new filter selection. Any filter change sends the
// user back to the first page.
func (s DirectoryState) ApplyFilter(filter FilterState) DirectoryState {
	s.Filter = filter
	s.Page = PageState{CurrentPage: 1}
	return s
}

// WithPage moves to the given page. Non-positive pages become page 1.
func (s DirectoryState) WithPage(page int) DirectoryState {
	if page < 1 {
		page = 1
	}
	s.Page = PageState{CurrentPage: page}
	return s
}

func normalizeSpecialties(specialties []string) []string {
	result := make([]string, 0, len(specialties))
	for _, s := range specialties {
		s = strings.TrimSpace(s)
		if s == "" || slices.Contains(result, s) {
			continue
		}
		result = append(result, s)
	}
	return result
}
