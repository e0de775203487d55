package usecase

import (
	"cmp"
	"slices"
	"strings"

	"doctor-directory/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ApplyFilters returns the records matching filter, in fetch order unless a
// sort key is set. The input slice is never modified.
//
// ConsultationMode is accepted but has no effect: the source data carries
// no per-record consultation channel to match against.
func ApplyFilters(doctors []entity.Doctor, filter entity.FilterState) []entity.Doctor {
	// A Caser is stateful; keep one per call.
	lower := cases.Lower(language.Und)
	term := lower.String(filter.Search)

	result := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if term != "" && !strings.Contains(lower.String(doctor.Name), term) {
			continue
		}
		if len(filter.Specialties) > 0 && !sharesSpecialty(doctor.Specialties, filter.Specialties) {
			continue
		}
		result = append(result, doctor)
	}

	sortDoctors(result, filter.SortBy)
	return result
}

func sharesSpecialty(have, want []string) bool {
	for _, s := range have {
		if slices.Contains(want, s) {
			return true
		}
	}
	return false
}

// sortDoctors sorts in place. Equal keys keep their relative fetch order.
func sortDoctors(doctors []entity.Doctor, sortBy entity.SortOption) {
	switch sortBy {
	case entity.SortByFees:
		slices.SortStableFunc(doctors, func(a, b entity.Doctor) int {
			return a.Fees.Cmp(b.Fees)
		})
	case entity.SortByExperience:
		slices.SortStableFunc(doctors, func(a, b entity.Doctor) int {
			return cmp.Compare(b.Experience, a.Experience)
		})
	}
}
