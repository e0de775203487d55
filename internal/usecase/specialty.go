package usecase

import (
	"slices"

	"doctor-directory/internal/domain/entity"
)

// AllSpecialties returns every specialty tag present across doctors,
// sorted and deduplicated. It returns an empty slice for no records.
func AllSpecialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	specialties := []string{}

	for _, doctor := range doctors {
		for _, s := range doctor.Specialties {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			specialties = append(specialties, s)
		}
	}

	slices.Sort(specialties)
	return specialties
}
