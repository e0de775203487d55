package usecase

import (
	"strings"

	"doctor-directory/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxSuggestions caps the autocomplete list.
const MaxSuggestions = 3

// Suggestions returns up to MaxSuggestions names, in fetch order, that
// contain search case-insensitively. An empty search suggests nothing.
func Suggestions(doctors []entity.Doctor, search string) []string {
	suggestions := []string{}
	if search == "" {
		return suggestions
	}

	lower := cases.Lower(language.Und)
	term := lower.String(search)

	for _, doctor := range doctors {
		if strings.Contains(lower.String(doctor.Name), term) {
			suggestions = append(suggestions, doctor.Name)
			if len(suggestions) == MaxSuggestions {
				break
			}
		}
	}

	return suggestions
}
