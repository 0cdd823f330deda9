package listing

import (
	"strings"

	"doctor-listing/internal/domain/entity"
)

// SuggestionLimit caps the autocomplete list
const SuggestionLimit = 3

// Suggest returns at most SuggestionLimit doctors matching query, in record store order.
// It ignores every other filter dimension. Blank queries yield no suggestions.
func Suggest(records []entity.Doctor, query string) []entity.Doctor {
	if strings.TrimSpace(query) == "" {
		return []entity.Doctor{}
	}

	term := strings.ToLower(query)
	matches := make([]entity.Doctor, 0, SuggestionLimit)
	for i := range records {
		if !matchesTerm(&records[i], term) {
			continue
		}
		matches = append(matches, records[i])
		if len(matches) == SuggestionLimit {
			break
		}
	}
	return matches
}

// SuggestionsVisible decides whether the autocomplete dropdown is shown
func SuggestionsVisible(query string, suggestions []entity.Doctor) bool {
	return strings.TrimSpace(query) != "" && len(suggestions) > 0
}
