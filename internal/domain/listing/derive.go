// Package listing derives the visible doctor list, autocomplete suggestions and
// specialty catalog from an immutable record store and a DoctorFilter, and maps
// that filter to and from the page query string.
package listing

import (
	"sort"
	"strings"

	"doctor-listing/internal/domain/entity"
)

// Derive applies the filter to records and returns the matching doctors.
// The input slice is never modified; with no sort key the result keeps record store order.
func Derive(records []entity.Doctor, filter entity.DoctorFilter) []entity.Doctor {
	result := make([]entity.Doctor, 0, len(records))

	var selected map[string]struct{}
	if len(filter.Specialties) > 0 {
		selected = make(map[string]struct{}, len(filter.Specialties))
		for _, s := range filter.Specialties {
			selected[s] = struct{}{}
		}
	}

	// Unrecognized modes restrict nothing
	applyMode := filter.ConsultationMode.IsKnown()
	term := strings.ToLower(filter.SearchTerm)

	for i := range records {
		doctor := &records[i]

		if term != "" && !matchesTerm(doctor, term) {
			continue
		}
		if selected != nil && !hasAnySpecialty(doctor, selected) {
			continue
		}
		if applyMode && !doctor.SupportsMode(filter.ConsultationMode) {
			continue
		}

		result = append(result, *doctor)
	}

	switch filter.SortBy {
	case entity.SortFees:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Fees < result[j].Fees
		})
	case entity.SortExperience:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ExperienceYears > result[j].ExperienceYears
		})
	}

	return result
}

// Matches reports whether the doctor's name or any specialty contains term, ignoring case
func Matches(doctor *entity.Doctor, term string) bool {
	return matchesTerm(doctor, strings.ToLower(term))
}

// matchesTerm expects an already lower-cased term
func matchesTerm(doctor *entity.Doctor, term string) bool {
	if strings.Contains(strings.ToLower(doctor.Name), term) {
		return true
	}
	for _, s := range doctor.Specialties {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

func hasAnySpecialty(doctor *entity.Doctor, selected map[string]struct{}) bool {
	for _, s := range doctor.Specialties {
		if _, ok := selected[s]; ok {
			return true
		}
	}
	return false
}
