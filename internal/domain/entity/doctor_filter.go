package entity

// SortKey orders the derived doctor list
type SortKey string

const (
	SortNone       SortKey = ""
	SortFees       SortKey = "fees"
	SortExperience SortKey = "experience"
)

// IsKnown reports whether k is one of the supported sort keys, including SortNone
func (k SortKey) IsKnown() bool {
	return k == SortNone || k == SortFees || k == SortExperience
}

// DoctorFilter is the filter state of one listing page session.
// The zero value applies no restriction and keeps record store order.
type DoctorFilter struct {
	SearchTerm       string           // Case-insensitive substring of name or any specialty
	Specialties      []string         // Selection order, matched with OR semantics
	ConsultationMode ConsultationMode // Empty means any mode
	SortBy           SortKey          // Empty keeps record store order
}

// IsZero reports whether every dimension holds its default
func (f DoctorFilter) IsZero() bool {
	return f.SearchTerm == "" && len(f.Specialties) == 0 && f.ConsultationMode == "" && f.SortBy == SortNone
}

// HasSpecialty checks if a specialty is currently selected
func (f DoctorFilter) HasSpecialty(specialty string) bool {
	for _, s := range f.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the specialty slice
func (f DoctorFilter) Clone() DoctorFilter {
	if f.Specialties != nil {
		f.Specialties = append([]string(nil), f.Specialties...)
	}
	return f
}
