package listing

import (
	"sort"

	"doctor-listing/internal/domain/entity"
)

// Store is an immutable snapshot of the record store for one page session
type Store struct {
	records []entity.Doctor
	catalog []string
	byID    map[int]int
}

// NewStore copies records and computes the specialty catalog once
func NewStore(records []entity.Doctor) *Store {
	copied := make([]entity.Doctor, len(records))
	copy(copied, records)

	byID := make(map[int]int, len(copied))
	for i, d := range copied {
		if _, exists := byID[d.ID]; !exists {
			byID[d.ID] = i
		}
	}

	return &Store{
		records: copied,
		catalog: SpecialtyCatalog(copied),
		byID:    byID,
	}
}

// Records returns the doctors in store order
func (s *Store) Records() []entity.Doctor {
	out := make([]entity.Doctor, len(s.records))
	copy(out, s.records)
	return out
}

// Catalog returns the sorted, deduplicated specialty labels
func (s *Store) Catalog() []string {
	out := make([]string, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *Store) Len() int {
	return len(s.records)
}

// FindByID returns the first record with the given id
func (s *Store) FindByID(id int) (entity.Doctor, bool) {
	i, ok := s.byID[id]
	if !ok {
		return entity.Doctor{}, false
	}
	return s.records[i], true
}

// SpecialtyCatalog lists every specialty appearing in records, deduplicated and sorted
func SpecialtyCatalog(records []entity.Doctor) []string {
	seen := make(map[string]struct{})
	catalog := make([]string, 0)
	for _, d := range records {
		for _, s := range d.Specialties {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			catalog = append(catalog, s)
		}
	}
	sort.Strings(catalog)
	return catalog
}
