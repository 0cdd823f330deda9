package listing

import (
	"doctor-listing/internal/domain/entity"
)

// Navigator receives the canonical query string after every reaction.
// Implementations must replace the current location rather than push a new history
// entry, and must keep the scroll position.
type Navigator interface {
	Replace(query string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(query string)

func (f NavigatorFunc) Replace(query string) {
	f(query)
}

// Listener observes the state and derived view produced by a reaction
type Listener func(filter entity.DoctorFilter, view []entity.Doctor)

// Session owns the filter state of one page session.
// A Session is not safe for concurrent use; every mutation runs one full reaction
// (derive, write query, notify) before returning.
type Session struct {
	store     *Store
	filter    entity.DoctorFilter
	view      []entity.Doctor
	query     string
	nav       Navigator
	listeners []Listener

	suggestionsHidden bool
}

// NewSession initialises the filter from rawQuery and derives the first view from it,
// so an unfiltered view is never produced for a filtered link. nav may be nil.
func NewSession(store *Store, rawQuery string, nav Navigator) *Session {
	s := &Session{
		store:  store,
		filter: ParseQuery(rawQuery),
		nav:    nav,
	}
	s.react()
	return s
}

// OnChange registers a listener for subsequent reactions
func (s *Session) OnChange(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) Filter() entity.DoctorFilter {
	return s.filter.Clone()
}

// View returns the current derived doctor list
func (s *Session) View() []entity.Doctor {
	out := make([]entity.Doctor, len(s.view))
	copy(out, s.view)
	return out
}

// Query returns the canonical query string of the current filter
func (s *Session) Query() string {
	return s.query
}

func (s *Session) Catalog() []string {
	return s.store.Catalog()
}

// Suggestions returns autocomplete candidates for the current search term
func (s *Session) Suggestions() []entity.Doctor {
	if s.suggestionsHidden {
		return []entity.Doctor{}
	}
	return Suggest(s.store.records, s.filter.SearchTerm)
}

func (s *Session) SuggestionsVisible() bool {
	return SuggestionsVisible(s.filter.SearchTerm, s.Suggestions())
}

func (s *Session) SetSearchTerm(term string) {
	s.filter.SearchTerm = term
	s.suggestionsHidden = false
	s.react()
}

// ToggleSpecialty adds the specialty to the selection or removes it if already selected
func (s *Session) ToggleSpecialty(specialty string) {
	if specialty == "" {
		return
	}

	if s.filter.HasSpecialty(specialty) {
		kept := make([]string, 0, len(s.filter.Specialties))
		for _, sp := range s.filter.Specialties {
			if sp != specialty {
				kept = append(kept, sp)
			}
		}
		if len(kept) == 0 {
			kept = nil
		}
		s.filter.Specialties = kept
	} else {
		s.filter.Specialties = append(s.filter.Clone().Specialties, specialty)
	}
	s.react()
}

// ToggleConsultationMode selects mode, or clears the selection when mode is already active
func (s *Session) ToggleConsultationMode(mode entity.ConsultationMode) {
	if s.filter.ConsultationMode == mode {
		s.filter.ConsultationMode = ""
	} else {
		s.filter.ConsultationMode = mode
	}
	s.react()
}

// ToggleSort selects key, or clears the sort when key is already active
func (s *Session) ToggleSort(key entity.SortKey) {
	if s.filter.SortBy == key {
		s.filter.SortBy = entity.SortNone
	} else {
		s.filter.SortBy = key
	}
	s.react()
}

// SelectSuggestion searches for the chosen doctor's name and hides the dropdown
func (s *Session) SelectSuggestion(doctor entity.Doctor) {
	s.filter.SearchTerm = doctor.Name
	s.suggestionsHidden = true
	s.react()
}

// ClearAll resets every filter dimension to its default
func (s *Session) ClearAll() {
	s.filter = entity.DoctorFilter{}
	s.suggestionsHidden = false
	s.react()
}

func (s *Session) react() {
	s.view = Derive(s.store.records, s.filter)
	s.query = EncodeQuery(s.filter)

	if s.nav != nil {
		s.nav.Replace(s.query)
	}
	for _, l := range s.listeners {
		l(s.filter.Clone(), s.View())
	}
}
