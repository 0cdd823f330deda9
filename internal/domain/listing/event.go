package listing

import (
	"errors"
	"strconv"

	"doctor-listing/internal/domain/entity"
)

var (
	ErrUnknownEvent       = errors.New("unknown filter event")
	ErrSuggestionNotFound = errors.New("suggested doctor not found")
)

// EventType names a discrete UI event that mutates the filter state
type EventType string

const (
	EventSearch           EventType = "search"
	EventToggleSpecialty  EventType = "toggle_specialty"
	EventToggleMode       EventType = "toggle_mode"
	EventToggleSort       EventType = "toggle_sort"
	EventSelectSuggestion EventType = "select_suggestion"
	EventClearAll         EventType = "clear_all"
)

// Event is one user interaction. For select_suggestion, Value holds the doctor id.
type Event struct {
	Type  EventType
	Value string
}

// Apply dispatches the event to the matching mutation
func (s *Session) Apply(ev Event) error {
	switch ev.Type {
	case EventSearch:
		s.SetSearchTerm(ev.Value)
	case EventToggleSpecialty:
		s.ToggleSpecialty(ev.Value)
	case EventToggleMode:
		s.ToggleConsultationMode(entity.ConsultationMode(ev.Value))
	case EventToggleSort:
		s.ToggleSort(entity.SortKey(ev.Value))
	case EventSelectSuggestion:
		id, err := strconv.Atoi(ev.Value)
		if err != nil {
			return ErrSuggestionNotFound
		}
		doctor, ok := s.store.FindByID(id)
		if !ok {
			return ErrSuggestionNotFound
		}
		s.SelectSuggestion(doctor)
	case EventClearAll:
		s.ClearAll()
	default:
		return ErrUnknownEvent
	}
	return nil
}
