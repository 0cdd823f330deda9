package dto

// Request DTOs

type FilterEventRequest struct {
	Query string `json:"query" validate:"max=2048"` // Current query string of the page
	Type  string `json:"type" validate:"required,oneof=search toggle_specialty toggle_mode toggle_sort select_suggestion clear_all"`
	Value string `json:"value" validate:"max=2048"`
}

// Response DTOs

type AvatarResponse struct {
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

type DoctorResponse struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	DisplayName       string         `json:"display_name"`
	Specialties       []string       `json:"specialties"`
	PrimarySpecialty  string         `json:"primary_specialty"`
	Qualification     string         `json:"qualification"`
	ExperienceYears   int            `json:"experience_years"`
	Clinic            string         `json:"clinic"`
	ClinicAddress     string         `json:"clinic_address,omitempty"`
	Location          string         `json:"location"`
	Fees              int            `json:"fees"`
	ConsultationModes []string       `json:"consultation_modes"`
	Image             string         `json:"image,omitempty"`
	Avatar            AvatarResponse `json:"avatar"`
}

type FilterStateResponse struct {
	SearchTerm       string   `json:"search"`
	Specialties      []string `json:"specialties"`
	ConsultationMode string   `json:"mode"`
	SortBy           string   `json:"sort"`
}

type DoctorListResponse struct {
	Doctors          []DoctorResponse    `json:"doctors"`
	Total            int                 `json:"total"`
	Filters          FilterStateResponse `json:"filters"`
	Query            string              `json:"query"`
	SpecialtyCatalog []string            `json:"specialty_catalog"`
}

type SuggestionResponse struct {
	ID               int            `json:"id"`
	DisplayName      string         `json:"display_name"`
	PrimarySpecialty string         `json:"primary_specialty"`
	Avatar           AvatarResponse `json:"avatar"`
}

type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
	Visible     bool                 `json:"visible"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

// NavigationResponse tells the page how to reflect the new filter state in its address bar
type NavigationResponse struct {
	Query          string `json:"query"`
	Replace        bool   `json:"replace"`
	PreserveScroll bool   `json:"preserve_scroll"`
}

type FilterEventResponse struct {
	Listing     DoctorListResponse     `json:"listing"`
	Suggestions SuggestionListResponse `json:"suggestions"`
	Navigation  NavigationResponse     `json:"navigation"`
}
