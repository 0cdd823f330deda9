package converter

import (
	"doctor-listing/internal/delivery/dto"
	"doctor-listing/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	modes := make([]string, len(doctor.ConsultationModes))
	for i, m := range doctor.ConsultationModes {
		modes[i] = string(m)
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		DisplayName:       doctor.DisplayName(),
		Specialties:       nonNil(doctor.Specialties),
		PrimarySpecialty:  doctor.PrimarySpecialty(),
		Qualification:     doctor.DisplayQualification(),
		ExperienceYears:   doctor.ExperienceYears,
		Clinic:            doctor.Clinic.Name(),
		ClinicAddress:     doctor.Clinic.Address(),
		Location:          doctor.Location,
		Fees:              doctor.Fees,
		ConsultationModes: modes,
		Image:             doctor.Image,
		Avatar:            avatarOf(doctor),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorsToSuggestions keeps only what the autocomplete dropdown renders
func DoctorsToSuggestions(doctors []entity.Doctor) []dto.SuggestionResponse {
	responses := make([]dto.SuggestionResponse, len(doctors))
	for i := range doctors {
		d := &doctors[i]
		responses[i] = dto.SuggestionResponse{
			ID:               d.ID,
			DisplayName:      d.DisplayName(),
			PrimarySpecialty: d.PrimarySpecialty(),
			Avatar:           avatarOf(d),
		}
	}
	return responses
}

// FilterToResponse converts the filter state to its DTO
func FilterToResponse(filter entity.DoctorFilter) dto.FilterStateResponse {
	return dto.FilterStateResponse{
		SearchTerm:       filter.SearchTerm,
		Specialties:      nonNil(filter.Specialties),
		ConsultationMode: string(filter.ConsultationMode),
		SortBy:           string(filter.SortBy),
	}
}

func avatarOf(doctor *entity.Doctor) dto.AvatarResponse {
	return dto.AvatarResponse{
		Initials: doctor.Initials(),
		Color:    doctor.AvatarColor(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
