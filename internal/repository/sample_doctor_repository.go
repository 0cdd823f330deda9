package repository

import (
	"context"

	"doctor-listing/internal/domain/entity"
	domainRepo "doctor-listing/internal/domain/repository"
)

type sampleDoctorRepository struct{}

// NewSampleDoctorRepository serves the built-in sample record store
func NewSampleDoctorRepository() domainRepo.DoctorRepository {
	return &sampleDoctorRepository{}
}

func (r *sampleDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	return SampleDoctors(), nil
}

// SampleDoctors returns a fresh copy of the eight sample doctors
func SampleDoctors() []entity.Doctor {
	both := func() entity.ModeList {
		return entity.ModeList{entity.ModeVideoConsult, entity.ModeInClinic}
	}
	clinicOnly := func() entity.ModeList {
		return entity.ModeList{entity.ModeInClinic}
	}

	return []entity.Doctor{
		{
			ID:                1,
			Name:              "Munaf Inamdar",
			Specialties:       entity.StringList{"General Physician"},
			Qualification:     "MBBS, MD-General Medicine",
			ExperienceYears:   27,
			Clinic:            entity.PlainClinic("Apex Multispeciality and Maternity Hospital"),
			Location:          "Kondhawa Khurd",
			Fees:              600,
			ConsultationModes: both(),
			Image:             "/doctor-1.jpg",
		},
		{
			ID:                2,
			Name:              "Subhash Bajaj",
			Specialties:       entity.StringList{"General Physician"},
			Qualification:     "MBBS, Diploma in Cardiology",
			ExperienceYears:   11,
			Clinic:            entity.PlainClinic("Dr. Bajaj Wellness Clinic"),
			Location:          "Wanowrie",
			Fees:              600,
			ConsultationModes: clinicOnly(),
			Image:             "/doctor-2.jpg",
		},
		{
			ID:                3,
			Name:              "Mufaddal Zakir",
			Specialties:       entity.StringList{"General Physician"},
			Qualification:     "MBBS",
			ExperienceYears:   27,
			Clinic:            entity.PlainClinic("Sparsh Polyclinic"),
			Location:          "Kondhawa",
			Fees:              600,
			ConsultationModes: both(),
			Image:             "/doctor-3.jpg",
		},
		{
			ID:                4,
			Name:              "Ajay Gangoli",
			Specialties:       entity.StringList{"General Physician"},
			Qualification:     "MBBS",
			ExperienceYears:   34,
			Clinic:            entity.PlainClinic("Niramaya Clinic"),
			Location:          "Wanowrie",
			Fees:              400,
			ConsultationModes: clinicOnly(),
			Image:             "/doctor-4.jpg",
		},
		{
			ID:                5,
			Name:              "Khushi Patel",
			Specialties:       entity.StringList{"Dentist"},
			Qualification:     "BDS, MDS-Orthodontics",
			ExperienceYears:   31,
			Clinic:            entity.PlainClinic("Dr Khushi's Dental Planet"),
			Location:          "Wanowrie",
			Fees:              300,
			ConsultationModes: clinicOnly(),
			Image:             "/doctor-1.jpg",
		},
		{
			ID:                6,
			Name:              "Chhaya Vora",
			Specialties:       entity.StringList{"Neurologist"},
			Qualification:     "MBBS, MD-Neurology",
			ExperienceYears:   39,
			Clinic:            entity.PlainClinic("Dr. Chaya Vora"),
			Location:          "Kondhawa",
			Fees:              400,
			ConsultationModes: both(),
			Image:             "/doctor-2.jpg",
		},
		{
			ID:                7,
			Name:              "Kshitija Jagdale",
			Specialties:       entity.StringList{"Dentist"},
			Qualification:     "BDS, MDS",
			ExperienceYears:   13,
			Clinic:            entity.PlainClinic("The Dent Inn Advanced Dental Clinic"),
			Location:          "Wanowrie",
			Fees:              500,
			ConsultationModes: clinicOnly(),
			Image:             "/doctor-3.jpg",
		},
		{
			ID:                8,
			Name:              "Murtuza Agashiwala",
			Specialties:       entity.StringList{"Oncologist"},
			Qualification:     "MBBS, MD-Oncology",
			ExperienceYears:   19,
			Clinic:            entity.PlainClinic("Dr Murtaza M. Agashiwala's Clinic"),
			Location:          "Kondhawa",
			Fees:              250,
			ConsultationModes: both(),
			Image:             "/doctor-4.jpg",
		},
	}
}
