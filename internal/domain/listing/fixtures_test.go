package listing

import "doctor-listing/internal/domain/entity"

func doctor(id int, name, specialty string, fees, experience int, modes ...entity.ConsultationMode) entity.Doctor {
	return entity.Doctor{
		ID:                id,
		Name:              name,
		Specialties:       entity.StringList{specialty},
		ExperienceYears:   experience,
		Clinic:            entity.PlainClinic(name + " Clinic"),
		Fees:              fees,
		ConsultationModes: entity.ModeList(modes),
	}
}

// sampleRecords mirrors the built-in sample record store
func sampleRecords() []entity.Doctor {
	video, clinic := entity.ModeVideoConsult, entity.ModeInClinic
	return []entity.Doctor{
		doctor(1, "Munaf Inamdar", "General Physician", 600, 27, video, clinic),
		doctor(2, "Subhash Bajaj", "General Physician", 600, 11, clinic),
		doctor(3, "Mufaddal Zakir", "General Physician", 600, 27, video, clinic),
		doctor(4, "Ajay Gangoli", "General Physician", 400, 34, clinic),
		doctor(5, "Khushi Patel", "Dentist", 300, 31, clinic),
		doctor(6, "Chhaya Vora", "Neurologist", 400, 39, video, clinic),
		doctor(7, "Kshitija Jagdale", "Dentist", 500, 13, clinic),
		doctor(8, "Murtuza Agashiwala", "Oncologist", 250, 19, video, clinic),
	}
}

func ids(doctors []entity.Doctor) []int {
	out := make([]int, len(doctors))
	for i, d := range doctors {
		out[i] = d.ID
	}
	return out
}
