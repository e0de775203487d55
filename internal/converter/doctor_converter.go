package converter

import (
	"slices"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := doctorResponse(*doctor)
	return &response
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = doctorResponse(doctor)
	}
	return responses
}

// FilterStateToResponse converts a FilterState to its wire form
func FilterStateToResponse(filter entity.FilterState) dto.FilterStateResponse {
	specialties := slices.Clone(filter.Specialties)
	if specialties == nil {
		specialties = []string{}
	}

	return dto.FilterStateResponse{
		Search:           filter.Search,
		ConsultationMode: string(filter.ConsultationMode),
		Specialties:      specialties,
		SortBy:           string(filter.SortBy),
	}
}

func doctorResponse(doctor entity.Doctor) dto.DoctorResponse {
	specialties := slices.Clone(doctor.Specialties)
	if specialties == nil {
		specialties = []string{}
	}

	return dto.DoctorResponse{
		ID:          doctor.ID,
		Name:        doctor.Name,
		Specialties: specialties,
		Experience:  doctor.Experience,
		Fees:        doctor.Fees,
		Image:       doctor.Image,
	}
}
