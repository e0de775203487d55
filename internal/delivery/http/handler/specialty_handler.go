package handler

import (
	"net/http"

	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
)

type SpecialtyHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewSpecialtyHandler(directoryUsecase usecase.DirectoryUsecase) *SpecialtyHandler {
	return &SpecialtyHandler{
		directoryUsecase: directoryUsecase,
	}
}

// GetSpecialties returns the sorted specialty facet list.
func (h *SpecialtyHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties := h.directoryUsecase.GetSpecialties(r.Context())

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
