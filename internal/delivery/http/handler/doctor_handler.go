package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"

	"github.com/gorilla/mux"
)

// HeaderReplaceURL asks an HTMX client to replace the current history
// entry with the canonical directory URL.
const HeaderReplaceURL = "HX-Replace-Url"

type DoctorHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
	pagePath         string
}

func NewDoctorHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator, pagePath string) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
		pagePath:         pagePath,
	}
}

// ListDoctors handles the directory listing
// @Summary List doctors
// @Description Filtered, sorted page of the directory for the state in the query string
// @Tags Doctors
// @Produce json
// @Param search query string false "Name substring"
// @Param mode query string false "Video Consult or In Clinic"
// @Param specialties query string false "Comma separated specialties"
// @Param sort query string false "fees or experience"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	state := converter.QueryToDirectoryState(r.URL.Query())

	result := h.directoryUsecase.Browse(r.Context(), state)

	h.writeDirectory(w, result)
}

// UpdateFilters handles a single filter change
// @Summary Update directory filters
// @Description Applies one field change to the state in the query string and returns the new page
// @Tags Doctors
// @Accept json
// @Produce json
// @Param request body dto.FilterUpdateRequest true "Filter change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctors/filters [post]
func (h *DoctorHandler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state := converter.QueryToDirectoryState(r.URL.Query())

	result, err := h.directoryUsecase.UpdateFilter(r.Context(), state, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidFilterField):
			response.BadRequest(w, "Invalid filter field")
		default:
			response.InternalServerError(w, "Failed to update filters")
		}
		return
	}

	h.writeDirectory(w, result)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// GetSuggestions handles the name autocomplete
// @Summary Name suggestions
// @Description Up to three doctor names containing the search term
// @Tags Doctors
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {object} response.Response
// @Router /suggestions [get]
func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	suggestions := h.directoryUsecase.GetSuggestions(r.Context(), search)

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) writeDirectory(w http.ResponseWriter, result *dto.DirectoryResponse) {
	result.URL = converter.JoinQuery(h.pagePath, result.Query)
	w.Header().Set(HeaderReplaceURL, result.URL)

	meta := &response.Meta{
		Page:       result.Page,
		Limit:      result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}

	message := "Doctors retrieved successfully"
	if result.Total == 0 {
		message = usecase.MessageNoDoctors
	}

	response.SuccessWithMeta(w, http.StatusOK, message, result, meta)
}
