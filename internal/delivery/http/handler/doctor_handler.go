package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"doctor-listing/internal/delivery/dto"
	"doctor-listing/internal/usecase"
	"doctor-listing/pkg/response"
	"doctor-listing/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	listingUsecase usecase.DoctorListingUsecase
	validator      *validator.CustomValidator
}

func NewDoctorHandler(listingUsecase usecase.DoctorListingUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		listingUsecase: listingUsecase,
		validator:      validator,
	}
}

// ListDoctors derives the listing from the filter carried in the request query string
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.listingUsecase.ListDoctors(r.Context(), r.URL.RawQuery)
	if err != nil {
		writeLoadError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.listingUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			writeLoadError(w, err, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.listingUsecase.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeLoadError(w, err, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.listingUsecase.GetSpecialties(r.Context())
	if err != nil {
		writeLoadError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

// ApplyFilterEvent replays one UI event against the filter state in req.Query
func (h *DoctorHandler) ApplyFilterEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.listingUsecase.ApplyFilterEvent(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUnknownFilterEvent:
			response.Error(w, http.StatusBadRequest, "Unknown filter event", nil)
		case usecase.ErrSuggestionNotFound:
			response.Error(w, http.StatusBadRequest, "Suggested doctor not found", nil)
		default:
			writeLoadError(w, err, "Failed to apply filter event")
		}
		return
	}

	response.Success(w, http.StatusOK, "Filter event applied successfully", result)
}

func writeLoadError(w http.ResponseWriter, err error, message string) {
	if err == usecase.ErrDoctorsUnavailable {
		response.Unavailable(w, "Doctor listing is temporarily unavailable")
		return
	}
	response.InternalServerError(w, message)
}
