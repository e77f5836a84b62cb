package http

import (
	"encoding/json"
	"net/http"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/patient"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PatientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type patientHandlerImpl struct {
	patientService patient.Service
}

func NewPatientHandler(patientService patient.Service) PatientHandler {
	return &patientHandlerImpl{patientService: patientService}
}

func (h *patientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req patient.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.patientService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Patient created", result)
}

func (h *patientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.patientService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *patientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.patientService.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *patientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req patient.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.patientService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
