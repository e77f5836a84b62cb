package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AppointmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateBookingStatus(w http.ResponseWriter, r *http.Request)
	AdvanceFlow(w http.ResponseWriter, r *http.Request)
}

type appointmentHandlerImpl struct {
	appointmentService appointment.Service
}

func NewAppointmentHandler(appointmentService appointment.Service) AppointmentHandler {
	return &appointmentHandlerImpl{appointmentService: appointmentService}
}

func (h *appointmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req appointment.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.appointmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Appointment created", result)
}

func (h *appointmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.appointmentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *appointmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRangeFromQuery(r, 7)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.appointmentService.ListByDateRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *appointmentHandlerImpl) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req appointment.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.AppointmentID = chi.URLParam(r, "id")

	if err := h.appointmentService.UpdateBookingStatus(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Booking status updated", nil)
}

func (h *appointmentHandlerImpl) AdvanceFlow(w http.ResponseWriter, r *http.Request) {
	var req appointment.AdvanceFlowRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.AppointmentID = chi.URLParam(r, "id")

	result, err := h.appointmentService.AdvanceFlow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// dateRangeFromQuery parses start_date/end_date query params, defaulting to a
// window of defaultDays starting today.
func dateRangeFromQuery(r *http.Request, defaultDays int) (time.Time, time.Time, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, defaultDays)

	if v := r.URL.Query().Get("start_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}

	return start, end, nil
}
