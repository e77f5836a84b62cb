package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/commission"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CommissionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	GetEarnings(w http.ResponseWriter, r *http.Request)
}

type commissionHandlerImpl struct {
	commissionService commission.Service
}

func NewCommissionHandler(commissionService commission.Service) CommissionHandler {
	return &commissionHandlerImpl{commissionService: commissionService}
}

func (h *commissionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter commission.CommissionFilter
	if v := r.URL.Query().Get("staff_id"); v != "" {
		filter.StaffID = &v
	}
	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		filter.PeriodMonth = &month
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		filter.PeriodYear = &year
	}

	result, err := h.commissionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *commissionHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.IDs) == 0 {
		response.BadRequest(w, "ids must not be empty", nil)
		return
	}

	if err := h.commissionService.MarkPaid(r.Context(), req.IDs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Commissions marked as paid", nil)
}

func (h *commissionHandlerImpl) GetEarnings(w http.ResponseWriter, r *http.Request) {
	result, err := h.commissionService.GetEarnings(r.Context(), chi.URLParam(r, "paymentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
