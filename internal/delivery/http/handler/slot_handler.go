package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"medibook/internal/delivery/dto"
	"medibook/internal/delivery/http/middleware"
	"medibook/internal/usecase"
	"medibook/pkg/response"
	"medibook/pkg/validator"

	"github.com/gorilla/mux"
)

type SlotHandler struct {
	slotUsecase usecase.ShiftSlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.ShiftSlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

func (h *SlotHandler) DefineSlot(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	var req dto.DefineSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.DefineSlot(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Times must be in HH:MM format", nil)
		case usecase.ErrInvalidRange:
			response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
		case usecase.ErrInvalidCapacity:
			response.Error(w, http.StatusBadRequest, "Capacity must be at least 1", nil)
		default:
			response.InternalServerError(w, "Failed to define slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slot defined successfully", slot)
}

func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	weekday := r.URL.Query().Get("weekday")

	slots, err := h.slotUsecase.ListSlots(r.Context(), doctorID, weekday)
	if err != nil {
		switch err {
		case usecase.ErrInvalidWeekday:
			response.Error(w, http.StatusBadRequest, "Unknown weekday", nil)
		default:
			response.InternalServerError(w, "Failed to list slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *SlotHandler) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	vars := mux.Vars(r)
	slotID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	if err := h.slotUsecase.RemoveSlot(r.Context(), doctorID, uint(slotID)); err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case usecase.ErrSlotInUse:
			response.Conflict(w, "Slot has active appointments and cannot be removed")
		default:
			response.InternalServerError(w, "Failed to remove slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot removed successfully", nil)
}
