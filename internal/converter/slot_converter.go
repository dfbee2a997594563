package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// SlotToResponse converts a ShiftSlot entity to SlotResponse DTO
func SlotToResponse(slot *entity.ShiftSlot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SlotResponse{
		ID:         slot.ID,
		ScheduleID: slot.ScheduleID,
		Weekday:    slot.Schedule.Weekday,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Capacity:   slot.Capacity,
		CreatedAt:  slot.CreatedAt,
		UpdatedAt:  slot.UpdatedAt,
	}
}

// SlotsToResponses converts a slice of ShiftSlot entities to slice of SlotResponse DTOs
func SlotsToResponses(slots []entity.ShiftSlot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		resp := SlotToResponse(&slot)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
