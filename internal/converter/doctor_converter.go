package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:          profile.UserID,
		FullName:    profile.User.FullName,
		MedicalCode: profile.MedicalCode,
		VisitCost:   profile.VisitCost,
		Biography:   profile.Biography,
		IsActive:    profile.User.IsActive,
	}

	if profile.Specialty != nil {
		response.Specialty = SpecialtyToResponse(profile.Specialty)
	}
	if profile.City != nil {
		response.City = CityToResponse(profile.City)
	}

	return response
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// DoctorProfileToDetailResponse builds the full directory detail view with
// address, telephones and weekly availability.
func DoctorProfileToDetailResponse(profile *entity.DoctorProfile) *dto.DoctorDetailResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorDetailResponse{
		DoctorResponse: *DoctorProfileToResponse(profile),
		Telephones:     make([]string, 0, len(profile.Telephones)),
		WeekDays:       make([]dto.WeekdayResponse, 0, len(profile.Schedules)),
	}

	if profile.Address != nil {
		response.Address = &dto.AddressResponse{
			Address: profile.Address.Address,
			Lat:     profile.Address.Lat,
			Lng:     profile.Address.Lng,
		}
	}

	for _, phone := range profile.Telephones {
		response.Telephones = append(response.Telephones, phone.CallNumber)
	}

	for _, schedule := range profile.Schedules {
		weekday := dto.WeekdayResponse{
			ScheduleID: schedule.ID,
			Weekday:    schedule.Weekday,
			Slots:      SlotsToResponses(schedule.Slots),
		}
		response.WeekDays = append(response.WeekDays, weekday)
	}

	return response
}
