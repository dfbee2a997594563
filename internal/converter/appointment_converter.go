package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		BookingCode: appointment.BookingCode,
		DoctorID:    appointment.DoctorID,
		SlotID:      appointment.SlotID,
		Date:        appointment.Date.Format("2006-01-02"),
		Status:      string(appointment.Status),
		Paid:        appointment.Paid,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	if appointment.Slot.ID != 0 {
		response.StartTime = appointment.Slot.StartTime
		response.EndTime = appointment.Slot.EndTime
	}
	if appointment.Doctor.User.FullName != "" {
		response.DoctorName = appointment.Doctor.User.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AppointmentToReportRow flattens an appointment into a doctor report row.
// Patient.User must be preloaded.
func AppointmentToReportRow(appointment *entity.Appointment) dto.ReportRowResponse {
	return dto.ReportRowResponse{
		AppointmentID:       appointment.ID,
		PatientFullName:     appointment.Patient.User.FullName,
		PatientNationalCode: appointment.Patient.User.NationalCode,
		PatientPhoneNumber:  phoneOrEmpty(appointment.Patient.User.PhoneNumber),
		Date:                appointment.Date.Format("2006-01-02"),
		StartTime:           appointment.Slot.StartTime,
		EndTime:             appointment.Slot.EndTime,
		Status:              string(appointment.Status),
		Paid:                appointment.Paid,
	}
}
