package dto

import "github.com/google/uuid"

// Response DTOs

type ReportRowResponse struct {
	AppointmentID       uuid.UUID `json:"appointment_id"`
	PatientFullName     string    `json:"patient_full_name"`
	PatientNationalCode string    `json:"patient_national_code,omitempty"`
	PatientPhoneNumber  string    `json:"patient_phone_number,omitempty"`
	Date                string    `json:"date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	Status              string    `json:"status"`
	Paid                bool      `json:"paid"`
}

type ReportResponse struct {
	From  string              `json:"from"`
	To    string              `json:"to"`
	Rows  []ReportRowResponse `json:"rows"`
	Total int                 `json:"total"`
}
