package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientProfileRequest struct {
	FullName     string  `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber  string  `json:"phone_number" validate:"omitempty,min=10,max=20"`
	NationalCode string  `json:"national_code" validate:"omitempty,len=10"`
	DateOfBirth  string  `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender       string  `json:"gender" validate:"omitempty,oneof=M F"`
	Address      *string `json:"address" validate:"omitempty"`
	OldPassword  string  `json:"old_password" validate:"omitempty"`
	NewPassword  string  `json:"new_password" validate:"omitempty,min=6"`
}

// Response DTOs

type PatientProfileResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Address     string    `json:"address,omitempty"`
}
