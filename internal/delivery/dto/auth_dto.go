package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterPatientRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	FullName     string `json:"full_name" validate:"required,min=2"`
	PhoneNumber  string `json:"phone_number" validate:"required,min=10,max=20"`
	NationalCode string `json:"national_code" validate:"omitempty,len=10"`
	DateOfBirth  string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender       string `json:"gender" validate:"omitempty,oneof=M F"`
	Address      string `json:"address" validate:"omitempty"`
}

type RegisterDoctorRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	FullName     string `json:"full_name" validate:"required,min=2"`
	PhoneNumber  string `json:"phone_number" validate:"required,min=10,max=20"`
	NationalCode string `json:"national_code" validate:"omitempty,len=10"`
	MedicalCode  string `json:"medical_code" validate:"required"`
	SpecialtyID  *uint  `json:"specialty_id" validate:"omitempty,min=1"`
	CityID       *uint  `json:"city_id" validate:"omitempty,min=1"`
	VisitCost    int64  `json:"visit_cost" validate:"omitempty,min=0"`
	Biography    string `json:"biography" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"full_name"`
	PhoneNumber    string                  `json:"phone_number,omitempty"`
	NationalCode   string                  `json:"national_code,omitempty"`
	Role           string                  `json:"role"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
