package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateDoctorProfileRequest struct {
	FullName     string   `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber  string   `json:"phone_number" validate:"omitempty,min=10,max=20"`
	NationalCode string   `json:"national_code" validate:"omitempty,len=10"`
	MedicalCode  string   `json:"medical_code" validate:"omitempty"`
	SpecialtyID  *uint    `json:"specialty_id" validate:"omitempty,min=1"`
	CityID       *uint    `json:"city_id" validate:"omitempty,min=1"`
	VisitCost    *int64   `json:"visit_cost" validate:"omitempty,min=0"`
	Biography    *string  `json:"biography" validate:"omitempty"`
	Address      *string  `json:"address" validate:"omitempty"`
	Lat          *string  `json:"lat" validate:"omitempty"`
	Lng          *string  `json:"lng" validate:"omitempty"`
	Telephones   []string `json:"telephones" validate:"omitempty,dive,min=5,max=20"`
	OldPassword  string   `json:"old_password" validate:"omitempty"`
	NewPassword  string   `json:"new_password" validate:"omitempty,min=6"`
}

type ListDoctorsRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Province  string `json:"province"`
	City      string `json:"city"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

// Response DTOs

type DoctorProfileResponse struct {
	MedicalCode string `json:"medical_code"`
	VisitCost   int64  `json:"visit_cost"`
	Biography   string `json:"biography,omitempty"`
}

type AddressResponse struct {
	Address string          `json:"address,omitempty"`
	Lat     decimal.Decimal `json:"lat"`
	Lng     decimal.Decimal `json:"lng"`
}

type DoctorResponse struct {
	ID          uuid.UUID          `json:"id"`
	FullName    string             `json:"full_name"`
	MedicalCode string             `json:"medical_code"`
	VisitCost   int64              `json:"visit_cost"`
	Biography   string             `json:"biography,omitempty"`
	Specialty   *SpecialtyResponse `json:"specialty,omitempty"`
	City        *CityResponse      `json:"city,omitempty"`
	IsActive    *bool              `json:"is_active,omitempty"`
}

type DoctorDetailResponse struct {
	DoctorResponse
	Address    *AddressResponse  `json:"address,omitempty"`
	Telephones []string          `json:"telephones"`
	WeekDays   []WeekdayResponse `json:"week_days"`
}

type WeekdayResponse struct {
	ScheduleID uint           `json:"schedule_id"`
	Weekday    string         `json:"weekday"`
	Slots      []SlotResponse `json:"slots"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}
