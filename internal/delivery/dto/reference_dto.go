package dto

// Request DTOs

type CreateSpecialtyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CreateCityRequest struct {
	Province string `json:"province" validate:"required,min=2,max=60"`
	City     string `json:"city" validate:"omitempty,max=60"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}

type CityResponse struct {
	ID       uint   `json:"id"`
	Province string `json:"province"`
	City     string `json:"city,omitempty"`
}

type CityListResponse struct {
	Cities []CityResponse `json:"cities"`
	Total  int            `json:"total"`
}
