package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// SpecialtyToResponse converts a Specialty entity to SpecialtyResponse DTO
func SpecialtyToResponse(specialty *entity.Specialty) *dto.SpecialtyResponse {
	if specialty == nil {
		return nil
	}

	return &dto.SpecialtyResponse{
		ID:   specialty.ID,
		Name: specialty.Name,
	}
}

// SpecialtiesToResponses converts a slice of Specialty entities to slice of SpecialtyResponse DTOs
func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i, specialty := range specialties {
		resp := SpecialtyToResponse(&specialty)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// CityToResponse converts a City entity to CityResponse DTO
func CityToResponse(city *entity.City) *dto.CityResponse {
	if city == nil {
		return nil
	}

	return &dto.CityResponse{
		ID:       city.ID,
		Province: city.Province,
		City:     city.City,
	}
}

// CitiesToResponses converts a slice of City entities to slice of CityResponse DTOs
func CitiesToResponses(cities []entity.City) []dto.CityResponse {
	responses := make([]dto.CityResponse, len(cities))
	for i, city := range cities {
		resp := CityToResponse(&city)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
