package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// phoneOrEmpty unwraps the nullable phone column for response DTOs.
func phoneOrEmpty(phone *string) string {
	if phone == nil {
		return ""
	}
	return *phone
}

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		PhoneNumber:  phoneOrEmpty(user.PhoneNumber),
		NationalCode: user.NationalCode,
		Role:         user.Role.RoleName,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = &dto.DoctorProfileResponse{
			MedicalCode: user.DoctorProfile.MedicalCode,
			VisitCost:   user.DoctorProfile.VisitCost,
			Biography:   user.DoctorProfile.Biography,
		}
	}
	if user.PatientProfile != nil {
		response.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}

	return response
}

// PatientProfileToResponse converts a PatientProfile entity to PatientProfileResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientProfileResponse{
		UserID:  profile.UserID,
		Gender:  profile.Gender,
		Address: profile.Address,
	}
	if !profile.DateOfBirth.IsZero() {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}

	return response
}
