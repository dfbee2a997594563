package repository

import (
	"medibook/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	// FindDetailByUserID preloads address, telephones, specialty, city and
	// weekly availability for the doctor-detail endpoint.
	FindDetailByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAllActive(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, int64, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	UpsertAddress(db *gorm.DB, address *entity.DoctorAddress) error
	ReplaceTelephones(db *gorm.DB, doctorID uuid.UUID, numbers []string) error
}
