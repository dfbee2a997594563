package repository

import (
	"medibook/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
	FindByID(db *gorm.DB, id uint) (*entity.Specialty, error)
}

type CityRepository interface {
	Create(db *gorm.DB, city *entity.City) error
	FindAll(db *gorm.DB) ([]entity.City, error)
	FindByID(db *gorm.DB, id uint) (*entity.City, error)
}
