package repository

import (
	"errors"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindDetailByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.
		Preload("User").
		Preload("Specialty").
		Preload("City").
		Preload("Address").
		Preload("Telephones").
		Preload("Schedules.Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("shift_slots.start_time ASC")
		}).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindAllActive returns doctors whose user account is active, with optional
// name/specialty/city filters and page/limit pagination.
func (r *doctorProfileRepository) FindAllActive(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, int64, error) {
	query := db.Model(&entity.DoctorProfile{}).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("users.is_active = ?", true)

	if filter != nil {
		if filter.Name != "" {
			query = query.Where("users.full_name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.Specialty != "" {
			query = query.
				Joins("JOIN specialties ON specialties.id = doctor_profiles.specialty_id").
				Where("specialties.name ILIKE ?", "%"+filter.Specialty+"%")
		}
		if filter.Province != "" || filter.City != "" {
			query = query.Joins("JOIN cities ON cities.id = doctor_profiles.city_id")
			if filter.Province != "" {
				query = query.Where("cities.province ILIKE ?", "%"+filter.Province+"%")
			}
			if filter.City != "" {
				query = query.Where("cities.city ILIKE ?", "%"+filter.City+"%")
			}
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset((filter.Page - 1) * filter.Limit)
	}

	var profiles []entity.DoctorProfile
	err := query.
		Preload("User").
		Preload("Specialty").
		Preload("City").
		Order("doctor_profiles.user_id").
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("User", "Specialty", "City", "Address", "Telephones", "Schedules").Save(profile).Error
}

func (r *doctorProfileRepository) UpsertAddress(db *gorm.DB, address *entity.DoctorAddress) error {
	var existing entity.DoctorAddress
	err := db.Where("doctor_id = ?", address.DoctorID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.Create(address).Error
		}
		return err
	}
	address.ID = existing.ID
	return db.Save(address).Error
}

func (r *doctorProfileRepository) ReplaceTelephones(db *gorm.DB, doctorID uuid.UUID, numbers []string) error {
	if err := db.Where("doctor_id = ?", doctorID).Delete(&entity.Telephone{}).Error; err != nil {
		return err
	}
	for _, number := range numbers {
		phone := &entity.Telephone{DoctorID: doctorID, CallNumber: number}
		if err := db.Create(phone).Error; err != nil {
			return err
		}
	}
	return nil
}
