package usecase

import (
	"context"
	"errors"
	"fmt"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"
	"medibook/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecialtyAlreadyExists = errors.New("specialty already exists")
	ErrCityAlreadyExists      = errors.New("city already exists")
)

// ReferenceUsecase manages the specialty and city lookup tables.
type ReferenceUsecase interface {
	CreateSpecialty(ctx context.Context, adminID uuid.UUID, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	CreateCity(ctx context.Context, adminID uuid.UUID, req *dto.CreateCityRequest) (*dto.CityResponse, error)
	ListCities(ctx context.Context) (*dto.CityListResponse, error)
}

type referenceUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	cityRepo      repository.CityRepository
	auditService  service.AuditService
}

func NewReferenceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	cityRepo repository.CityRepository,
	auditService service.AuditService,
) ReferenceUsecase {
	return &referenceUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
		cityRepo:      cityRepo,
		auditService:  auditService,
	}
}

func (u *referenceUsecase) CreateSpecialty(ctx context.Context, adminID uuid.UUID, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialty := &entity.Specialty{Name: req.Name}
	if err := u.specialtyRepo.Create(tx, specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyAlreadyExists
		}
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionSpecialtyCreate, "specialty", fmt.Sprint(specialty.ID), specialty.Name); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *referenceUsecase) ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(specialties),
		Total:       len(specialties),
	}, nil
}

func (u *referenceUsecase) CreateCity(ctx context.Context, adminID uuid.UUID, req *dto.CreateCityRequest) (*dto.CityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	city := &entity.City{Province: req.Province, City: req.City}
	if err := u.cityRepo.Create(tx, city); err != nil {
		if isDuplicateKeyError(err, "province") {
			return nil, ErrCityAlreadyExists
		}
		u.log.Warnf("Failed to create city: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionCityCreate, "city", fmt.Sprint(city.ID), map[string]interface{}{
		"province": city.Province,
		"city":     city.City,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CityToResponse(city), nil
}

func (u *referenceUsecase) ListCities(ctx context.Context) (*dto.CityListResponse, error) {
	cities, err := u.cityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list cities: %+v", err)
		return nil, err
	}

	return &dto.CityListResponse{
		Cities: converter.CitiesToResponses(cities),
		Total:  len(cities),
	}, nil
}
