package usecase

import (
	"context"
	"errors"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"
	"medibook/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrWrongPassword      = errors.New("old password does not match")
	ErrInvalidCoordinates = errors.New("invalid latitude or longitude")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, req *dto.ListDoctorsRequest) (*dto.DoctorListResponse, error)
	GetDoctorDetail(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error)
	UpdateProfile(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorDetailResponse, error)
}

type doctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	doctorRepo    repository.DoctorProfileRepository
	specialtyRepo repository.SpecialtyRepository
	cityRepo      repository.CityRepository
	auditService  service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	specialtyRepo repository.SpecialtyRepository,
	cityRepo repository.CityRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
		cityRepo:      cityRepo,
		auditService:  auditService,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, req *dto.ListDoctorsRequest) (*dto.DoctorListResponse, error) {
	filter := &entity.DoctorFilter{
		Name:      req.Name,
		Specialty: req.Specialty,
		Province:  req.Province,
		City:      req.City,
		Page:      req.Page,
		Limit:     req.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	profiles, total, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   total,
	}, nil
}

func (u *doctorUsecase) GetDoctorDetail(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error) {
	profile, err := u.doctorRepo.FindDetailByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor detail: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToDetailResponse(profile), nil
}

func (u *doctorUsecase) UpdateProfile(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrDoctorNotFound
	}

	profile, err := u.doctorRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
			return nil, ErrWrongPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashed)
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	}
	if req.NationalCode != "" {
		user.NationalCode = req.NationalCode
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "phone_number") {
			return nil, ErrPhoneAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if req.SpecialtyID != nil {
		specialty, err := u.specialtyRepo.FindByID(tx, *req.SpecialtyID)
		if err != nil {
			return nil, err
		}
		if specialty == nil {
			return nil, ErrSpecialtyNotFound
		}
		profile.SpecialtyID = req.SpecialtyID
	}
	if req.CityID != nil {
		city, err := u.cityRepo.FindByID(tx, *req.CityID)
		if err != nil {
			return nil, err
		}
		if city == nil {
			return nil, ErrCityNotFound
		}
		profile.CityID = req.CityID
	}
	if req.MedicalCode != "" {
		profile.MedicalCode = req.MedicalCode
	}
	if req.VisitCost != nil {
		profile.VisitCost = *req.VisitCost
	}
	if req.Biography != nil {
		profile.Biography = *req.Biography
	}

	if err := u.doctorRepo.Update(tx, profile); err != nil {
		if isDuplicateKeyError(err, "medical_code") {
			return nil, ErrMedicalCodeAlreadyExists
		}
		if isForeignKeyError(err, "specialty") {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if req.Address != nil || req.Lat != nil || req.Lng != nil {
		address := &entity.DoctorAddress{DoctorID: doctorID}
		if req.Address != nil {
			address.Address = *req.Address
		}
		if req.Lat != nil {
			lat, err := decimal.NewFromString(*req.Lat)
			if err != nil {
				return nil, ErrInvalidCoordinates
			}
			address.Lat = lat
		}
		if req.Lng != nil {
			lng, err := decimal.NewFromString(*req.Lng)
			if err != nil {
				return nil, ErrInvalidCoordinates
			}
			address.Lng = lng
		}
		if err := u.doctorRepo.UpsertAddress(tx, address); err != nil {
			u.log.Warnf("Failed to upsert address: %+v", err)
			return nil, err
		}
	}

	if req.Telephones != nil {
		if err := u.doctorRepo.ReplaceTelephones(tx, doctorID, req.Telephones); err != nil {
			u.log.Warnf("Failed to replace telephones: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionProfileUpdate, "doctor_profile", doctorID.String(), nil, req); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetDoctorDetail(ctx, doctorID)
}
