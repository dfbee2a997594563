package usecase

import (
	"context"
	"errors"
	"time"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDateRange = errors.New("from date must not be after to date")

// ReportUsecase builds the doctor's appointment report over an inclusive
// date range, ordered by date then slot start time.
type ReportUsecase interface {
	DoctorReport(ctx context.Context, doctorID uuid.UUID, from, to, status string) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewReportUsecase(db *gorm.DB, log *logrus.Logger, appointmentRepo repository.AppointmentRepository) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

func (u *reportUsecase) DoctorReport(ctx context.Context, doctorID uuid.UUID, from, to, status string) (*dto.ReportResponse, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if fromDate.After(toDate) {
		return nil, ErrInvalidDateRange
	}

	filter := &entity.ReportFilter{
		DoctorID: doctorID,
		From:     fromDate,
		To:       toDate,
	}
	if status != "" {
		parsed := entity.AppointmentStatus(status)
		if !parsed.IsValid() {
			return nil, ErrInvalidStatus
		}
		filter.Status = parsed
	}

	appointments, err := u.appointmentRepo.FindForReport(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to build report: %+v", err)
		return nil, err
	}

	rows := make([]dto.ReportRowResponse, len(appointments))
	for i := range appointments {
		rows[i] = converter.AppointmentToReportRow(&appointments[i])
	}

	return &dto.ReportResponse{
		From:  from,
		To:    to,
		Rows:  rows,
		Total: len(rows),
	}, nil
}
