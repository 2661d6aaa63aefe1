package usecase

import (
	"context"
	"errors"
	"strings"

	"practice-booking-service/internal/converter"
	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/domain/repository"
	"practice-booking-service/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentTypeNotFound = newError(ErrNotFound, "Appointment type not found")

	errNegativeFee = errors.New("fee must not be negative")
)

type AppointmentTypeUsecase interface {
	CreateAppointmentType(ctx context.Context, actorID uuid.UUID, req *dto.CreateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
	ListAppointmentTypes(ctx context.Context) (*dto.AppointmentTypeListResponse, error)
	EditAppointmentType(ctx context.Context, actorID, appointmentTypeID uuid.UUID, req *dto.UpdateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
}

type appointmentTypeUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentTypeRepo repository.AppointmentTypeRepository
	auditService        service.AuditService
}

func NewAppointmentTypeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentTypeRepo repository.AppointmentTypeRepository,
	auditService service.AuditService,
) AppointmentTypeUsecase {
	return &appointmentTypeUsecase{
		db:                  db,
		log:                 log,
		appointmentTypeRepo: appointmentTypeRepo,
		auditService:        auditService,
	}
}

func (u *appointmentTypeUsecase) CreateAppointmentType(ctx context.Context, actorID uuid.UUID, req *dto.CreateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	fee := decimal.Zero
	if req.Fee != nil {
		fee = *req.Fee
	}
	if fee.IsNegative() {
		return nil, invalidField("fee", errNegativeFee)
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}

	appointmentType := &entity.AppointmentType{
		ConsultationType: strings.TrimSpace(req.ConsultationType),
		PatientType:      strings.TrimSpace(req.PatientType),
		DurationMinutes:  req.DurationMinutes,
		Description:      req.Description,
		Fee:              fee.Round(2),
		IsEnabled:        enabled,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentTypeRepo.Create(tx, appointmentType); err != nil {
		u.log.Warnf("Failed to create appointment type: %+v", err)
		return nil, err
	}

	response := converter.AppointmentTypeToResponse(appointmentType)
	if err := u.auditService.LogCreate(ctx, tx, service.PracticeActor(actorID), entity.AuditActionAppointmentTypeSave, "appointment_type", appointmentType.ID.String(), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *appointmentTypeUsecase) ListAppointmentTypes(ctx context.Context) (*dto.AppointmentTypeListResponse, error) {
	types, err := u.appointmentTypeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointment types: %+v", err)
		return nil, err
	}

	return &dto.AppointmentTypeListResponse{
		AppointmentTypes: converter.AppointmentTypesToResponses(types),
		Total:            len(types),
	}, nil
}

func (u *appointmentTypeUsecase) EditAppointmentType(ctx context.Context, actorID, appointmentTypeID uuid.UUID, req *dto.UpdateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	if req.Fee != nil && req.Fee.IsNegative() {
		return nil, invalidField("fee", errNegativeFee)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointmentType, err := u.appointmentTypeRepo.FindByID(tx, appointmentTypeID)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %s: %+v", appointmentTypeID, err)
		return nil, err
	}
	if appointmentType == nil {
		return nil, ErrAppointmentTypeNotFound
	}
	before := converter.AppointmentTypeToResponse(appointmentType)

	if req.ConsultationType != nil {
		appointmentType.ConsultationType = strings.TrimSpace(*req.ConsultationType)
	}
	if req.PatientType != nil {
		appointmentType.PatientType = strings.TrimSpace(*req.PatientType)
	}
	if req.DurationMinutes != nil {
		appointmentType.DurationMinutes = *req.DurationMinutes
	}
	if req.Description != nil {
		appointmentType.Description = *req.Description
	}
	if req.Fee != nil {
		appointmentType.Fee = req.Fee.Round(2)
	}
	if req.IsEnabled != nil {
		appointmentType.IsEnabled = *req.IsEnabled
	}

	if err := u.appointmentTypeRepo.Update(tx, appointmentType); err != nil {
		u.log.Warnf("Failed to update appointment type %s: %+v", appointmentTypeID, err)
		return nil, err
	}

	after := converter.AppointmentTypeToResponse(appointmentType)
	if err := u.auditService.LogUpdate(ctx, tx, service.PracticeActor(actorID), entity.AuditActionAppointmentTypeSave, "appointment_type", appointmentTypeID.String(), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}
