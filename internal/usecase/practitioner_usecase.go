package usecase

import (
	"context"
	"strings"

	"practice-booking-service/internal/converter"
	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/domain/repository"
	"practice-booking-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PractitionerUsecase interface {
	CreatePractitioner(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePractitionerRequest) (*dto.PractitionerResponse, error)
	ListPractitioners(ctx context.Context, ownerID uuid.UUID) (*dto.PractitionerListResponse, error)
	GetPractitioner(ctx context.Context, ownerID, practitionerID uuid.UUID) (*dto.PractitionerResponse, error)
	EditPractitioner(ctx context.Context, ownerID, practitionerID uuid.UUID, req *dto.UpdatePractitionerRequest) (*dto.PractitionerResponse, error)
	DeletePractitioner(ctx context.Context, ownerID, practitionerID uuid.UUID) error
	ListPracticeDoctors(ctx context.Context, practiceID uuid.UUID) (*dto.PractitionerListResponse, error)
}

type practitionerUsecase struct {
	ownership
	db                  *gorm.DB
	appointmentTypeRepo repository.AppointmentTypeRepository
	auditService        service.AuditService
}

func NewPractitionerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	practiceRepo repository.PracticeRepository,
	practitionerRepo repository.PractitionerRepository,
	appointmentTypeRepo repository.AppointmentTypeRepository,
	auditService service.AuditService,
) PractitionerUsecase {
	return &practitionerUsecase{
		ownership: ownership{
			log:              log,
			practiceRepo:     practiceRepo,
			practitionerRepo: practitionerRepo,
		},
		db:                  db,
		appointmentTypeRepo: appointmentTypeRepo,
		auditService:        auditService,
	}
}

func (u *practitionerUsecase) CreatePractitioner(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePractitionerRequest) (*dto.PractitionerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	practice, err := u.ownedPractice(tx, ownerID)
	if err != nil {
		return nil, err
	}

	types, err := u.resolveAppointmentTypes(tx, req.AppointmentTypeIDs)
	if err != nil {
		return nil, err
	}

	practitioner := &entity.Practitioner{
		PracticeID: practice.ID,
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Zip:        req.Zip,
		IsActive:   true,
	}

	if err := u.practitionerRepo.Create(tx, practitioner); err != nil {
		u.log.Warnf("Failed to create practitioner: %+v", err)
		return nil, err
	}

	if len(types) > 0 {
		if err := u.practitionerRepo.ReplaceAppointmentTypes(tx, practitioner, types); err != nil {
			u.log.Warnf("Failed to link appointment types to practitioner %s: %+v", practitioner.ID, err)
			return nil, err
		}
	}
	practitioner.AppointmentTypes = types

	response := converter.PractitionerToResponse(practitioner)
	if err := u.auditService.LogCreate(ctx, tx, service.PracticeActor(ownerID), entity.AuditActionPractitionerCreate, "practitioner", practitioner.ID.String(), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Practitioner created: id=%s, practice=%s", practitioner.ID, practice.ID)
	return response, nil
}

func (u *practitionerUsecase) ListPractitioners(ctx context.Context, ownerID uuid.UUID) (*dto.PractitionerListResponse, error) {
	db := u.db.WithContext(ctx)

	practice, err := u.ownedPractice(db, ownerID)
	if err != nil {
		return nil, err
	}

	return u.listActive(db, practice.ID)
}

func (u *practitionerUsecase) GetPractitioner(ctx context.Context, ownerID, practitionerID uuid.UUID) (*dto.PractitionerResponse, error) {
	_, practitioner, err := u.ownedPractitioner(u.db.WithContext(ctx), ownerID, practitionerID)
	if err != nil {
		return nil, err
	}
	return converter.PractitionerToResponse(practitioner), nil
}

func (u *practitionerUsecase) EditPractitioner(ctx context.Context, ownerID, practitionerID uuid.UUID, req *dto.UpdatePractitionerRequest) (*dto.PractitionerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	_, practitioner, err := u.ownedPractitioner(tx, ownerID, practitionerID)
	if err != nil {
		return nil, err
	}
	before := converter.PractitionerToResponse(practitioner)

	if req.Name != nil {
		practitioner.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		practitioner.Email = *req.Email
	}
	if req.Phone != nil {
		practitioner.Phone = *req.Phone
	}
	if req.Specialty != nil {
		practitioner.Specialty = *req.Specialty
	}
	if req.Address != nil {
		practitioner.Address = *req.Address
	}
	if req.City != nil {
		practitioner.City = *req.City
	}
	if req.State != nil {
		practitioner.State = *req.State
	}
	if req.Zip != nil {
		practitioner.Zip = *req.Zip
	}

	if err := u.practitionerRepo.Update(tx, practitioner); err != nil {
		u.log.Warnf("Failed to update practitioner %s: %+v", practitionerID, err)
		return nil, err
	}

	if req.AppointmentTypeIDs != nil {
		types, err := u.resolveAppointmentTypes(tx, *req.AppointmentTypeIDs)
		if err != nil {
			return nil, err
		}
		if err := u.practitionerRepo.ReplaceAppointmentTypes(tx, practitioner, types); err != nil {
			u.log.Warnf("Failed to replace appointment types of practitioner %s: %+v", practitionerID, err)
			return nil, err
		}
		practitioner.AppointmentTypes = types
	}

	after := converter.PractitionerToResponse(practitioner)
	if err := u.auditService.LogUpdate(ctx, tx, service.PracticeActor(ownerID), entity.AuditActionPractitionerUpdate, "practitioner", practitionerID.String(), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}

// DeletePractitioner deactivates the practitioner; the row and its history stay.
func (u *practitionerUsecase) DeletePractitioner(ctx context.Context, ownerID, practitionerID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	_, practitioner, err := u.ownedPractitioner(tx, ownerID, practitionerID)
	if err != nil {
		return err
	}

	affected, err := u.practitionerRepo.Deactivate(tx, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to deactivate practitioner %s: %+v", practitionerID, err)
		return err
	}
	if affected == 0 {
		return ErrPractitionerNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, service.PracticeActor(ownerID), entity.AuditActionPractitionerDelete, "practitioner", practitionerID.String(), converter.PractitionerToResponse(practitioner)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Practitioner deactivated: id=%s", practitionerID)
	return nil
}

// ListPracticeDoctors is the public roster of a practice as patients see it.
func (u *practitionerUsecase) ListPracticeDoctors(ctx context.Context, practiceID uuid.UUID) (*dto.PractitionerListResponse, error) {
	db := u.db.WithContext(ctx)

	practice, err := u.practiceRepo.FindByID(db, practiceID)
	if err != nil {
		u.log.Warnf("Failed to find practice %s: %+v", practiceID, err)
		return nil, err
	}
	if practice == nil {
		return nil, ErrPracticeNotFound
	}

	return u.listActive(db, practice.ID)
}

func (u *practitionerUsecase) listActive(db *gorm.DB, practiceID uuid.UUID) (*dto.PractitionerListResponse, error) {
	practitioners, err := u.practitionerRepo.FindActiveByPracticeID(db, practiceID)
	if err != nil {
		u.log.Warnf("Failed to find practitioners of practice %s: %+v", practiceID, err)
		return nil, err
	}

	return &dto.PractitionerListResponse{
		Practitioners: converter.PractitionersToResponses(practitioners),
		Total:         len(practitioners),
	}, nil
}

// resolveAppointmentTypes loads every requested id; an unknown id fails the
// whole request rather than being silently dropped.
func (u *practitionerUsecase) resolveAppointmentTypes(db *gorm.DB, ids []uuid.UUID) ([]entity.AppointmentType, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	types, err := u.appointmentTypeRepo.FindByIDs(db, unique)
	if err != nil {
		u.log.Warnf("Failed to find appointment types: %+v", err)
		return nil, err
	}
	if len(types) != len(unique) {
		return nil, ErrAppointmentTypeNotFound
	}
	return types, nil
}
