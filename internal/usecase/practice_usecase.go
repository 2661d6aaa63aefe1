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

var (
	ErrPracticeNotFound      = newError(ErrNotFound, "Practice not found")
	ErrPracticeAlreadyExists = newError(ErrConflict, "A practice is already set up for this account")
	ErrPracticeUserNotFound  = newError(ErrNotFound, "Practice user not found")
)

type PracticeUsecase interface {
	SetupPractice(ctx context.Context, ownerID uuid.UUID, req *dto.SetupPracticeRequest) (*dto.PracticeResponse, error)
	GetPracticeDetails(ctx context.Context, ownerID uuid.UUID) (*dto.PracticeDetailsResponse, error)
	EditPractice(ctx context.Context, ownerID uuid.UUID, req *dto.UpdatePracticeRequest) (*dto.PracticeResponse, error)
	ListPractices(ctx context.Context) (*dto.PracticeListResponse, error)
	GetPractice(ctx context.Context, practiceID uuid.UUID) (*dto.PracticeResponse, error)
}

type practiceUsecase struct {
	ownership
	db               *gorm.DB
	practiceUserRepo repository.PracticeUserRepository
	auditService     service.AuditService
}

func NewPracticeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	practiceRepo repository.PracticeRepository,
	practitionerRepo repository.PractitionerRepository,
	practiceUserRepo repository.PracticeUserRepository,
	auditService service.AuditService,
) PracticeUsecase {
	return &practiceUsecase{
		ownership: ownership{
			log:              log,
			practiceRepo:     practiceRepo,
			practitionerRepo: practitionerRepo,
		},
		db:               db,
		practiceUserRepo: practiceUserRepo,
		auditService:     auditService,
	}
}

func (u *practiceUsecase) SetupPractice(ctx context.Context, ownerID uuid.UUID, req *dto.SetupPracticeRequest) (*dto.PracticeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.practiceRepo.FindByOwnerID(tx, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find practice for owner %s: %+v", ownerID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPracticeAlreadyExists
	}

	practice := &entity.Practice{
		OwnerID:          ownerID,
		Name:             strings.TrimSpace(req.Name),
		PhoneNumber:      req.PhoneNumber,
		Website:          req.Website,
		Accreditation:    req.Accreditation,
		About:            req.About,
		SocialMediaLinks: req.SocialMediaLinks,
		Facilities:       req.Facilities,
		OpeningHours:     req.OpeningHours,
		Location:         req.Location,
		WheelchairAccess: req.WheelchairAccess,
	}

	if err := u.practiceRepo.Create(tx, practice); err != nil {
		if isDuplicateKeyError(err, "owner") {
			return nil, ErrPracticeAlreadyExists
		}
		if isForeignKeyError(err, "owner") {
			return nil, ErrPracticeUserNotFound
		}
		u.log.Warnf("Failed to create practice: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, service.PracticeActor(ownerID), entity.AuditActionPracticeSetup, "practice", practice.ID.String(), converter.PracticeToResponse(practice)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Practice set up: id=%s, owner=%s", practice.ID, ownerID)
	return converter.PracticeToResponse(practice), nil
}

func (u *practiceUsecase) GetPracticeDetails(ctx context.Context, ownerID uuid.UUID) (*dto.PracticeDetailsResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.practiceUserRepo.FindByID(db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find practice user %s: %+v", ownerID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrPracticeUserNotFound
	}

	practice, err := u.practiceRepo.FindByOwnerID(db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find practice for owner %s: %+v", ownerID, err)
		return nil, err
	}

	return &dto.PracticeDetailsResponse{
		User:     *converter.PracticeUserToResponse(user),
		Practice: converter.PracticeToResponse(practice),
	}, nil
}

// EditPractice applies only the fields present in the request. Ownership
// and identifiers cannot be changed.
func (u *practiceUsecase) EditPractice(ctx context.Context, ownerID uuid.UUID, req *dto.UpdatePracticeRequest) (*dto.PracticeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	practice, err := u.ownedPractice(tx, ownerID)
	if err != nil {
		return nil, err
	}
	before := converter.PracticeToResponse(practice)

	if req.Name != nil {
		practice.Name = strings.TrimSpace(*req.Name)
	}
	if req.PhoneNumber != nil {
		practice.PhoneNumber = *req.PhoneNumber
	}
	if req.Website != nil {
		practice.Website = *req.Website
	}
	if req.Accreditation != nil {
		practice.Accreditation = *req.Accreditation
	}
	if req.About != nil {
		practice.About = *req.About
	}
	if req.SocialMediaLinks != nil {
		practice.SocialMediaLinks = req.SocialMediaLinks
	}
	if req.Facilities != nil {
		practice.Facilities = req.Facilities
	}
	if req.OpeningHours != nil {
		practice.OpeningHours = req.OpeningHours
	}
	if req.Location != nil {
		practice.Location = req.Location
	}
	if req.WheelchairAccess != nil {
		practice.WheelchairAccess = req.WheelchairAccess
	}

	if err := u.practiceRepo.Update(tx, practice); err != nil {
		u.log.Warnf("Failed to update practice %s: %+v", practice.ID, err)
		return nil, err
	}

	after := converter.PracticeToResponse(practice)
	if err := u.auditService.LogUpdate(ctx, tx, service.PracticeActor(ownerID), entity.AuditActionPracticeUpdate, "practice", practice.ID.String(), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}

func (u *practiceUsecase) ListPractices(ctx context.Context) (*dto.PracticeListResponse, error) {
	practices, err := u.practiceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all practices: %+v", err)
		return nil, err
	}

	return &dto.PracticeListResponse{
		Practices: converter.PracticesToResponses(practices),
		Total:     len(practices),
	}, nil
}

func (u *practiceUsecase) GetPractice(ctx context.Context, practiceID uuid.UUID) (*dto.PracticeResponse, error) {
	practice, err := u.practiceRepo.FindByID(u.db.WithContext(ctx), practiceID)
	if err != nil {
		u.log.Warnf("Failed to find practice %s: %+v", practiceID, err)
		return nil, err
	}
	if practice == nil {
		return nil, ErrPracticeNotFound
	}

	return converter.PracticeToResponse(practice), nil
}
