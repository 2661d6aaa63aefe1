package usecase

import (
	"context"
	"strings"

	"practice-booking-service/internal/converter"
	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/domain/repository"
	"practice-booking-service/internal/service"
	"practice-booking-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = newError(ErrConflict, "Email already exists")
	ErrInvalidCredentials = newError(ErrUnauthorized, "Invalid email or password")
	ErrInvalidToken       = newError(ErrUnauthorized, "Invalid or expired token")
	ErrPatientNotFound    = newError(ErrNotFound, "Patient not found")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.PatientLoginResponse, error)
	RegisterPracticeUser(ctx context.Context, req *dto.RegisterPracticeUserRequest) (*dto.PracticeUserResponse, error)
	LoginPracticeUser(ctx context.Context, req *dto.LoginRequest) (*dto.PracticeLoginResponse, error)
	Logout(ctx context.Context, token string) error
	ResolvePatient(ctx context.Context, token string) (*entity.Patient, error)
	ResolvePracticeUser(ctx context.Context, token string) (*entity.PracticeUser, error)
	GetCurrentPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	practiceUserRepo repository.PracticeUserRepository
	jwtService       *jwt.JWTService
	sessions         *service.SessionStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	practiceUserRepo repository.PracticeUserRepository,
	jwtService *jwt.JWTService,
	sessions *service.SessionStore,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		practiceUserRepo: practiceUserRepo,
		jwtService:       jwtService,
		sessions:         sessions,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	dob, err := entity.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, invalidField("date_of_birth", err)
	}

	email := normalizeEmail(req.Email)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.patientRepo.FindByEmail(tx, email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// Account flags are never taken from the request.
	patient := &entity.Patient{
		Email:       email,
		Password:    string(hashedPassword),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		DateOfBirth: dob,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		IsActive:    true,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient registered: id=%s", patient.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *authUsecase) LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.PatientLoginResponse, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), normalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil || !patient.CanLogin() {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueToken(ctx, jwt.PatientSubject, patient.ID, patient.Email)
	if err != nil {
		return nil, err
	}

	return &dto.PatientLoginResponse{
		Token:     token,
		PatientID: patient.ID,
		Email:     patient.Email,
		FirstName: patient.FirstName,
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) RegisterPracticeUser(ctx context.Context, req *dto.RegisterPracticeUserRequest) (*dto.PracticeUserResponse, error) {
	email := normalizeEmail(req.Email)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.practiceUserRepo.FindByEmail(tx, email)
	if err != nil {
		u.log.Warnf("Failed to find practice user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.PracticeUser{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashedPassword),
		IsActive: true,
	}

	if err := u.practiceUserRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create practice user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Practice user registered: id=%s", user.ID)
	return converter.PracticeUserToResponse(user), nil
}

func (u *authUsecase) LoginPracticeUser(ctx context.Context, req *dto.LoginRequest) (*dto.PracticeLoginResponse, error) {
	user, err := u.practiceUserRepo.FindByEmail(u.db.WithContext(ctx), normalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find practice user by email: %+v", err)
		return nil, err
	}
	if user == nil || !user.CanLogin() {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueToken(ctx, jwt.PracticeSubject, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.PracticeLoginResponse{
		Token:     token,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
	}, nil
}

// Logout revokes the token so every later lookup fails, even before expiry.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return ErrInvalidToken
	}

	if err := u.sessions.Revoke(ctx, claims); err != nil {
		u.log.Warnf("Failed to revoke token: %+v", err)
		return err
	}
	return nil
}

// ResolvePatient is the patient-side token lookup: a valid signature, the
// patient kind, a live session and an active account are all required.
func (u *authUsecase) ResolvePatient(ctx context.Context, token string) (*entity.Patient, error) {
	claims, err := u.checkToken(ctx, token, jwt.PatientSubject)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), claims.SubjectID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil || !patient.CanLogin() {
		return nil, ErrInvalidToken
	}
	return patient, nil
}

func (u *authUsecase) ResolvePracticeUser(ctx context.Context, token string) (*entity.PracticeUser, error) {
	claims, err := u.checkToken(ctx, token, jwt.PracticeSubject)
	if err != nil {
		return nil, err
	}

	user, err := u.practiceUserRepo.FindByID(u.db.WithContext(ctx), claims.SubjectID)
	if err != nil {
		u.log.Warnf("Failed to find practice user by ID: %+v", err)
		return nil, err
	}
	if user == nil || !user.CanLogin() {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (u *authUsecase) GetCurrentPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *authUsecase) issueToken(ctx context.Context, kind jwt.SubjectKind, subjectID uuid.UUID, email string) (string, error) {
	token, tokenID, err := u.jwtService.GenerateToken(kind, subjectID, email)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return "", err
	}

	claims := &jwt.Claims{SubjectID: subjectID, Kind: kind, TokenID: tokenID}
	if err := u.sessions.Register(ctx, claims, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store token in Redis: %+v", err)
		return "", err
	}
	return token, nil
}

func (u *authUsecase) checkToken(ctx context.Context, token string, kind jwt.SubjectKind) (*jwt.Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims, err := u.jwtService.ValidateToken(token)
	if err != nil || claims.Kind != kind {
		return nil, ErrInvalidToken
	}

	ok, err := u.sessions.Exists(ctx, claims)
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
