package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/usecase"
	"practice-booking-service/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	PracticeUserIDKey contextKey = "practice_user_id"
	PatientIDKey      contextKey = "patient_id"
	TokenKey          contextKey = "token"

	PracticeTokenParam = "user_token"
	PatientTokenParam  = "patient_token"
)

// IdentityResolver is the token lookup used to authenticate each request.
type IdentityResolver interface {
	ResolvePatient(ctx context.Context, token string) (*entity.Patient, error)
	ResolvePracticeUser(ctx context.Context, token string) (*entity.PracticeUser, error)
}

type AuthMiddleware struct {
	resolver IdentityResolver
	log      *logrus.Logger
}

func NewAuthMiddleware(resolver IdentityResolver, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		log:      log,
	}
}

// RequirePracticeUser authenticates a practice-side request from the
// user_token query parameter or a Bearer header.
func (m *AuthMiddleware) RequirePracticeUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r, PracticeTokenParam)
		if token == "" {
			response.Unauthorized(w, "Token is required")
			return
		}

		user, err := m.resolver.ResolvePracticeUser(r.Context(), token)
		if err != nil {
			m.reject(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), PracticeUserIDKey, user.ID)
		ctx = context.WithValue(ctx, TokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePatient authenticates a patient-side request from the patient_token
// query parameter or a Bearer header.
func (m *AuthMiddleware) RequirePatient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r, PatientTokenParam)
		if token == "" {
			response.Unauthorized(w, "Token is required")
			return
		}

		patient, err := m.resolver.ResolvePatient(r.Context(), token)
		if err != nil {
			m.reject(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), PatientIDKey, patient.ID)
		ctx = context.WithValue(ctx, TokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, err error) {
	if errors.Is(err, usecase.ErrUnauthorized) {
		response.Unauthorized(w, err.Error())
		return
	}
	m.log.Errorf("Failed to resolve token: %+v", err)
	response.InternalServerError(w, "Failed to validate token")
}

// TokenFromRequest reads the token from the named query parameter, falling
// back to an "Authorization: Bearer <token>" header.
func TokenFromRequest(r *http.Request, param string) string {
	if token := strings.TrimSpace(r.URL.Query().Get(param)); token != "" {
		return token
	}

	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// GetPracticeUserIDFromContext extracts the practice user ID from context
func GetPracticeUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(PracticeUserIDKey).(uuid.UUID)
	return id, ok
}

// GetPatientIDFromContext extracts the patient ID from context
func GetPatientIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(PatientIDKey).(uuid.UUID)
	return id, ok
}

// GetTokenFromContext extracts the raw token from context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
