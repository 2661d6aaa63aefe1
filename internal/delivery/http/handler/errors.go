package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"practice-booking-service/internal/usecase"
	"practice-booking-service/pkg/response"
	"practice-booking-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// writeError maps a usecase error onto its HTTP status. Anything outside the
// usecase error kinds is logged and reported as a generic 500.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error, fallback string) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusBadRequest, validationErr.Message, map[string]string{validationErr.Field: validationErr.Message})
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrOverlap),
		errors.Is(err, usecase.ErrInvalidRange):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrUnauthorized):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrConflict):
		response.Conflict(w, err.Error())
	default:
		log.Errorf("%s: %+v", fallback, err)
		response.InternalServerError(w, fallback)
	}
}

// decodeAndValidate reads a JSON body into req and runs struct validation,
// writing the 400 itself when either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.BadRequest(w, "Invalid "+label)
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return n
}
