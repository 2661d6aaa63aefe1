package handler

import (
	"net/http"

	"practice-booking-service/internal/delivery/http/middleware"
	"practice-booking-service/internal/usecase"
	"practice-booking-service/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	log             *logrus.Logger
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, log *logrus.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		log:             log,
	}
}

func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	logs, err := h.auditLogUsecase.ListAuditLogs(r.Context(), ownerID, queryInt(r, "page", 1), queryInt(r, "limit", 0))
	if err != nil {
		writeError(w, h.log, err, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs.Logs, &response.Meta{
		Page:       logs.Page,
		Limit:      logs.Limit,
		Total:      logs.Total,
		TotalPages: int((logs.Total + int64(logs.Limit) - 1) / int64(logs.Limit)),
	})
}
