package handler

import (
	"net/http"
	"strconv"

	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetAuditLogs lists the latest entries, or the history of one record when
// both entity and entity_id are given.
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if entityName, entityID := query.Get("entity"), query.Get("entity_id"); entityName != "" && entityID != "" {
		logs, err := h.auditLogUsecase.GetEntityAuditLogs(r.Context(), entityName, entityID)
		if err != nil {
			switch err {
			case usecase.ErrInvalidAuditEntity:
				response.BadRequest(w, err.Error())
			default:
				response.InternalServerError(w, "Failed to get audit logs")
			}
			return
		}
		response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
		return
	}

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(w, "Invalid limit")
			return
		}
		limit = n
	}

	logs, err := h.auditLogUsecase.GetLatestAuditLogs(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
