package converter

import (
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) dto.AuditLogResponse {
	resp := dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Entity:    log.Entity,
		EntityID:  log.EntityID,
		RequestID: log.RequestID,
		CreatedAt: log.CreatedAt,
	}
	if log.Metadata != nil {
		resp.OldValue = log.Metadata["old_value"]
		resp.NewValue = log.Metadata["new_value"]
	}
	return resp
}

// AuditLogsToResponses keeps the repository order (newest first).
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, AuditLogToResponse(&logs[i]))
	}
	return responses
}
