package usecase

import (
	"context"
	"errors"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidAuditEntity = errors.New("unknown audit entity, use patient, medical_history, consultation_note or prescription")

// Page size bounds for the latest-entries feed.
const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type AuditLogUsecase interface {
	GetLatestAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
	GetEntityAuditLogs(ctx context.Context, entityName, entityID string) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{db: db, log: log, auditLogRepo: auditLogRepo}
}

func (u *auditLogUsecase) GetLatestAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	switch {
	case limit <= 0:
		limit = defaultAuditLimit
	case limit > maxAuditLimit:
		limit = maxAuditLimit
	}

	logs, err := u.auditLogRepo.FindLatest(ctx, u.db, limit)
	if err != nil {
		u.log.Warnf("Failed to find latest audit logs: %+v", err)
		return nil, err
	}
	return toAuditList(logs), nil
}

// GetEntityAuditLogs returns the full change history of one record.
func (u *auditLogUsecase) GetEntityAuditLogs(ctx context.Context, entityName, entityID string) (*dto.AuditLogListResponse, error) {
	if !entity.IsAuditEntity(entityName) {
		return nil, ErrInvalidAuditEntity
	}

	logs, err := u.auditLogRepo.FindByEntity(ctx, u.db, entityName, entityID)
	if err != nil {
		u.log.WithFields(logrus.Fields{"entity": entityName, "entity_id": entityID}).
			Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}
	return toAuditList(logs), nil
}

func toAuditList(logs []entity.AuditLog) *dto.AuditLogListResponse {
	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}
}
