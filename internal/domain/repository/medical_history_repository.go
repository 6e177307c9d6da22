package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalHistoryRepository interface {
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) (*entity.MedicalHistory, error)
	Upsert(ctx context.Context, db *gorm.DB, history *entity.MedicalHistory) error
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error
}
