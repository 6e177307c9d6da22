package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultationNoteRepository interface {
	Create(ctx context.Context, db *gorm.DB, note *entity.ConsultationNote) error
	FindByID(ctx context.Context, db *gorm.DB, patientID, id int64) (*entity.ConsultationNote, error)
	// FindByPatientID returns notes newest first.
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.ConsultationNote, error)
	Delete(ctx context.Context, db *gorm.DB, patientID, id int64) (int64, error)
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error
}
