package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
	FindByID(ctx context.Context, db *gorm.DB, patientID, id int64) (*entity.Prescription, error)
	// FindByPatientID returns prescriptions newest first.
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Prescription, error)
	UpdateDispensed(ctx context.Context, db *gorm.DB, id int64, dispensed bool) error
	Delete(ctx context.Context, db *gorm.DB, patientID, id int64) (int64, error)
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error
}
