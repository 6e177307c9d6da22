package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	UpdatePhoto(ctx context.Context, db *gorm.DB, id int64, photoRef string) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
