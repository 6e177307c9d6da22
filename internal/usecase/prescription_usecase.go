package usecase

import (
	"bytes"
	"context"
	"strings"
	"time"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/document"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"
	"hospital-dashboard/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, patientID int64, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	SetDispensed(ctx context.Context, patientID, prescriptionID int64, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	DeletePrescription(ctx context.Context, patientID, prescriptionID int64) error
	RenderPDF(ctx context.Context, patientID, prescriptionID int64) (*bytes.Buffer, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	prescriptionRepo repository.PrescriptionRepository
	auditService     service.AuditService
	defaultPhysician string
	now              func() time.Time
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	prescriptionRepo repository.PrescriptionRepository,
	auditService service.AuditService,
	defaultPhysician string,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		prescriptionRepo: prescriptionRepo,
		auditService:     auditService,
		defaultPhysician: defaultPhysician,
		now:              time.Now,
	}
}

func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, patientID int64, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	date, err := entity.ParseRecordDate(req.Date, u.now())
	if err != nil {
		return nil, err
	}

	physician := strings.TrimSpace(req.Physician)
	if physician == "" {
		physician = u.defaultPhysician
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	prescription := &entity.Prescription{
		PatientID: patientID,
		Physician: physician,
		Content:   strings.TrimSpace(req.Content),
	}
	prescription.SetDate(date)

	if err := u.prescriptionRepo.Create(ctx, tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	response := converter.PrescriptionToResponse(prescription)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionPrescriptionCreate, entity.AuditEntityPrescription, formatID(prescription.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *prescriptionUsecase) SetDispensed(ctx context.Context, patientID, prescriptionID int64, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.findPrescription(ctx, tx, patientID, prescriptionID)
	if err != nil {
		return nil, err
	}

	oldValue := converter.PrescriptionToResponse(prescription)
	if !prescription.MarkDispensed(*req.Dispensed) {
		return oldValue, nil
	}

	if err := u.prescriptionRepo.UpdateDispensed(ctx, tx, prescriptionID, prescription.Dispensed); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	newValue := converter.PrescriptionToResponse(prescription)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionPrescriptionUpdate, entity.AuditEntityPrescription, formatID(prescriptionID), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, patientID, prescriptionID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.findPrescription(ctx, tx, patientID, prescriptionID)
	if err != nil {
		return err
	}

	affected, err := u.prescriptionRepo.Delete(ctx, tx, patientID, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPrescriptionNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionPrescriptionDelete, entity.AuditEntityPrescription, formatID(prescriptionID), converter.PrescriptionToResponse(prescription)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *prescriptionUsecase) RenderPDF(ctx context.Context, patientID, prescriptionID int64) (*bytes.Buffer, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	prescription, err := u.findPrescription(ctx, u.db, patientID, prescriptionID)
	if err != nil {
		return nil, err
	}

	buf, err := document.PrescriptionPDF(patient, prescription)
	if err != nil {
		u.log.Warnf("Failed to render prescription pdf: %+v", err)
		return nil, err
	}
	return buf, nil
}

func (u *prescriptionUsecase) findPrescription(ctx context.Context, db *gorm.DB, patientID, prescriptionID int64) (*entity.Prescription, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, db, patientID, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return prescription, nil
}
