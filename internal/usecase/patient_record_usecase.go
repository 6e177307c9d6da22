package usecase

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"
	"hospital-dashboard/internal/infrastructure/storage"
	"hospital-dashboard/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Summary kinds accepted by GetSummary.
const (
	SummaryKindFull      = "full"
	SummaryKindEssential = "essential"
)

type Summaries interface {
	BuildFull(ctx context.Context, patientID int64) (string, error)
	BuildEssential(ctx context.Context, patientID int64) (string, error)
}

// PhotoStorage stores normalized identity photos. Implemented by
// service.PhotoService.
type PhotoStorage interface {
	Store(ctx context.Context, patientID int64, payload string) (string, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Delete(ctx context.Context, ref string) error
}

type PatientRecordUsecase interface {
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientRecordResponse, error)
	GetPatientRecord(ctx context.Context, patientID int64) (*dto.PatientRecordResponse, error)
	UpdatePatient(ctx context.Context, patientID int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID int64) error
	UpdateMedicalHistory(ctx context.Context, patientID int64, req *dto.UpdateHistoryRequest) (*dto.MedicalHistoryResponse, error)
	GetSummary(ctx context.Context, patientID int64, kind string) (*dto.SummaryResponse, error)
	UploadPhoto(ctx context.Context, patientID int64, req *dto.UploadPhotoRequest) (*dto.PhotoResponse, error)
	OpenPhoto(ctx context.Context, patientID int64) (io.ReadCloser, error)
}

type patientRecordUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	historyRepo      repository.MedicalHistoryRepository
	noteRepo         repository.ConsultationNoteRepository
	prescriptionRepo repository.PrescriptionRepository
	auditService     service.AuditService
	summaries        Summaries
	photos           PhotoStorage
}

func NewPatientRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	historyRepo repository.MedicalHistoryRepository,
	noteRepo repository.ConsultationNoteRepository,
	prescriptionRepo repository.PrescriptionRepository,
	auditService service.AuditService,
	summaries Summaries,
	photos PhotoStorage,
) PatientRecordUsecase {
	return &patientRecordUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		historyRepo:      historyRepo,
		noteRepo:         noteRepo,
		prescriptionRepo: prescriptionRepo,
		auditService:     auditService,
		summaries:        summaries,
		photos:           photos,
	}
}

func (u *patientRecordUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	items := converter.PatientsToListItems(patients)

	return &dto.PatientListResponse{
		Patients: items,
		Total:    len(items),
	}, nil
}

func (u *patientRecordUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		FullName:         strings.TrimSpace(req.FullName),
		BirthDate:        strings.TrimSpace(req.BirthDate),
		Sex:              req.Sex,
		BloodGroup:       req.BloodGroup,
		NationalID:       req.NationalID,
		Address:          req.Address,
		Contact:          req.Contact,
		EmergencyContact: req.EmergencyContact,
	}
	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	// The history row always exists, even when both texts are empty
	history := &entity.MedicalHistory{
		PatientID: patient.ID,
		Personal:  req.Personal,
		Family:    req.Family,
	}
	if err := u.historyRepo.Upsert(ctx, tx, history); err != nil {
		u.log.Warnf("Failed to create medical history: %+v", err)
		return nil, err
	}

	response := converter.PatientRecordToResponse(patient, history, nil, nil)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionPatientCreate, entity.AuditEntityPatient, formatID(patient.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *patientRecordUsecase) GetPatientRecord(ctx context.Context, patientID int64) (*dto.PatientRecordResponse, error) {
	patient, err := u.findPatient(ctx, u.db, patientID)
	if err != nil {
		return nil, err
	}

	history, err := u.historyRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find medical history: %+v", err)
		return nil, err
	}

	notes, err := u.noteRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find consultation notes: %+v", err)
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions: %+v", err)
		return nil, err
	}

	return converter.PatientRecordToResponse(patient, history, notes, prescriptions), nil
}

func (u *patientRecordUsecase) UpdatePatient(ctx context.Context, patientID int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findPatient(ctx, tx, patientID)
	if err != nil {
		return nil, err
	}

	// Capture old value for audit
	oldValue := converter.PatientToResponse(patient)

	if req.FullName != nil {
		patient.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.BirthDate != nil {
		patient.BirthDate = strings.TrimSpace(*req.BirthDate)
	}
	if req.Sex != nil {
		patient.Sex = *req.Sex
	}
	if req.BloodGroup != nil {
		patient.BloodGroup = *req.BloodGroup
	}
	if req.NationalID != nil {
		patient.NationalID = *req.NationalID
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Contact != nil {
		patient.Contact = *req.Contact
	}
	if req.EmergencyContact != nil {
		patient.EmergencyContact = *req.EmergencyContact
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientUpdate, entity.AuditEntityPatient, formatID(patientID), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeletePatient removes the patient and every dependent row in one
// transaction, then drops the stored photo.
func (u *patientRecordUsecase) DeletePatient(ctx context.Context, patientID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findPatient(ctx, tx, patientID)
	if err != nil {
		return err
	}
	oldValue := converter.PatientToResponse(patient)

	if err := u.noteRepo.DeleteByPatientID(ctx, tx, patientID); err != nil {
		u.log.Warnf("Failed to delete consultation notes: %+v", err)
		return err
	}
	if err := u.prescriptionRepo.DeleteByPatientID(ctx, tx, patientID); err != nil {
		u.log.Warnf("Failed to delete prescriptions: %+v", err)
		return err
	}
	if err := u.historyRepo.DeleteByPatientID(ctx, tx, patientID); err != nil {
		u.log.Warnf("Failed to delete medical history: %+v", err)
		return err
	}

	affected, err := u.patientRepo.Delete(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionPatientDelete, entity.AuditEntityPatient, formatID(patientID), oldValue); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if patient.HasPhoto() {
		if err := u.photos.Delete(ctx, patient.PhotoRef); err != nil {
			u.log.Warnf("Failed to delete patient photo: %+v", err)
		}
	}

	return nil
}

func (u *patientRecordUsecase) UpdateMedicalHistory(ctx context.Context, patientID int64, req *dto.UpdateHistoryRequest) (*dto.MedicalHistoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findPatient(ctx, tx, patientID); err != nil {
		return nil, err
	}

	existing, err := u.historyRepo.FindByPatientID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find medical history: %+v", err)
		return nil, err
	}
	oldValue := converter.MedicalHistoryToResponse(existing)

	history := &entity.MedicalHistory{
		PatientID: patientID,
		Personal:  req.Personal,
		Family:    req.Family,
	}
	if err := u.historyRepo.Upsert(ctx, tx, history); err != nil {
		u.log.Warnf("Failed to update medical history: %+v", err)
		return nil, err
	}

	newValue := converter.MedicalHistoryToResponse(history)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionHistoryUpdate, entity.AuditEntityHistory, formatID(patientID), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &newValue, nil
}

func (u *patientRecordUsecase) GetSummary(ctx context.Context, patientID int64, kind string) (*dto.SummaryResponse, error) {
	if kind == "" {
		kind = SummaryKindFull
	}
	if kind != SummaryKindFull && kind != SummaryKindEssential {
		return nil, ErrInvalidSummaryKind
	}

	if _, err := u.findPatient(ctx, u.db, patientID); err != nil {
		return nil, err
	}

	build := u.summaries.BuildFull
	if kind == SummaryKindEssential {
		build = u.summaries.BuildEssential
	}

	text, err := build(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to build %s summary: %+v", kind, err)
		return nil, err
	}

	return &dto.SummaryResponse{Kind: kind, Text: text}, nil
}

// UploadPhoto stores the file first and then points the patient at it, so a
// failed update leaves the previous photo reference untouched.
func (u *patientRecordUsecase) UploadPhoto(ctx context.Context, patientID int64, req *dto.UploadPhotoRequest) (*dto.PhotoResponse, error) {
	patient, err := u.findPatient(ctx, u.db, patientID)
	if err != nil {
		return nil, err
	}
	oldRef := patient.PhotoRef

	ref, err := u.photos.Store(ctx, patientID, req.Photo)
	if err != nil {
		u.log.Warnf("Failed to store patient photo: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.UpdatePhoto(ctx, tx, patientID, ref); err != nil {
		u.log.Warnf("Failed to update patient photo: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientPhoto, entity.AuditEntityPatient, formatID(patientID), oldRef, ref); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	patient.PhotoRef = ref
	return &dto.PhotoResponse{PhotoURL: converter.PhotoURL(patient)}, nil
}

func (u *patientRecordUsecase) OpenPhoto(ctx context.Context, patientID int64) (io.ReadCloser, error) {
	patient, err := u.findPatient(ctx, u.db, patientID)
	if err != nil {
		return nil, err
	}
	if !patient.HasPhoto() {
		return nil, ErrPhotoNotFound
	}

	rc, err := u.photos.Open(ctx, patient.PhotoRef)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			return nil, ErrPhotoNotFound
		}
		u.log.Warnf("Failed to open patient photo: %+v", err)
		return nil, err
	}
	return rc, nil
}

func (u *patientRecordUsecase) findPatient(ctx context.Context, db *gorm.DB, patientID int64) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
