package usecase

import (
	"context"
	"strings"
	"time"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"
	"hospital-dashboard/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ConsultationNoteUsecase interface {
	CreateNote(ctx context.Context, patientID int64, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	DeleteNote(ctx context.Context, patientID, noteID int64) error
}

type consultationNoteUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	noteRepo     repository.ConsultationNoteRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewConsultationNoteUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	noteRepo repository.ConsultationNoteRepository,
	auditService service.AuditService,
) ConsultationNoteUsecase {
	return &consultationNoteUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		noteRepo:     noteRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *consultationNoteUsecase) CreateNote(ctx context.Context, patientID int64, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	date, err := entity.ParseRecordDate(req.Date, u.now())
	if err != nil {
		return nil, err
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

	note := &entity.ConsultationNote{
		PatientID: patientID,
		Content:   strings.TrimSpace(req.Content),
	}
	note.SetDate(date)

	if err := u.noteRepo.Create(ctx, tx, note); err != nil {
		u.log.Warnf("Failed to create consultation note: %+v", err)
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	response := converter.NoteToResponse(note)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionNoteCreate, entity.AuditEntityNote, formatID(note.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *consultationNoteUsecase) DeleteNote(ctx context.Context, patientID, noteID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	note, err := u.noteRepo.FindByID(ctx, tx, patientID, noteID)
	if err != nil {
		u.log.Warnf("Failed to find consultation note: %+v", err)
		return err
	}
	if note == nil {
		return ErrNoteNotFound
	}

	affected, err := u.noteRepo.Delete(ctx, tx, patientID, noteID)
	if err != nil {
		u.log.Warnf("Failed to delete consultation note: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionNoteDelete, entity.AuditEntityNote, formatID(noteID), converter.NoteToResponse(note)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
