package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestIsForeignKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"fk violation", &pgconn.PgError{Code: "23503", ConstraintName: "fk_patients_consultation_notes"}, true},
		{"wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "consultation_notes_patient_id_fkey"}), true},
		{"other constraint", &pgconn.PgError{Code: "23503", ConstraintName: "fk_orders_items"}, false},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "patients_pkey"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isForeignKeyError(tt.err, "patient"); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSummary_RejectsUnknownKind(t *testing.T) {
	u := NewPatientRecordUsecase(nil, quietLogger(), nil, nil, nil, nil, nil, nil, nil)

	_, err := u.GetSummary(context.Background(), 1, "short")
	if err != ErrInvalidSummaryKind {
		t.Fatalf("got %v, want ErrInvalidSummaryKind", err)
	}
}

func TestCreateNote_RejectsInvalidDateBeforeTouchingStore(t *testing.T) {
	u := NewConsultationNoteUsecase(nil, quietLogger(), nil, nil, nil)

	_, err := u.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{Date: "2025/31/12", Content: "RAS"})
	if !errors.Is(err, entity.ErrInvalidRecordDate) {
		t.Fatalf("got %v, want ErrInvalidRecordDate", err)
	}
}

func TestCreatePrescription_RejectsInvalidDate(t *testing.T) {
	u := NewPrescriptionUsecase(nil, quietLogger(), nil, nil, nil, "Dr. Martin")

	_, err := u.CreatePrescription(context.Background(), 1, &dto.CreatePrescriptionRequest{Date: "31/02/2025", Content: "Paracétamol"})
	if !errors.Is(err, entity.ErrInvalidRecordDate) {
		t.Fatalf("got %v, want ErrInvalidRecordDate", err)
	}
}

func TestGetEntityAuditLogs_RejectsUnknownEntity(t *testing.T) {
	u := NewAuditLogUsecase(nil, quietLogger(), nil)

	_, err := u.GetEntityAuditLogs(context.Background(), "booking", "1")
	if err != ErrInvalidAuditEntity {
		t.Fatalf("got %v, want ErrInvalidAuditEntity", err)
	}
}
