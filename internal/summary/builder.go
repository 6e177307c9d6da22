// Package summary renders a patient record as plain text for the assistant
// prompt and for the essentials fallback.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hospital-dashboard/internal/domain/entity"
)

// NotFoundText is returned in place of a summary when the patient id does
// not match any record. It is safe to embed in a prompt.
const NotFoundText = "Aucune fiche patient trouvée pour cet identifiant."

// RecordReader is the read side of the record store. Get methods return
// (nil, nil) when the row is absent. List methods return newest first.
type RecordReader interface {
	GetPatient(ctx context.Context, id int64) (*entity.Patient, error)
	GetMedicalHistory(ctx context.Context, patientID int64) (*entity.MedicalHistory, error)
	ListConsultationNotes(ctx context.Context, patientID int64) ([]entity.ConsultationNote, error)
	ListPrescriptions(ctx context.Context, patientID int64) ([]entity.Prescription, error)
}

type Builder struct {
	records RecordReader
	now     func() time.Time
}

// NewBuilder returns a builder reading from records. A nil clock means
// time.Now.
func NewBuilder(records RecordReader, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{records: records, now: now}
}

// BuildFull renders identity, history, consultation notes and prescriptions.
// A missing patient yields NotFoundText and a nil error.
func (b *Builder) BuildFull(ctx context.Context, patientID int64) (string, error) {
	patient, err := b.records.GetPatient(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("get patient: %w", err)
	}
	if patient == nil {
		return NotFoundText, nil
	}

	history, err := b.records.GetMedicalHistory(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("get medical history: %w", err)
	}
	notes, err := b.records.ListConsultationNotes(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("list consultation notes: %w", err)
	}
	prescriptions, err := b.records.ListPrescriptions(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("list prescriptions: %w", err)
	}

	personal, family := historyTexts(history)

	lines := []string{
		labelPatient + ": " + patient.FullName,
		fmt.Sprintf("%s: %s, %s: %s, %s: %s",
			labelBirthDate, orDash(patient.BirthDate),
			labelSex, orDash(patient.Sex),
			labelBloodGroup, orDash(patient.BloodGroup)),
		labelNationalID + ": " + orDash(patient.NationalID),
		labelAddress + ": " + orDash(patient.Address),
		labelContact + ": " + orDash(patient.Contact),
		labelEmergencyContact + ": " + orDash(patient.EmergencyContact),
		"",
		labelPersonalHistory + ":",
		orDash(personal),
		"",
		labelFamilyHistory + ":",
		orDash(family),
		"",
		labelNotes + ":",
	}
	for _, n := range notes {
		lines = append(lines, fmt.Sprintf("[%s] %s", n.Date, n.Content))
	}
	lines = append(lines, "", labelPrescriptions+":")
	for _, p := range prescriptions {
		lines = append(lines, fmt.Sprintf("[%s] %s\n%s", p.Date, orDash(p.Physician), p.Content))
	}

	return strings.Join(lines, "\n"), nil
}

// BuildEssential renders the four fields shown when the assistant cannot
// answer: name, age, blood group and history.
func (b *Builder) BuildEssential(ctx context.Context, patientID int64) (string, error) {
	patient, err := b.records.GetPatient(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("get patient: %w", err)
	}
	if patient == nil {
		return NotFoundText, nil
	}

	history, err := b.records.GetMedicalHistory(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("get medical history: %w", err)
	}
	personal, family := historyTexts(history)

	age := notProvided
	if years, ok := ComputeAge(patient.BirthDate, b.now()); ok {
		age = fmt.Sprintf("%d ans", years)
	}

	lines := []string{
		labelPatient + " : " + patient.FullName,
		labelAge + " : " + age,
		labelBloodGroup + " : " + orDefault(patient.BloodGroup, notProvided),
		labelPersonalHistory + " : " + orDefault(personal, none),
		labelFamilyHistory + " : " + orDefault(family, none),
	}
	return strings.Join(lines, "\n"), nil
}

func historyTexts(h *entity.MedicalHistory) (personal, family string) {
	if h == nil {
		return "", ""
	}
	return h.Personal, h.Family
}

func orDash(s string) string {
	return orDefault(s, dash)
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
