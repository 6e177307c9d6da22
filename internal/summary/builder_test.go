package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hospital-dashboard/internal/domain/entity"
)

type memoryRecords struct {
	patients      map[int64]*entity.Patient
	histories     map[int64]*entity.MedicalHistory
	notes         map[int64][]entity.ConsultationNote
	prescriptions map[int64][]entity.Prescription
	err           error
}

func (m *memoryRecords) GetPatient(ctx context.Context, id int64) (*entity.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.patients[id], nil
}

func (m *memoryRecords) GetMedicalHistory(ctx context.Context, patientID int64) (*entity.MedicalHistory, error) {
	return m.histories[patientID], nil
}

func (m *memoryRecords) ListConsultationNotes(ctx context.Context, patientID int64) ([]entity.ConsultationNote, error) {
	return m.notes[patientID], nil
}

func (m *memoryRecords) ListPrescriptions(ctx context.Context, patientID int64) ([]entity.Prescription, error) {
	return m.prescriptions[patientID], nil
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func seededRecords() *memoryRecords {
	return &memoryRecords{
		patients: map[int64]*entity.Patient{
			1: {
				ID:               1,
				FullName:         "Omar Belhamid",
				BirthDate:        "15/03/1985",
				Sex:              "Masculin",
				BloodGroup:       "O+",
				NationalID:       "1 85 03 75 123 45 67",
				Address:          "12 rue Mohammed V, 20000 Casablanca, Maroc",
				Contact:          "06 12 34 56 78",
				EmergencyContact: "Fatima Belhamid",
			},
			2: {ID: 2, FullName: "Jeanne Martin", BirthDate: "inconnue", Sex: "Féminin"},
		},
		histories: map[int64]*entity.MedicalHistory{
			1: {PatientID: 1, Personal: "Diabète de type 2", Family: "Cardiopathie (mère)"},
		},
		notes: map[int64][]entity.ConsultationNote{
			1: {
				{ID: 2, PatientID: 1, Date: "20/05/2025", Content: "Contrôle glycémie."},
				{ID: 1, PatientID: 1, Date: "14/02/2025", Content: "Consultation de suivi."},
			},
		},
		prescriptions: map[int64][]entity.Prescription{
			1: {{ID: 1, PatientID: 1, Date: "14/02/2025", Physician: "Dr. Martin", Content: "Metformine 850 mg"}},
		},
	}
}

func TestBuildFull_RendersEverySection(t *testing.T) {
	b := NewBuilder(seededRecords(), fixedClock)

	got, err := b.BuildFull(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Patient: Omar Belhamid",
		"Date de naissance: 15/03/1985, Sexe: Masculin, Groupe sanguin: O+",
		"N° Sécurité sociale: 1 85 03 75 123 45 67",
		"Adresse: 12 rue Mohammed V, 20000 Casablanca, Maroc",
		"Coordonnées: 06 12 34 56 78",
		"Personne à contacter: Fatima Belhamid",
		"",
		"Antécédents personnels:",
		"Diabète de type 2",
		"",
		"Antécédents familiaux:",
		"Cardiopathie (mère)",
		"",
		"Comptes-rendus:",
		"[20/05/2025] Contrôle glycémie.",
		"[14/02/2025] Consultation de suivi.",
		"",
		"Ordonnances:",
		"[14/02/2025] Dr. Martin",
		"Metformine 850 mg",
	}, "\n")

	if got != want {
		t.Errorf("unexpected summary:\n%s\n--- want ---\n%s", got, want)
	}
}

func TestBuildFull_EmptyFieldsAndSections(t *testing.T) {
	b := NewBuilder(seededRecords(), fixedClock)

	got, err := b.BuildFull(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "Groupe sanguin: —") {
		t.Errorf("expected dash for missing blood group:\n%s", got)
	}
	if !strings.Contains(got, "Antécédents personnels:\n—\n") {
		t.Errorf("expected dash for missing history:\n%s", got)
	}
	if !strings.Contains(got, "Comptes-rendus:\n\nOrdonnances:") {
		t.Errorf("expected empty notes section:\n%s", got)
	}
	if !strings.HasSuffix(got, "Ordonnances:") {
		t.Errorf("expected summary to end with prescriptions header:\n%s", got)
	}
}

func TestBuildFull_IsIdempotent(t *testing.T) {
	b := NewBuilder(seededRecords(), fixedClock)

	first, err := b.BuildFull(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := b.BuildFull(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected byte-identical output across calls")
	}
}

func TestBuild_MissingPatientReturnsSentinel(t *testing.T) {
	b := NewBuilder(seededRecords(), fixedClock)

	full, err := b.BuildFull(context.Background(), 99)
	if err != nil || full != NotFoundText {
		t.Errorf("BuildFull: got %q, %v", full, err)
	}
	essential, err := b.BuildEssential(context.Background(), 99)
	if err != nil || essential != NotFoundText {
		t.Errorf("BuildEssential: got %q, %v", essential, err)
	}
}

func TestBuild_StoreErrorIsReturned(t *testing.T) {
	records := seededRecords()
	records.err = errors.New("connection refused")
	b := NewBuilder(records, fixedClock)

	if _, err := b.BuildFull(context.Background(), 1); err == nil {
		t.Error("expected BuildFull to return the store error")
	}
	if _, err := b.BuildEssential(context.Background(), 1); err == nil {
		t.Error("expected BuildEssential to return the store error")
	}
}

func TestBuildEssential(t *testing.T) {
	b := NewBuilder(seededRecords(), fixedClock)

	tests := []struct {
		name string
		id   int64
		want string
	}{
		{
			name: "complete record",
			id:   1,
			want: "Patient : Omar Belhamid\n" +
				"Âge : 40 ans\n" +
				"Groupe sanguin : O+\n" +
				"Antécédents personnels : Diabète de type 2\n" +
				"Antécédents familiaux : Cardiopathie (mère)",
		},
		{
			name: "placeholders",
			id:   2,
			want: "Patient : Jeanne Martin\n" +
				"Âge : non renseigné\n" +
				"Groupe sanguin : non renseigné\n" +
				"Antécédents personnels : aucun\n" +
				"Antécédents familiaux : aucun",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.BuildEssential(context.Background(), tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}
