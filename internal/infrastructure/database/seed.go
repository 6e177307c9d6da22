package database

import (
	"context"
	"fmt"
	"time"

	"hospital-dashboard/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DemoPatient returns the demonstration record loaded by Seed.
func DemoPatient() *entity.Patient {
	visit, _ := entity.ParseRecordDate("14/02/2025", time.Time{})

	note := entity.ConsultationNote{
		Content: "Patient conscient, orientation temporo-spatiale conservée.\n" +
			"Examen clinique sans particularité.\n" +
			"Conclusion : Suivi habituel.",
	}
	note.SetDate(visit)

	prescription := entity.Prescription{
		Physician: "Dr. Martin",
		Content: "Paracétamol 1000 mg : 1 comprimé x 3/jour pendant 5 jours\n" +
			"Metformine 850 mg : 1 comprimé matin et soir",
	}
	prescription.SetDate(visit)

	return &entity.Patient{
		FullName:         "Omar Belhamid",
		BirthDate:        "15/03/1985",
		Sex:              "Masculin",
		BloodGroup:       "O+",
		NationalID:       "1 85 03 75 123 45 67",
		Address:          "12 rue Mohammed V, 20000 Casablanca, Maroc",
		Contact:          "06 12 34 56 78 — omar.belhamid@email.com",
		EmergencyContact: "Fatima Belhamid — 06 98 76 54 32 — Épouse",
		MedicalHistory: &entity.MedicalHistory{
			Personal: "Allergie à la pénicilline (2010). Diabète de type 2 depuis 2018. Hypertension artérielle. Appendicectomie en 2005.",
			Family:   "Diabète familial (père, sœur). Cardiopathie (mère). Cancer colorectal (oncle maternel).",
		},
		ConsultationNotes: []entity.ConsultationNote{note},
		Prescriptions:     []entity.Prescription{prescription},
	}
}

// Seed inserts the demonstration patient when the patients table is empty.
// It returns the id of the seeded patient, or 0 when data already exists.
func Seed(ctx context.Context, db *gorm.DB, log *logrus.Logger) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count patients: %w", err)
	}
	if count > 0 {
		log.Info("Database already has data, skipping seed")
		return 0, nil
	}

	patient := DemoPatient()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(patient).Error
	})
	if err != nil {
		return 0, fmt.Errorf("seed demo patient: %w", err)
	}

	log.WithField("patient_id", patient.ID).Info("Database seeded with demo patient")
	return patient.ID, nil
}
