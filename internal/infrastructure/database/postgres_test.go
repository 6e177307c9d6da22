package database

import (
	"strings"
	"testing"

	"hospital-dashboard/config"
	"hospital-dashboard/internal/summary"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DBConfig{
		Host:     "db",
		Port:     "5433",
		User:     "staff",
		Password: "secret",
		Name:     "hospital",
		SSLMode:  "require",
		TimeZone: "Africa/Casablanca",
	})

	for _, part := range []string{"host=db", "port=5433", "user=staff", "dbname=hospital", "sslmode=require", "TimeZone=Africa/Casablanca"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("expected %q in DSN %q", part, dsn)
		}
	}
}

func TestMigrationFilesArePaired(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	if ups == 0 || ups != downs {
		t.Errorf("expected paired up/down migrations, got %d up and %d down", ups, downs)
	}
}

func TestDemoPatient(t *testing.T) {
	p := DemoPatient()

	if p.FullName != "Omar Belhamid" {
		t.Errorf("unexpected name %q", p.FullName)
	}
	if age, ok := summary.ComputeAge(p.BirthDate, p.ConsultationNotes[0].DateKey); !ok || age != 39 {
		t.Errorf("expected age 39 at the seeded visit, got %d (%v)", age, ok)
	}
	if p.MedicalHistory == nil || p.MedicalHistory.Personal == "" {
		t.Error("expected seeded personal history")
	}
	if len(p.Prescriptions) != 1 || p.Prescriptions[0].Date != "14/02/2025" || p.Prescriptions[0].DateKey.IsZero() {
		t.Errorf("unexpected seeded prescription %+v", p.Prescriptions)
	}
}
