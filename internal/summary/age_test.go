package summary

import (
	"testing"
	"time"
)

func TestComputeAge(t *testing.T) {
	june2025 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	jan2025 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		birth  string
		ref    time.Time
		want   int
		wantOK bool
	}{
		{"15/03/1985", june2025, 40, true},
		{"1985-03-15", june2025, 40, true},
		{"01/06/2025", june2025, 0, true},
		{"01/01/2099", jan2025, 0, false},
		{"02/06/2025", june2025, 0, false},
		{"not a date", june2025, 0, false},
		{"", june2025, 0, false},
	}

	for _, tt := range tests {
		got, ok := ComputeAge(tt.birth, tt.ref)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ComputeAge(%q, %s) = (%d, %v), want (%d, %v)",
				tt.birth, tt.ref.Format("2006-01-02"), got, ok, tt.want, tt.wantOK)
		}
	}
}
