package entity

import (
	"testing"
	"time"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"15/03/1985", time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"5/3/1985", time.Date(1985, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"1985-03-15", time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{" 2025-02-14 ", time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), true},
		{"31/02/2020", time.Time{}, false},
		{"14-02-2025", time.Time{}, false},
		{"hier", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		got, err := ParseCalendarDate(tt.in)
		if tt.ok && err != nil {
			t.Errorf("ParseCalendarDate(%q): unexpected error %v", tt.in, err)
			continue
		}
		if !tt.ok {
			if err != ErrInvalidRecordDate {
				t.Errorf("ParseCalendarDate(%q): expected ErrInvalidRecordDate, got %v", tt.in, err)
			}
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseCalendarDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRecordDate_DefaultsToToday(t *testing.T) {
	now := time.Date(2025, 6, 1, 17, 30, 0, 0, time.UTC)

	d, err := ParseRecordDate("  ", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Display != "01/06/2025" {
		t.Errorf("expected display 01/06/2025, got %q", d.Display)
	}
	if !d.Key.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected key %v", d.Key)
	}
}

func TestParseRecordDate_KeepsDisplayString(t *testing.T) {
	d, err := ParseRecordDate("9/2/2025", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Display != "9/2/2025" {
		t.Errorf("display should be kept verbatim, got %q", d.Display)
	}
	if d.Key.Month() != time.February || d.Key.Day() != 9 {
		t.Errorf("unexpected key %v", d.Key)
	}
}

func TestRecordDate_OrdersAcrossDayBoundaries(t *testing.T) {
	earlier, _ := ParseRecordDate("09/02/2025", time.Now())
	later, _ := ParseRecordDate("10/01/2026", time.Now())

	// Text comparison would put "09/02/2025" after "10/01/2026" in descending order.
	if !later.Key.After(earlier.Key) {
		t.Error("expected calendar key to order 2026 after 2025")
	}
}

func TestPrescription_MarkDispensed(t *testing.T) {
	p := &Prescription{}
	if !p.MarkDispensed(true) {
		t.Error("expected change when flag goes false -> true")
	}
	if p.MarkDispensed(true) {
		t.Error("expected no change when flag is already true")
	}
	if !p.Dispensed {
		t.Error("expected dispensed to be true")
	}
}
