package summary

import (
	"math"
	"time"

	"hospital-dashboard/internal/domain/entity"
)

const daysPerYear = 365.25

// ComputeAge returns whole years between birthDate and ref, counted as
// elapsed days divided by 365.25 and floored. It reports false when the
// date cannot be parsed or lies after ref.
func ComputeAge(birthDate string, ref time.Time) (int, bool) {
	birth, err := entity.ParseCalendarDate(birthDate)
	if err != nil {
		return 0, false
	}
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	days := day.Sub(birth).Hours() / 24
	age := int(math.Floor(days / daysPerYear))
	if age < 0 {
		return 0, false
	}
	return age, true
}
