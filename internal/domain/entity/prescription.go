package entity

import "time"

// Prescription is an ordonnance written during a visit.
type Prescription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int64     `gorm:"not null;index" json:"patient_id"`
	Date      string    `gorm:"type:varchar(32);not null" json:"date"`
	DateKey   time.Time `gorm:"type:date;not null;index" json:"-"`
	Physician string    `gorm:"type:text;not null" json:"physician"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Dispensed bool      `gorm:"not null;default:false" json:"dispensed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// SetDate stores both the display string and its calendar key.
func (p *Prescription) SetDate(d RecordDate) {
	p.Date = d.Display
	p.DateKey = d.Key
}

// MarkDispensed sets the dispensed flag and reports whether it changed.
func (p *Prescription) MarkDispensed(dispensed bool) bool {
	if p.Dispensed == dispensed {
		return false
	}
	p.Dispensed = dispensed
	return true
}
