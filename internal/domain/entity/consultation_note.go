package entity

import "time"

// ConsultationNote is a visit report. It is never edited, only deleted.
type ConsultationNote struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int64     `gorm:"not null;index" json:"patient_id"`
	Date      string    `gorm:"type:varchar(32);not null" json:"date"`
	DateKey   time.Time `gorm:"type:date;not null;index" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ConsultationNote) TableName() string {
	return "consultation_notes"
}

// SetDate stores both the display string and its calendar key.
func (n *ConsultationNote) SetDate(d RecordDate) {
	n.Date = d.Display
	n.DateKey = d.Key
}
