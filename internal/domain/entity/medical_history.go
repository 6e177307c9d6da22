package entity

// MedicalHistory holds the personal and family history of one patient.
type MedicalHistory struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int64  `gorm:"not null;uniqueIndex" json:"patient_id"`
	Personal  string `gorm:"type:text;not null;default:''" json:"personal"`
	Family    string `gorm:"type:text;not null;default:''" json:"family"`
}

func (MedicalHistory) TableName() string {
	return "medical_histories"
}
