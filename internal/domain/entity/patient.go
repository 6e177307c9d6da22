package entity

import "time"

// Patient is the identity record created at intake and edited by staff.
type Patient struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName         string    `gorm:"type:text;not null" json:"full_name"`
	BirthDate        string    `gorm:"type:varchar(32);not null" json:"birth_date"`
	Sex              string    `gorm:"type:varchar(32);not null" json:"sex"`
	BloodGroup       string    `gorm:"type:varchar(8);not null;default:''" json:"blood_group"`
	NationalID       string    `gorm:"type:varchar(64);not null" json:"national_id"`
	Address          string    `gorm:"type:text;not null" json:"address"`
	Contact          string    `gorm:"type:text;not null" json:"contact"`
	EmergencyContact string    `gorm:"type:text;not null" json:"emergency_contact"`
	PhotoRef         string    `gorm:"type:text;not null;default:''" json:"photo_ref"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalHistory    *MedicalHistory    `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"medical_history,omitempty"`
	ConsultationNotes []ConsultationNote `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"consultation_notes,omitempty"`
	Prescriptions     []Prescription     `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"prescriptions,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// HasPhoto reports whether an identity photo has been uploaded.
func (p *Patient) HasPhoto() bool {
	return p.PhotoRef != ""
}
