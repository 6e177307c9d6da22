package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records every mutation made through the record API.
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Entity    string            `gorm:"type:varchar(64);not null" json:"entity"`
	EntityID  string            `gorm:"type:varchar(64);not null;index" json:"entity_id"`
	RequestID string            `gorm:"type:varchar(64)" json:"request_id,omitempty"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionPatientCreate      = "patient.create"
	AuditActionPatientUpdate      = "patient.update"
	AuditActionPatientDelete      = "patient.delete"
	AuditActionPatientPhoto       = "patient.photo"
	AuditActionHistoryUpdate      = "history.update"
	AuditActionNoteCreate         = "note.create"
	AuditActionNoteDelete         = "note.delete"
	AuditActionPrescriptionCreate = "prescription.create"
	AuditActionPrescriptionUpdate = "prescription.update"
	AuditActionPrescriptionDelete = "prescription.delete"
)

// Audited entity names.
const (
	AuditEntityPatient      = "patient"
	AuditEntityHistory      = "medical_history"
	AuditEntityNote         = "consultation_note"
	AuditEntityPrescription = "prescription"
)

// IsAuditEntity reports whether name is one of the audited entity names.
func IsAuditEntity(name string) bool {
	switch name {
	case AuditEntityPatient, AuditEntityHistory, AuditEntityNote, AuditEntityPrescription:
		return true
	}
	return false
}
