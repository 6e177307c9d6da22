package dto

import "time"

// AuditLogResponse flattens the stored metadata into the before/after values
// shown in the dashboard history panel.
type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Action    string      `json:"action"`
	Entity    string      `json:"entity"`
	EntityID  string      `json:"entity_id"`
	RequestID string      `json:"request_id,omitempty"`
	OldValue  interface{} `json:"old_value,omitempty"`
	NewValue  interface{} `json:"new_value,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
