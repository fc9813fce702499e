package domain

import "time"

// AuditFields are embedded in every persisted domain entity.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
