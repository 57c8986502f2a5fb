package models

import "time"

type AuditEntry struct {
	ID         string
	CompanyID  string
	Action     string
	TargetType string
	TargetID   *string
	TargetName *string
	Details    []byte
	CreatedAt  time.Time
}
