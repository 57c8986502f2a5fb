package models

import "time"

type TeamMember struct {
	ID        string
	CompanyID string
	FirstName string
	LastName  string
	Email     string
	Role      string
	Status    string
	CreatedAt time.Time
}

type CustomRole struct {
	ID                  string
	CompanyID           string
	RoleName            string
	Description         string
	Permissions         []byte
	DetailedPermissions []byte
	DisplayOrder        int
	IsPredefined        bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ApprovalWorkflow struct {
	ID           string
	CompanyID    string
	DepartmentID string
	ApproverID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
