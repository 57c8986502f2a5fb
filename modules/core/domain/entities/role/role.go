package role

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrRoleNotFound = errors.New("role not found")

// PredefinedRoles ship with every company and can never be deleted.
var PredefinedRoles = []string{"Admin", "HSE Manager", "Line Manager", "Doctor", "Employee", "User"}

func IsPredefined(roleName string) bool {
	for _, name := range PredefinedRoles {
		if name == roleName {
			return true
		}
	}
	return false
}

type StandardPermissions struct {
	CollaborateOnCases bool `json:"collaborate_on_cases"`
	AssignToTeams      bool `json:"assign_to_teams"`
}

type EmployeePermissions struct {
	ViewAll           bool `json:"view_all"`
	ViewOwnDepartment bool `json:"view_own_department"`
	Manage            bool `json:"manage"`
	Delete            bool `json:"delete"`
	ShareProfiles     bool `json:"share_profiles"`
}

type HealthExaminationPermissions struct {
	ViewAll            bool `json:"view_all"`
	ViewTeam           bool `json:"view_team"`
	ViewOwn            bool `json:"view_own"`
	CreateEdit         bool `json:"create_edit"`
	MedicalEvaluations bool `json:"medical_evaluations"`
	Delete             bool `json:"delete"`
}

type DocumentPermissions struct {
	View   bool `json:"view"`
	Upload bool `json:"upload"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

type AuditPermissions struct {
	View                    bool `json:"view"`
	CreateEdit              bool `json:"create_edit"`
	AssignCorrectiveActions bool `json:"assign_corrective_actions"`
	CloseFeedback           bool `json:"close_feedback"`
}

type ReportPermissions struct {
	View             bool `json:"view"`
	CreateDashboards bool `json:"create_dashboards"`
	ExportData       bool `json:"export_data"`
}

type SettingsPermissions struct {
	CompanyLocation       bool `json:"company_location"`
	UserRoleManagement    bool `json:"user_role_management"`
	GDPRDataProtection    bool `json:"gdpr_data_protection"`
	TemplatesCustomFields bool `json:"templates_custom_fields"`
	SubscriptionBilling   bool `json:"subscription_billing"`
}

// DetailedPermissions is the granular capability matrix stored per role.
type DetailedPermissions struct {
	Standard           StandardPermissions          `json:"standard"`
	Employees          EmployeePermissions          `json:"employees"`
	HealthExaminations HealthExaminationPermissions `json:"health_examinations"`
	Documents          DocumentPermissions          `json:"documents"`
	Audits             AuditPermissions             `json:"audits"`
	Reports            ReportPermissions            `json:"reports"`
	Settings           SettingsPermissions          `json:"settings"`
}

// Set flips one capability addressed by its category and permission keys as
// they appear on the wire. Unknown keys are rejected.
func (d *DetailedPermissions) Set(category, permission string, value bool) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	var matrix map[string]map[string]bool
	if err := json.Unmarshal(raw, &matrix); err != nil {
		return err
	}
	capabilities, ok := matrix[category]
	if !ok {
		return errors.Errorf("unknown permission category %q", category)
	}
	if _, ok := capabilities[permission]; !ok {
		return errors.Errorf("unknown permission %q in category %q", permission, category)
	}
	capabilities[permission] = value

	raw, err = json.Marshal(matrix)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, d)
}

// LegacyPermissions is the flat per-area map older clients read. It is never
// edited directly: every write derives it from the detailed matrix.
type LegacyPermissions struct {
	Dashboard      bool `json:"dashboard"`
	Employees      bool `json:"employees"`
	HealthCheckups bool `json:"healthCheckups"`
	Documents      bool `json:"documents"`
	Reports        bool `json:"reports"`
	Audits         bool `json:"audits"`
	Settings       bool `json:"settings"`
}

// Set flips one area flag addressed by its wire key.
func (l *LegacyPermissions) Set(area string, value bool) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return err
	}
	var flags map[string]bool
	if err := json.Unmarshal(raw, &flags); err != nil {
		return err
	}
	if _, ok := flags[area]; !ok {
		return errors.Errorf("unknown permission area %q", area)
	}
	flags[area] = value

	raw, err = json.Marshal(flags)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, l)
}

// Legacy projects the detailed matrix onto the flat map. An area is granted
// when any of its constituent view/manage capabilities is granted; destructive
// capabilities (delete, medical evaluations, action feedback) do not count
// toward area access on their own.
func (d DetailedPermissions) Legacy() LegacyPermissions {
	return LegacyPermissions{
		Dashboard: d.Standard.CollaborateOnCases || d.Standard.AssignToTeams,
		Employees: d.Employees.ViewAll || d.Employees.ViewOwnDepartment || d.Employees.Manage,
		HealthCheckups: d.HealthExaminations.ViewAll || d.HealthExaminations.ViewTeam ||
			d.HealthExaminations.ViewOwn || d.HealthExaminations.CreateEdit,
		Documents: d.Documents.View || d.Documents.Upload || d.Documents.Edit,
		Reports:   d.Reports.View || d.Reports.CreateDashboards || d.Reports.ExportData,
		Audits:    d.Audits.View || d.Audits.CreateEdit || d.Audits.AssignCorrectiveActions,
		Settings: d.Settings.CompanyLocation || d.Settings.UserRoleManagement ||
			d.Settings.GDPRDataProtection || d.Settings.TemplatesCustomFields ||
			d.Settings.SubscriptionBilling,
	}
}

// AllGranted is the Admin matrix.
func AllGranted() DetailedPermissions {
	return DetailedPermissions{
		Standard:  StandardPermissions{CollaborateOnCases: true, AssignToTeams: true},
		Employees: EmployeePermissions{ViewAll: true, ViewOwnDepartment: true, Manage: true, Delete: true, ShareProfiles: true},
		HealthExaminations: HealthExaminationPermissions{
			ViewAll: true, ViewTeam: true, ViewOwn: true,
			CreateEdit: true, MedicalEvaluations: true, Delete: true,
		},
		Documents: DocumentPermissions{View: true, Upload: true, Edit: true, Delete: true},
		Audits:    AuditPermissions{View: true, CreateEdit: true, AssignCorrectiveActions: true, CloseFeedback: true},
		Reports:   ReportPermissions{View: true, CreateDashboards: true, ExportData: true},
		Settings: SettingsPermissions{
			CompanyLocation: true, UserRoleManagement: true, GDPRDataProtection: true,
			TemplatesCustomFields: true, SubscriptionBilling: true,
		},
	}
}

type Role struct {
	ID                  uuid.UUID
	CompanyID           uuid.UUID
	RoleName            string
	Description         string
	Permissions         LegacyPermissions
	DetailedPermissions DetailedPermissions
	DisplayOrder        int
	IsPredefined        bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Repository interface {
	List(ctx context.Context) ([]*Role, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Role, error)
	GetByName(ctx context.Context, roleName string) (*Role, error)
	Create(ctx context.Context, data *Role) error
	Update(ctx context.Context, data *Role) error
	// Upsert writes the role keyed on (company_id, role_name).
	Upsert(ctx context.Context, data *Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}
