package role

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegacyProjection_DenyAll(t *testing.T) {
	var detailed DetailedPermissions
	require.Equal(t, LegacyPermissions{}, detailed.Legacy())
}

func TestLegacyProjection_AllGranted(t *testing.T) {
	legacy := AllGranted().Legacy()
	require.Equal(t, LegacyPermissions{
		Dashboard:      true,
		Employees:      true,
		HealthCheckups: true,
		Documents:      true,
		Reports:        true,
		Audits:         true,
		Settings:       true,
	}, legacy)
}

func TestLegacyProjection_DestructiveCapabilitiesDoNotGrantAreas(t *testing.T) {
	var detailed DetailedPermissions
	detailed.Employees.Delete = true
	detailed.HealthExaminations.MedicalEvaluations = true
	detailed.HealthExaminations.Delete = true
	detailed.Documents.Delete = true
	detailed.Audits.CloseFeedback = true

	require.Equal(t, LegacyPermissions{}, detailed.Legacy())
}

func TestLegacyProjection_SingleCapabilityGrantsArea(t *testing.T) {
	var detailed DetailedPermissions
	detailed.HealthExaminations.ViewOwn = true
	detailed.Settings.SubscriptionBilling = true

	legacy := detailed.Legacy()
	require.True(t, legacy.HealthCheckups)
	require.True(t, legacy.Settings)
	require.False(t, legacy.Employees)
	require.False(t, legacy.Dashboard)
}

func TestLegacyProjection_Deterministic(t *testing.T) {
	var detailed DetailedPermissions
	detailed.Reports.ExportData = true

	first := detailed.Legacy()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, detailed.Legacy())
	}
}

func TestDetailedPermissions_Set(t *testing.T) {
	var detailed DetailedPermissions
	require.NoError(t, detailed.Set("audits", "create_edit", true))
	require.True(t, detailed.Audits.CreateEdit)

	require.Error(t, detailed.Set("unknown", "create_edit", true))
	require.Error(t, detailed.Set("audits", "unknown", true))
}

func TestLegacyPermissions_Set(t *testing.T) {
	var legacy LegacyPermissions
	require.NoError(t, legacy.Set("healthCheckups", true))
	require.True(t, legacy.HealthCheckups)

	require.Error(t, legacy.Set("unknown", true))
}

func TestIsPredefined(t *testing.T) {
	for _, name := range []string{"Admin", "HSE Manager", "Line Manager", "Doctor", "Employee", "User"} {
		require.True(t, IsPredefined(name), name)
	}
	require.False(t, IsPredefined("Night Shift Lead"))
}
