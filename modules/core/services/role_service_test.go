package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/role"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type stubPublisher struct {
	published []interface{}
}

func (s *stubPublisher) Publish(args ...interface{}) {
	s.published = append(s.published, args...)
}
func (s *stubPublisher) Subscribe(handler interface{})   {}
func (s *stubPublisher) Unsubscribe(handler interface{}) {}
func (s *stubPublisher) Clear()                          {}
func (s *stubPublisher) SubscribersCount() int           { return 0 }

type mockRoleRepo struct {
	roles   map[string]*role.Role
	deleted []uuid.UUID
	updated *role.Role
}

func newMockRoleRepo(roles ...*role.Role) *mockRoleRepo {
	m := &mockRoleRepo{roles: map[string]*role.Role{}}
	for _, data := range roles {
		if data.ID == uuid.Nil {
			data.ID = uuid.New()
		}
		m.roles[data.RoleName] = data
	}
	return m
}

func (m *mockRoleRepo) List(ctx context.Context) ([]*role.Role, error) {
	out := make([]*role.Role, 0, len(m.roles))
	for _, data := range m.roles {
		out = append(out, data)
	}
	return out, nil
}

func (m *mockRoleRepo) GetByID(ctx context.Context, id uuid.UUID) (*role.Role, error) {
	for _, data := range m.roles {
		if data.ID == id {
			return data, nil
		}
	}
	return nil, role.ErrRoleNotFound
}

func (m *mockRoleRepo) GetByName(ctx context.Context, roleName string) (*role.Role, error) {
	if data, ok := m.roles[roleName]; ok {
		return data, nil
	}
	return nil, role.ErrRoleNotFound
}

func (m *mockRoleRepo) Create(ctx context.Context, data *role.Role) error {
	data.ID = uuid.New()
	m.roles[data.RoleName] = data
	return nil
}

func (m *mockRoleRepo) Update(ctx context.Context, data *role.Role) error {
	m.updated = data
	m.roles[data.RoleName] = data
	return nil
}

func (m *mockRoleRepo) Upsert(ctx context.Context, data *role.Role) error {
	if existing, ok := m.roles[data.RoleName]; ok {
		data.ID = existing.ID
	} else if data.ID == uuid.Nil {
		data.ID = uuid.New()
	}
	m.roles[data.RoleName] = data
	return nil
}

func (m *mockRoleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	for name, data := range m.roles {
		if data.ID == id {
			delete(m.roles, name)
			return nil
		}
	}
	return role.ErrRoleNotFound
}

func testContext() context.Context {
	return composables.WithCompanyID(context.Background(), uuid.New())
}

func TestRoleService_DeletePredefinedRejected(t *testing.T) {
	admin := &role.Role{RoleName: "Admin", IsPredefined: true}
	repo := newMockRoleRepo(admin)
	svc := NewRoleService(repo, &stubPublisher{})

	err := svc.Delete(testContext(), admin.ID)
	require.Error(t, err)

	var base *serrors.BaseError
	require.ErrorAs(t, err, &base)
	require.Equal(t, "ROLE_PREDEFINED", base.Code)
	require.Empty(t, repo.deleted, "repository delete should not run for predefined roles")
}

func TestRoleService_DeletePredefinedByNameRejected(t *testing.T) {
	// A predefined role whose row lost the flag is still protected by name.
	doctor := &role.Role{RoleName: "Doctor", IsPredefined: false}
	repo := newMockRoleRepo(doctor)
	svc := NewRoleService(repo, &stubPublisher{})

	err := svc.Delete(testContext(), doctor.ID)
	require.Error(t, err)
	require.Empty(t, repo.deleted)
}

func TestRoleService_DeleteCustomRole(t *testing.T) {
	custom := &role.Role{RoleName: "Night Shift Lead"}
	repo := newMockRoleRepo(custom)
	svc := NewRoleService(repo, &stubPublisher{})

	require.NoError(t, svc.Delete(testContext(), custom.ID))
	require.Equal(t, []uuid.UUID{custom.ID}, repo.deleted)
}

func TestRoleService_CreateDeniedWithoutCapability(t *testing.T) {
	t.Cleanup(func() { authorizeSettingsFn = defaultAuthorizeSettings })

	repo := newMockRoleRepo()
	svc := NewRoleService(repo, &stubPublisher{})

	authorizeSettingsFn = func(ctx context.Context, roles role.Repository) error {
		return serrors.NewError("AUTHZ_FORBIDDEN", "permission denied", "")
	}

	_, err := svc.Create(testContext(), "Auditor", "")
	require.Error(t, err)
	require.Empty(t, repo.roles, "repository should not be called when authorization fails")
}

func TestRoleService_CreateStartsDenyAll(t *testing.T) {
	t.Cleanup(func() { authorizeSettingsFn = defaultAuthorizeSettings })
	authorizeSettingsFn = func(ctx context.Context, roles role.Repository) error { return nil }

	repo := newMockRoleRepo()
	svc := NewRoleService(repo, &stubPublisher{})

	data, err := svc.Create(testContext(), " Auditor ", " External audits ")
	require.NoError(t, err)
	require.Equal(t, "Auditor", data.RoleName)
	require.Equal(t, "External audits", data.Description)
	require.Equal(t, role.DetailedPermissions{}, data.DetailedPermissions)
	require.Equal(t, role.LegacyPermissions{}, data.Permissions)
}

func TestRoleService_UpdateDetailedPermissionRewritesLegacy(t *testing.T) {
	data := &role.Role{RoleName: "Auditor"}
	repo := newMockRoleRepo(data)
	svc := NewRoleService(repo, &stubPublisher{})

	updated, err := svc.UpdateDetailedPermission(testContext(), "Auditor", "audits", "view", true)
	require.NoError(t, err)
	require.True(t, updated.DetailedPermissions.Audits.View)
	require.True(t, updated.Permissions.Audits, "legacy map must be derived on every detailed update")

	updated, err = svc.UpdateDetailedPermission(testContext(), "Auditor", "audits", "view", false)
	require.NoError(t, err)
	require.False(t, updated.Permissions.Audits)
}

func TestRoleService_UpdateLegacyPermissionCreatesRow(t *testing.T) {
	repo := newMockRoleRepo()
	svc := NewRoleService(repo, &stubPublisher{})

	updated, err := svc.UpdateLegacyPermission(testContext(), "HSE Manager", "documents", true)
	require.NoError(t, err)
	require.True(t, updated.Permissions.Documents)
	require.True(t, updated.IsPredefined)
	require.Contains(t, repo.roles, "HSE Manager")
}

func TestDefaultAuthorizeSettings(t *testing.T) {
	manager := &role.Role{RoleName: "HSE Manager"}
	manager.DetailedPermissions.Settings.UserRoleManagement = true
	viewer := &role.Role{RoleName: "Employee"}
	repo := newMockRoleRepo(manager, viewer)

	ctx := composables.WithActor(testContext(), composables.Actor{Email: "m@acme.test", Role: "HSE Manager"})
	require.NoError(t, defaultAuthorizeSettings(ctx, repo))

	ctx = composables.WithActor(testContext(), composables.Actor{Email: "e@acme.test", Role: "Employee"})
	require.Error(t, defaultAuthorizeSettings(ctx, repo))

	// Admin passes even without a seeded role row.
	ctx = composables.WithActor(testContext(), composables.Actor{Email: "a@acme.test", Role: "Admin"})
	require.NoError(t, defaultAuthorizeSettings(ctx, repo))

	require.Error(t, defaultAuthorizeSettings(testContext(), repo), "missing actor is denied")
}
