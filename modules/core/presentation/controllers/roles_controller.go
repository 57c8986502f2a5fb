package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/member"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/role"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/workflow"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/constants"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
)

func isNotFound(err error) bool {
	return errors.Is(err, role.ErrRoleNotFound) ||
		errors.Is(err, member.ErrMemberNotFound) ||
		errors.Is(err, workflow.ErrWorkflowNotFound)
}

type RolesController struct {
	app      application.Application
	basePath string
}

func NewRolesController(app application.Application) application.Controller {
	return &RolesController{
		app:      app,
		basePath: "/api/settings/roles",
	}
}

func (c *RolesController) Key() string {
	return c.basePath
}

func (c *RolesController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", metrics.Instrument("roles_list", c.list)).Methods(http.MethodGet)
	router.HandleFunc("", metrics.Instrument("roles_create", c.create)).Methods(http.MethodPost)
	router.HandleFunc("/{id}/description", metrics.Instrument("roles_update_description", c.updateDescription)).Methods(http.MethodPut)
	router.HandleFunc("/{roleName}/detailed-permissions", metrics.Instrument("roles_update_detailed", c.updateDetailedPermission)).Methods(http.MethodPut)
	router.HandleFunc("/{roleName}/permissions", metrics.Instrument("roles_update_legacy", c.updateLegacyPermission)).Methods(http.MethodPut)
	router.HandleFunc("/{id}", metrics.Instrument("roles_delete", c.delete)).Methods(http.MethodDelete)
}

type createRoleDTO struct {
	RoleName    string `json:"roleName" validate:"required"`
	Description string `json:"description"`
}

type updateDescriptionDTO struct {
	Description string `json:"description"`
}

type detailedPermissionDTO struct {
	Category   string `json:"category" validate:"required"`
	Permission string `json:"permission" validate:"required"`
	Value      bool   `json:"value"`
}

type legacyPermissionDTO struct {
	Area  string `json:"area" validate:"required"`
	Value bool   `json:"value"`
}

type roleResponse struct {
	ID                  string                   `json:"id"`
	RoleName            string                   `json:"roleName"`
	Description         string                   `json:"description"`
	Permissions         role.LegacyPermissions   `json:"permissions"`
	DetailedPermissions role.DetailedPermissions `json:"detailedPermissions"`
	DisplayOrder        int                      `json:"displayOrder"`
	IsPredefined        bool                     `json:"isPredefined"`
	CreatedAt           time.Time                `json:"createdAt"`
	UpdatedAt           time.Time                `json:"updatedAt"`
}

func (c *RolesController) service() *services.RoleService {
	return c.app.Service(services.RoleService{}).(*services.RoleService)
}

func (c *RolesController) list(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	roles, err := c.service().List(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list roles", nil)
		return
	}
	out := make([]roleResponse, 0, len(roles))
	for _, data := range roles {
		out = append(out, toRoleResponse(data))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *RolesController) create(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto createRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return
	}
	if err := constants.Validate.Struct(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION", "roleName is required", nil)
		return
	}
	data, err := c.service().Create(r.Context(), dto.RoleName, dto.Description)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toRoleResponse(data))
}

func (c *RolesController) updateDescription(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid role id", nil)
		return
	}
	var dto updateDescriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return
	}
	data, err := c.service().UpdateDescription(r.Context(), id, dto.Description)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toRoleResponse(data))
}

func (c *RolesController) updateDetailedPermission(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto detailedPermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return
	}
	if err := constants.Validate.Struct(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION", "category and permission are required", nil)
		return
	}
	data, err := c.service().UpdateDetailedPermission(
		r.Context(), mux.Vars(r)["roleName"], dto.Category, dto.Permission, dto.Value)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toRoleResponse(data))
}

func (c *RolesController) updateLegacyPermission(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto legacyPermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return
	}
	if err := constants.Validate.Struct(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION", "area is required", nil)
		return
	}
	data, err := c.service().UpdateLegacyPermission(r.Context(), mux.Vars(r)["roleName"], dto.Area, dto.Value)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toRoleResponse(data))
}

func (c *RolesController) delete(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid role id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func toRoleResponse(data *role.Role) roleResponse {
	return roleResponse{
		ID:                  data.ID.String(),
		RoleName:            data.RoleName,
		Description:         data.Description,
		Permissions:         data.Permissions,
		DetailedPermissions: data.DetailedPermissions,
		DisplayOrder:        data.DisplayOrder,
		IsPredefined:        data.IsPredefined,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
