package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/integrations/domain/entities/integration"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/integrations/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/constants"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type IntegrationsController struct {
	app      application.Application
	basePath string
}

func NewIntegrationsController(app application.Application) application.Controller {
	return &IntegrationsController{
		app:      app,
		basePath: "/api/settings/integrations",
	}
}

func (c *IntegrationsController) Key() string {
	return c.basePath
}

func (c *IntegrationsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/api-token", metrics.Instrument("api_token_get", c.getToken)).Methods(http.MethodGet)
	router.HandleFunc("/api-token", metrics.Instrument("api_token_generate", c.generateToken)).Methods(http.MethodPost)
	router.HandleFunc("/external-systems", metrics.Instrument("external_systems_list", c.listSystems)).Methods(http.MethodGet)
	router.HandleFunc("/external-systems", metrics.Instrument("external_systems_create", c.addSystem)).Methods(http.MethodPost)
	router.HandleFunc("/external-systems/{id}", metrics.Instrument("external_systems_delete", c.deleteSystem)).Methods(http.MethodDelete)
}

type externalSystemDTO struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type"`
	Endpoint string `json:"endpoint" validate:"required,url"`
}

type externalSystemResponse struct {
	ID         string     `json:"id"`
	SystemName string     `json:"systemName"`
	SystemType string     `json:"systemType"`
	Endpoint   string     `json:"endpoint"`
	IsActive   bool       `json:"isActive"`
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (c *IntegrationsController) service() *services.IntegrationService {
	return c.app.Service(services.IntegrationService{}).(*services.IntegrationService)
}

func (c *IntegrationsController) requireCompany(w http.ResponseWriter, r *http.Request) bool {
	if _, err := composables.UseCompanyID(r.Context()); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "COMPANY_REQUIRED", "company id header is required", nil)
		return false
	}
	return true
}

func (c *IntegrationsController) getToken(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	token, err := c.service().Token(r.Context())
	if errors.Is(err, integration.ErrNoToken) {
		httpapi.WriteError(w, http.StatusNotFound, "NO_TOKEN", "no api token generated yet", nil)
		return
	}
	if err != nil {
		writeIntegrationError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (c *IntegrationsController) generateToken(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	token, err := c.service().GenerateToken(r.Context())
	if err != nil {
		writeIntegrationError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (c *IntegrationsController) listSystems(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	systems, err := c.service().ListSystems(r.Context())
	if err != nil {
		writeIntegrationError(w, err)
		return
	}
	out := make([]externalSystemResponse, 0, len(systems))
	for _, system := range systems {
		out = append(out, toSystemResponse(system))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *IntegrationsController) addSystem(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	var dto externalSystemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return
	}
	if err := constants.Validate.Struct(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION", "name and endpoint are required", nil)
		return
	}
	system := &integration.ExternalSystem{
		SystemName: dto.Name,
		SystemType: dto.Type,
		Endpoint:   dto.Endpoint,
	}
	if err := c.service().AddSystem(r.Context(), system); err != nil {
		writeIntegrationError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toSystemResponse(system))
}

func (c *IntegrationsController) deleteSystem(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid system id", nil)
		return
	}
	if err := c.service().DeleteSystem(r.Context(), id); err != nil {
		writeIntegrationError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func toSystemResponse(system *integration.ExternalSystem) externalSystemResponse {
	return externalSystemResponse{
		ID:         system.ID.String(),
		SystemName: system.SystemName,
		SystemType: system.SystemType,
		Endpoint:   system.Endpoint,
		IsActive:   system.IsActive,
		LastSyncAt: system.LastSyncAt,
		CreatedAt:  system.CreatedAt,
	}
}

func writeIntegrationError(w http.ResponseWriter, err error) {
	var base *serrors.BaseError
	switch {
	case errors.Is(err, integration.ErrSystemNotFound):
		httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "external system not found", nil)
	case errors.As(err, &base):
		httpapi.WriteBaseError(w, http.StatusBadRequest, base)
	default:
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "operation failed", nil)
	}
}
