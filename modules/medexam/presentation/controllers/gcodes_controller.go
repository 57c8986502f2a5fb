package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/medexam/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
)

type GCodesController struct {
	app      application.Application
	basePath string
}

func NewGCodesController(app application.Application) application.Controller {
	return &GCodesController{
		app:      app,
		basePath: "/api/settings/g-investigations",
	}
}

func (c *GCodesController) Key() string {
	return c.basePath
}

func (c *GCodesController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", metrics.Instrument("gcodes_get", c.get)).Methods(http.MethodGet)
	router.HandleFunc("", metrics.Instrument("gcodes_save", c.save)).Methods(http.MethodPut)
	router.HandleFunc("/catalog", metrics.Instrument("gcodes_catalog", c.catalog)).Methods(http.MethodGet)
	router.HandleFunc("/toggle-all", metrics.Instrument("gcodes_toggle_all", c.toggleAll)).Methods(http.MethodPost)
}

type gcodeSelectionDTO struct {
	Codes []string `json:"codes"`
}

type gcodeCatalogEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (c *GCodesController) service() *services.GCodeService {
	return c.app.Service(services.GCodeService{}).(*services.GCodeService)
}

func (c *GCodesController) requireCompany(w http.ResponseWriter, r *http.Request) bool {
	if _, err := composables.UseCompanyID(r.Context()); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "COMPANY_REQUIRED", "company id header is required", nil)
		return false
	}
	return true
}

func (c *GCodesController) get(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	codes, err := c.service().Selected(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load selection", nil)
		return
	}
	if codes == nil {
		codes = []string{}
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string][]string{"codes": codes})
}

func (c *GCodesController) catalog(w http.ResponseWriter, r *http.Request) {
	entries := c.service().Catalog()
	out := make([]gcodeCatalogEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, gcodeCatalogEntry{Code: entry.Code, Description: entry.Description})
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *GCodesController) save(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	var dto gcodeSelectionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return
	}
	if err := c.service().Save(r.Context(), dto.Codes); err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to save selection", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string][]string{"codes": dto.Codes})
}

func (c *GCodesController) toggleAll(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	codes, err := c.service().ToggleAll(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to toggle selection", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string][]string{"codes": codes})
}
