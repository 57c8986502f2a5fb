package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
)

// SelectionController exposes the per-company criteria selection set. The
// set is a flat list of composite ids; the client treats it as opaque.
type SelectionController struct {
	app      application.Application
	basePath string
}

func NewSelectionController(app application.Application) application.Controller {
	return &SelectionController{
		app:      app,
		basePath: "/api/settings/criteria-selection",
	}
}

func (c *SelectionController) Key() string {
	return c.basePath
}

func (c *SelectionController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", metrics.Instrument("selection_get", c.get)).Methods(http.MethodGet)
	router.HandleFunc("", metrics.Instrument("selection_save", c.save)).Methods(http.MethodPut)
	router.HandleFunc("/toggle", metrics.Instrument("selection_toggle", c.toggle)).Methods(http.MethodPost)
	router.HandleFunc("/select-all", metrics.Instrument("selection_select_all", c.selectAll)).Methods(http.MethodPost)
}

type toggleSelectionDTO struct {
	ID string `json:"id" validate:"required"`
}

type selectAllDTO struct {
	ISOCode string `json:"isoCode" validate:"required"`
}

type saveSelectionDTO struct {
	IDs []string `json:"ids" validate:"required"`
}

func (c *SelectionController) service() *services.SelectionService {
	return c.app.Service(services.SelectionService{}).(*services.SelectionService)
}

func (c *SelectionController) get(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	selection, err := c.service().Get(r.Context())
	if err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string][]string{"ids": selection})
}

func (c *SelectionController) toggle(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto toggleSelectionDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	selection, err := c.service().Toggle(r.Context(), dto.ID)
	if err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string][]string{"ids": selection})
}

func (c *SelectionController) selectAll(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto selectAllDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	selection, err := c.service().SelectAll(r.Context(), dto.ISOCode)
	if err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string][]string{"ids": selection})
}

func (c *SelectionController) save(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto saveSelectionDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if err := c.service().Save(r.Context(), dto.IDs); err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string][]string{"ids": dto.IDs})
}
