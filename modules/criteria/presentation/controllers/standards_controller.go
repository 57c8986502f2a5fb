package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/standard"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type StandardsController struct {
	app      application.Application
	basePath string
}

func NewStandardsController(app application.Application) application.Controller {
	return &StandardsController{
		app:      app,
		basePath: "/api/settings/iso-standards",
	}
}

func (c *StandardsController) Key() string {
	return c.basePath
}

func (c *StandardsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", metrics.Instrument("standards_list", c.list)).Methods(http.MethodGet)
	router.HandleFunc("", metrics.Instrument("standards_save", c.save)).Methods(http.MethodPut)
	router.HandleFunc("/predefined", metrics.Instrument("standards_predefined", c.predefined)).Methods(http.MethodGet)
	router.HandleFunc("/{isoCode}", metrics.Instrument("standards_delete", c.delete)).Methods(http.MethodDelete)
}

type standardDTO struct {
	ISOCode  string `json:"isoCode" validate:"required"`
	ISOName  string `json:"isoName" validate:"required"`
	IsCustom bool   `json:"isCustom"`
	IsActive bool   `json:"isActive"`
}

type standardResponse struct {
	ID        string    `json:"id"`
	ISOCode   string    `json:"isoCode"`
	ISOName   string    `json:"isoName"`
	IsCustom  bool      `json:"isCustom"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type predefinedStandardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *StandardsController) service() *services.StandardService {
	return c.app.Service(services.StandardService{}).(*services.StandardService)
}

func (c *StandardsController) list(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	selections, err := c.service().List(r.Context())
	if err != nil {
		writeStandardError(w, err)
		return
	}
	out := make([]standardResponse, 0, len(selections))
	for _, selection := range selections {
		out = append(out, standardResponse{
			ID:        selection.ID.String(),
			ISOCode:   selection.ISOCode,
			ISOName:   selection.ISOName,
			IsCustom:  selection.IsCustom,
			IsActive:  selection.IsActive,
			CreatedAt: selection.CreatedAt,
		})
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *StandardsController) predefined(w http.ResponseWriter, r *http.Request) {
	catalog := c.service().Predefined()
	out := make([]predefinedStandardResponse, 0, len(catalog))
	for _, entry := range catalog {
		out = append(out, predefinedStandardResponse{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
		})
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *StandardsController) save(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto standardDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	data := &standard.Selection{
		ISOCode:  dto.ISOCode,
		ISOName:  dto.ISOName,
		IsCustom: dto.IsCustom,
		IsActive: dto.IsActive,
	}
	if err := c.service().Save(r.Context(), data); err != nil {
		writeStandardError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"isoCode": data.ISOCode})
}

func (c *StandardsController) delete(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	if err := c.service().Delete(r.Context(), mux.Vars(r)["isoCode"]); err != nil {
		writeStandardError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func writeStandardError(w http.ResponseWriter, err error) {
	var base *serrors.BaseError
	switch {
	case errors.Is(err, standard.ErrStandardNotFound):
		httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "standard not found", nil)
	case errors.As(err, &base):
		httpapi.WriteBaseError(w, http.StatusBadRequest, base)
	default:
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "operation failed", nil)
	}
}
