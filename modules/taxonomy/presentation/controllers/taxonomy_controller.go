package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/taxonomy/domain/entities/taxonomy"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/taxonomy/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/constants"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type TaxonomyController struct {
	app      application.Application
	basePath string
}

func NewTaxonomyController(app application.Application) application.Controller {
	return &TaxonomyController{
		app:      app,
		basePath: "/api/settings/taxonomies",
	}
}

func (c *TaxonomyController) Key() string {
	return c.basePath
}

func (c *TaxonomyController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/{collection}", metrics.Instrument("taxonomy_list", c.list)).Methods(http.MethodGet)
	router.HandleFunc("/{collection}", metrics.Instrument("taxonomy_create", c.create)).Methods(http.MethodPost)
	router.HandleFunc("/{collection}/{id}", metrics.Instrument("taxonomy_update", c.update)).Methods(http.MethodPut)
	router.HandleFunc("/{collection}/{id}", metrics.Instrument("taxonomy_delete", c.delete)).Methods(http.MethodDelete)
}

type taxonomyItemDTO struct {
	Name string `json:"name" validate:"required"`
}

type taxonomyItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *TaxonomyController) service() *services.TaxonomyService {
	return c.app.Service(services.TaxonomyService{}).(*services.TaxonomyService)
}

func (c *TaxonomyController) resolve(w http.ResponseWriter, r *http.Request) (taxonomy.Collection, bool) {
	if _, err := composables.UseCompanyID(r.Context()); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "COMPANY_REQUIRED", "company id header is required", nil)
		return taxonomy.Collection{}, false
	}
	col, ok := taxonomy.CollectionByKey(mux.Vars(r)["collection"])
	if !ok {
		httpapi.WriteError(w, http.StatusNotFound, "UNKNOWN_COLLECTION", "unknown taxonomy collection", nil)
		return taxonomy.Collection{}, false
	}
	return col, true
}

func (c *TaxonomyController) list(w http.ResponseWriter, r *http.Request) {
	col, ok := c.resolve(w, r)
	if !ok {
		return
	}
	items, err := c.service().List(r.Context(), col)
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list items", nil)
		return
	}
	out := make([]taxonomyItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *TaxonomyController) create(w http.ResponseWriter, r *http.Request) {
	col, ok := c.resolve(w, r)
	if !ok {
		return
	}
	dto, ok := decodeItemDTO(w, r)
	if !ok {
		return
	}
	item, err := c.service().Create(r.Context(), col, dto.Name)
	if err != nil {
		writeTaxonomyError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toItemResponse(item))
}

func (c *TaxonomyController) update(w http.ResponseWriter, r *http.Request) {
	col, ok := c.resolve(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid item id", nil)
		return
	}
	dto, ok := decodeItemDTO(w, r)
	if !ok {
		return
	}
	item, err := c.service().Update(r.Context(), col, id, dto.Name)
	if err != nil {
		writeTaxonomyError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toItemResponse(item))
}

func (c *TaxonomyController) delete(w http.ResponseWriter, r *http.Request) {
	col, ok := c.resolve(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid item id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), col, id); err != nil {
		writeTaxonomyError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func decodeItemDTO(w http.ResponseWriter, r *http.Request) (taxonomyItemDTO, bool) {
	var dto taxonomyItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return dto, false
	}
	if err := constants.Validate.Struct(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION", "name is required", nil)
		return dto, false
	}
	return dto, true
}

func toItemResponse(item *taxonomy.Item) taxonomyItemResponse {
	return taxonomyItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}
}

func writeTaxonomyError(w http.ResponseWriter, err error) {
	var base *serrors.BaseError
	switch {
	case errors.Is(err, taxonomy.ErrItemNotFound):
		httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "item not found", nil)
	case errors.As(err, &base):
		httpapi.WriteBaseError(w, http.StatusBadRequest, base)
	default:
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "operation failed", nil)
	}
}
