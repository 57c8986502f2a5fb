package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/profilefields/domain/entities/profilefield"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/profilefields/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/constants"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type ProfileFieldsController struct {
	app      application.Application
	basePath string
}

func NewProfileFieldsController(app application.Application) application.Controller {
	return &ProfileFieldsController{
		app:      app,
		basePath: "/api/settings/profile-fields",
	}
}

func (c *ProfileFieldsController) Key() string {
	return c.basePath
}

func (c *ProfileFieldsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", metrics.Instrument("profile_fields_list", c.list)).Methods(http.MethodGet)
	router.HandleFunc("", metrics.Instrument("profile_fields_create", c.create)).Methods(http.MethodPost)
	router.HandleFunc("/{id}", metrics.Instrument("profile_fields_update", c.update)).Methods(http.MethodPut)
	router.HandleFunc("/{id}", metrics.Instrument("profile_fields_delete", c.delete)).Methods(http.MethodDelete)
}

type createFieldDTO struct {
	FieldName           string `json:"fieldName" validate:"required"`
	FieldLabel          string `json:"fieldLabel" validate:"required"`
	FieldType           string `json:"fieldType"`
	ExtractedFromResume bool   `json:"extractedFromResume"`
	IsRequired          bool   `json:"isRequired"`
}

// updateFieldDTO has no fieldName on purpose; the technical name is fixed
// at creation.
type updateFieldDTO struct {
	FieldLabel          string `json:"fieldLabel" validate:"required"`
	FieldType           string `json:"fieldType"`
	ExtractedFromResume bool   `json:"extractedFromResume"`
	IsRequired          bool   `json:"isRequired"`
}

type fieldResponse struct {
	ID                  string    `json:"id"`
	FieldName           string    `json:"fieldName"`
	FieldLabel          string    `json:"fieldLabel"`
	FieldType           string    `json:"fieldType"`
	ExtractedFromResume bool      `json:"extractedFromResume"`
	IsRequired          bool      `json:"isRequired"`
	DisplayOrder        int       `json:"displayOrder"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (c *ProfileFieldsController) service() *services.ProfileFieldService {
	return c.app.Service(services.ProfileFieldService{}).(*services.ProfileFieldService)
}

func (c *ProfileFieldsController) requireCompany(w http.ResponseWriter, r *http.Request) bool {
	if _, err := composables.UseCompanyID(r.Context()); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "COMPANY_REQUIRED", "company id header is required", nil)
		return false
	}
	return true
}

func (c *ProfileFieldsController) list(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	fields, err := c.service().List(r.Context())
	if err != nil {
		writeFieldError(w, err)
		return
	}
	out := make([]fieldResponse, 0, len(fields))
	for _, field := range fields {
		out = append(out, toFieldResponse(field))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *ProfileFieldsController) create(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	var dto createFieldDTO
	if !decodeFieldBody(w, r, &dto) {
		return
	}
	field := &profilefield.Field{
		FieldName:           dto.FieldName,
		FieldLabel:          dto.FieldLabel,
		FieldType:           dto.FieldType,
		ExtractedFromResume: dto.ExtractedFromResume,
		IsRequired:          dto.IsRequired,
	}
	if err := c.service().Create(r.Context(), field); err != nil {
		writeFieldError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toFieldResponse(field))
}

func (c *ProfileFieldsController) update(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid field id", nil)
		return
	}
	var dto updateFieldDTO
	if !decodeFieldBody(w, r, &dto) {
		return
	}
	data := profilefield.UpdateData{
		FieldLabel:          dto.FieldLabel,
		FieldType:           dto.FieldType,
		ExtractedFromResume: dto.ExtractedFromResume,
		IsRequired:          dto.IsRequired,
	}
	if err := c.service().Update(r.Context(), id, data); err != nil {
		writeFieldError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"id": id.String()})
}

func (c *ProfileFieldsController) delete(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid field id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		writeFieldError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func decodeFieldBody(w http.ResponseWriter, r *http.Request, dto interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return false
	}
	if err := constants.Validate.Struct(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION", "request validation failed", nil)
		return false
	}
	return true
}

func toFieldResponse(field *profilefield.Field) fieldResponse {
	return fieldResponse{
		ID:                  field.ID.String(),
		FieldName:           field.FieldName,
		FieldLabel:          field.FieldLabel,
		FieldType:           field.FieldType,
		ExtractedFromResume: field.ExtractedFromResume,
		IsRequired:          field.IsRequired,
		DisplayOrder:        field.DisplayOrder,
		CreatedAt:           field.CreatedAt,
		UpdatedAt:           field.UpdatedAt,
	}
}

func writeFieldError(w http.ResponseWriter, err error) {
	var base *serrors.BaseError
	switch {
	case errors.Is(err, profilefield.ErrFieldNotFound):
		httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "profile field not found", nil)
	case errors.As(err, &base):
		httpapi.WriteBaseError(w, http.StatusBadRequest, base)
	default:
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "operation failed", nil)
	}
}
