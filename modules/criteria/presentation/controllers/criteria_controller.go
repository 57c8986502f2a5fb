package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/criteria"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/constants"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type CriteriaController struct {
	app      application.Application
	basePath string
}

func NewCriteriaController(app application.Application) application.Controller {
	return &CriteriaController{
		app:      app,
		basePath: "/api/settings/audit-criteria",
	}
}

func (c *CriteriaController) Key() string {
	return c.basePath
}

func (c *CriteriaController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/{isoCode}/tree", metrics.Instrument("criteria_tree", c.tree)).Methods(http.MethodGet)
	router.HandleFunc("/{isoCode}/groups", metrics.Instrument("criteria_groups", c.groups)).Methods(http.MethodGet)
	router.HandleFunc("/{isoCode}/custom", metrics.Instrument("criteria_add_custom", c.addCustom)).Methods(http.MethodPost)
	router.HandleFunc("/{isoCode}/import", metrics.Instrument("criteria_import", c.importStandard)).Methods(http.MethodPost)
	router.HandleFunc("/{isoCode}/reimport", metrics.Instrument("criteria_reimport", c.reimportStandard)).Methods(http.MethodPost)
	router.HandleFunc("/{isoCode}/sections/{key}", metrics.Instrument("criteria_delete_section", c.deleteSectionGroup)).Methods(http.MethodDelete)
	router.HandleFunc("/subsections/batch-delete", metrics.Instrument("criteria_batch_delete", c.deleteBatch)).Methods(http.MethodPost)
	router.HandleFunc("/subsections/{id}", metrics.Instrument("criteria_delete", c.deleteSubsection)).Methods(http.MethodDelete)
	router.HandleFunc("/translations/german", metrics.Instrument("criteria_translate", c.applyGermanTranslations)).Methods(http.MethodPost)
}

type customCriterionDTO struct {
	CriterionID string `json:"criterionId" validate:"required"`
	Title       string `json:"title" validate:"required"`
}

type batchDeleteDTO struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

type questionResponse struct {
	ID             string `json:"id"`
	QuestionText   string `json:"questionText"`
	QuestionTextEN string `json:"questionTextEn,omitempty"`
	SortOrder      int    `json:"sortOrder"`
}

type subsectionResponse struct {
	ID               string             `json:"id"`
	SubsectionNumber string             `json:"subsectionNumber"`
	Title            string             `json:"title"`
	TitleEN          string             `json:"titleEn,omitempty"`
	SortOrder        int                `json:"sortOrder"`
	IsCustom         bool               `json:"isCustom"`
	Questions        []questionResponse `json:"questions"`
}

type sectionResponse struct {
	ID            string               `json:"id"`
	SectionNumber string               `json:"sectionNumber"`
	Title         string               `json:"title"`
	TitleEN       string               `json:"titleEn,omitempty"`
	SortOrder     int                  `json:"sortOrder"`
	Subsections   []subsectionResponse `json:"subsections"`
}

type groupResponse struct {
	Key         string               `json:"key"`
	Subsections []subsectionResponse `json:"subsections"`
}

func (c *CriteriaController) service() *services.TreeService {
	return c.app.Service(services.TreeService{}).(*services.TreeService)
}

func (c *CriteriaController) tree(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	sections, err := c.service().LoadTree(r.Context(), mux.Vars(r)["isoCode"])
	if err != nil {
		writeCriteriaError(w, err)
		return
	}
	out := make([]sectionResponse, 0, len(sections))
	for _, section := range sections {
		out = append(out, toSectionResponse(section))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *CriteriaController) groups(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	groups, err := c.service().Groups(r.Context(), mux.Vars(r)["isoCode"])
	if err != nil {
		writeCriteriaError(w, err)
		return
	}
	out := make([]groupResponse, 0, len(groups))
	for _, group := range groups {
		resp := groupResponse{Key: group.Key, Subsections: []subsectionResponse{}}
		for _, sub := range group.Subsections {
			resp.Subsections = append(resp.Subsections, toSubsectionResponse(sub))
		}
		out = append(out, resp)
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *CriteriaController) addCustom(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto customCriterionDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	sub, err := c.service().AddCustomCriterion(r.Context(), mux.Vars(r)["isoCode"], dto.CriterionID, dto.Title)
	if err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toSubsectionResponse(sub))
}

func (c *CriteriaController) deleteSubsection(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid subsection id", nil)
		return
	}
	if err := c.service().DeleteSubsection(r.Context(), id); err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *CriteriaController) deleteBatch(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto batchDeleteDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	ids := make([]uuid.UUID, 0, len(dto.IDs))
	for _, raw := range dto.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid subsection id", nil)
			return
		}
		ids = append(ids, id)
	}
	if err := c.service().DeleteSubsections(r.Context(), ids); err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *CriteriaController) deleteSectionGroup(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	vars := mux.Vars(r)
	if err := c.service().DeleteSectionGroup(r.Context(), vars["isoCode"], vars["key"]); err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *CriteriaController) importStandard(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	result, err := c.service().ImportStandard(r.Context(), mux.Vars(r)["isoCode"])
	if err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toImportResponse(result))
}

func (c *CriteriaController) reimportStandard(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	result, err := c.service().ReimportStandard(r.Context(), mux.Vars(r)["isoCode"])
	if err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toImportResponse(result))
}

func (c *CriteriaController) applyGermanTranslations(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	updated, err := c.service().ApplyGermanTranslations(r.Context())
	if err != nil {
		writeCriteriaError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

func toImportResponse(result *services.ImportResult) map[string]interface{} {
	return map[string]interface{}{
		"isoCode":     result.ISOCode,
		"sections":    result.Sections,
		"subsections": result.Subsections,
		"questions":   result.Questions,
	}
}

func toSectionResponse(section *criteria.Section) sectionResponse {
	resp := sectionResponse{
		ID:            section.ID.String(),
		SectionNumber: section.SectionNumber,
		Title:         section.Title,
		TitleEN:       section.TitleEN,
		SortOrder:     section.SortOrder,
		Subsections:   []subsectionResponse{},
	}
	for _, sub := range section.Subsections {
		resp.Subsections = append(resp.Subsections, toSubsectionResponse(sub))
	}
	return resp
}

func toSubsectionResponse(sub *criteria.Subsection) subsectionResponse {
	resp := subsectionResponse{
		ID:               sub.ID.String(),
		SubsectionNumber: sub.SubsectionNumber,
		Title:            sub.Title,
		TitleEN:          sub.TitleEN,
		SortOrder:        sub.SortOrder,
		IsCustom:         sub.CompanyID != nil,
		Questions:        []questionResponse{},
	}
	for _, question := range sub.Questions {
		resp.Questions = append(resp.Questions, questionResponse{
			ID:             question.ID.String(),
			QuestionText:   question.QuestionText,
			QuestionTextEN: question.QuestionTextEN,
			SortOrder:      question.SortOrder,
		})
	}
	return resp
}

func requireCompany(w http.ResponseWriter, r *http.Request) bool {
	if _, err := composables.UseCompanyID(r.Context()); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "COMPANY_REQUIRED", "company id header is required", nil)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dto interface{}) bool {
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

func writeCriteriaError(w http.ResponseWriter, err error) {
	var base *serrors.BaseError
	switch {
	case errors.Is(err, criteria.ErrSectionNotFound), errors.Is(err, criteria.ErrSubsectionNotFound):
		httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "criteria entry not found", nil)
	case errors.As(err, &base):
		httpapi.WriteBaseError(w, http.StatusBadRequest, base)
	default:
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "operation failed", nil)
	}
}
