package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
)

type AuditController struct {
	app      application.Application
	basePath string
}

func NewAuditController(app application.Application) application.Controller {
	return &AuditController{
		app:      app,
		basePath: "/api/settings/audit-logs",
	}
}

func (c *AuditController) Key() string {
	return c.basePath
}

func (c *AuditController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", metrics.Instrument("audit_logs_list", c.list)).Methods(http.MethodGet)
}

type auditEntryResponse struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	TargetType string          `json:"targetType"`
	TargetID   string          `json:"targetId,omitempty"`
	TargetName string          `json:"targetName,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (c *AuditController) list(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.UseCompanyID(r.Context()); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "COMPANY_REQUIRED", "company id header is required", nil)
		return
	}

	params := &auditentry.FindParams{
		Action:     r.URL.Query().Get("action"),
		TargetType: r.URL.Query().Get("targetType"),
		Limit:      parseIntOr(r.URL.Query().Get("limit"), 50),
		Offset:     parseIntOr(r.URL.Query().Get("offset"), 0),
	}

	service := c.app.Service(services.AuditService{}).(*services.AuditService)
	entries, err := service.List(r.Context(), params)
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list audit entries", nil)
		return
	}
	total, err := service.Count(r.Context(), params)
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to count audit entries", nil)
		return
	}

	out := make([]auditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, auditEntryResponse{
			ID:         entry.ID.String(),
			Action:     entry.Action,
			TargetType: entry.TargetType,
			TargetID:   entry.TargetID,
			TargetName: entry.TargetName,
			Details:    entry.Details,
			CreatedAt:  entry.CreatedAt,
		})
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"data":  out,
		"total": total,
	})
}

func parseIntOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
