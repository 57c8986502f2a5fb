package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/support/domain/entities/ticket"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/support/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/constants"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type TicketsController struct {
	app      application.Application
	basePath string
}

func NewTicketsController(app application.Application) application.Controller {
	return &TicketsController{
		app:      app,
		basePath: "/api/settings/support-tickets",
	}
}

func (c *TicketsController) Key() string {
	return c.basePath
}

func (c *TicketsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", metrics.Instrument("tickets_list", c.list)).Methods(http.MethodGet)
	router.HandleFunc("", metrics.Instrument("tickets_submit", c.submit)).Methods(http.MethodPost)
}

type ticketDTO struct {
	Category    string `json:"category" validate:"required"`
	Priority    string `json:"priority"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type ticketResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c *TicketsController) service() *services.TicketService {
	return c.app.Service(services.TicketService{}).(*services.TicketService)
}

func (c *TicketsController) requireCompany(w http.ResponseWriter, r *http.Request) bool {
	if _, err := composables.UseCompanyID(r.Context()); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "COMPANY_REQUIRED", "company id header is required", nil)
		return false
	}
	return true
}

func (c *TicketsController) list(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	tickets, err := c.service().ListRecent(r.Context())
	if err != nil {
		writeTicketError(w, err)
		return
	}
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *TicketsController) submit(w http.ResponseWriter, r *http.Request) {
	if !c.requireCompany(w, r) {
		return
	}
	var dto ticketDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return
	}
	if err := constants.Validate.Struct(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION", "category, title and description are required", nil)
		return
	}
	data := &ticket.Ticket{
		Category:    dto.Category,
		Priority:    dto.Priority,
		Title:       dto.Title,
		Description: dto.Description,
	}
	if err := c.service().Submit(r.Context(), data); err != nil {
		writeTicketError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toTicketResponse(data))
}

func toTicketResponse(t *ticket.Ticket) ticketResponse {
	return ticketResponse{
		ID:          t.ID.String(),
		Category:    t.Category,
		Priority:    t.Priority,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}

func writeTicketError(w http.ResponseWriter, err error) {
	var base *serrors.BaseError
	if errors.As(err, &base) {
		httpapi.WriteBaseError(w, http.StatusBadRequest, base)
		return
	}
	httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "operation failed", nil)
}
