package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/member"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/constants"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type MembersController struct {
	app      application.Application
	basePath string
}

func NewMembersController(app application.Application) application.Controller {
	return &MembersController{
		app:      app,
		basePath: "/api/settings/team-members",
	}
}

func (c *MembersController) Key() string {
	return c.basePath
}

func (c *MembersController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", metrics.Instrument("members_list", c.list)).Methods(http.MethodGet)
	router.HandleFunc("", metrics.Instrument("members_invite", c.invite)).Methods(http.MethodPost)
	router.HandleFunc("/{id}", metrics.Instrument("members_delete", c.delete)).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/notify", metrics.Instrument("members_notify", c.notify)).Methods(http.MethodPost)
}

type inviteMemberDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required"`
}

type memberResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *MembersController) service() *services.MemberService {
	return c.app.Service(services.MemberService{}).(*services.MemberService)
}

func (c *MembersController) list(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	members, err := c.service().List(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list team members", nil)
		return
	}
	out := make([]memberResponse, 0, len(members))
	for _, data := range members {
		out = append(out, toMemberResponse(data))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *MembersController) invite(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto inviteMemberDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return
	}
	if err := constants.Validate.Struct(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION", "email and role are required", nil)
		return
	}

	data := &member.Member{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Role:      dto.Role,
	}
	if err := c.service().Invite(r.Context(), data); err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toMemberResponse(data))
}

func (c *MembersController) delete(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid member id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *MembersController) notify(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid member id", nil)
		return
	}
	if err := c.service().Notify(r.Context(), id); err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func toMemberResponse(data *member.Member) memberResponse {
	return memberResponse{
		ID:        data.ID.String(),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Role:      data.Role,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
	}
}

func requireCompany(w http.ResponseWriter, r *http.Request) bool {
	if _, err := composables.UseCompanyID(r.Context()); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "COMPANY_REQUIRED", "company id header is required", nil)
		return false
	}
	return true
}

func writeCoreError(w http.ResponseWriter, err error) {
	var base *serrors.BaseError
	switch {
	case errors.As(err, &base) && base.Code == "AUTHZ_FORBIDDEN":
		httpapi.WriteBaseError(w, http.StatusForbidden, base)
	case errors.As(err, &base):
		httpapi.WriteBaseError(w, http.StatusBadRequest, base)
	case isNotFound(err):
		httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "operation failed", nil)
	}
}
