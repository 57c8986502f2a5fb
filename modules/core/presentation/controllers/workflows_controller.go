package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/workflow"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/application"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/constants"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/httpapi"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/metrics"
)

type WorkflowsController struct {
	app      application.Application
	basePath string
}

func NewWorkflowsController(app application.Application) application.Controller {
	return &WorkflowsController{
		app:      app,
		basePath: "/api/settings/approval-workflows",
	}
}

func (c *WorkflowsController) Key() string {
	return c.basePath
}

func (c *WorkflowsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", metrics.Instrument("workflows_list", c.list)).Methods(http.MethodGet)
	router.HandleFunc("", metrics.Instrument("workflows_save", c.save)).Methods(http.MethodPut)
	router.HandleFunc("/{id}", metrics.Instrument("workflows_delete", c.delete)).Methods(http.MethodDelete)
}

type workflowDTO struct {
	DepartmentID string `json:"departmentId" validate:"required,uuid"`
	ApproverID   string `json:"approverId" validate:"required,uuid"`
}

type workflowResponse struct {
	ID           string    `json:"id"`
	DepartmentID string    `json:"departmentId"`
	ApproverID   string    `json:"approverId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c *WorkflowsController) service() *services.WorkflowService {
	return c.app.Service(services.WorkflowService{}).(*services.WorkflowService)
}

func (c *WorkflowsController) list(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	workflows, err := c.service().List(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list workflows", nil)
		return
	}
	out := make([]workflowResponse, 0, len(workflows))
	for _, data := range workflows {
		out = append(out, toWorkflowResponse(data))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *WorkflowsController) save(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	var dto workflowDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body", nil)
		return
	}
	if err := constants.Validate.Struct(dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "VALIDATION", "departmentId and approverId are required", nil)
		return
	}

	data := &workflow.ApprovalWorkflow{
		DepartmentID: uuid.MustParse(dto.DepartmentID),
		ApproverID:   uuid.MustParse(dto.ApproverID),
	}
	if err := c.service().Save(r.Context(), data); err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toWorkflowResponse(data))
}

func (c *WorkflowsController) delete(w http.ResponseWriter, r *http.Request) {
	if !requireCompany(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid workflow id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		writeCoreError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func toWorkflowResponse(data *workflow.ApprovalWorkflow) workflowResponse {
	return workflowResponse{
		ID:           data.ID.String(),
		DepartmentID: data.DepartmentID.String(),
		ApproverID:   data.ApproverID.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
