package handler

import (
	"net/http"
	"strconv"

	"github.com/forgo/chrono/api/internal/model"
	"github.com/forgo/chrono/api/internal/service"
)

// PlannerHandler handles planner endpoints
type PlannerHandler struct {
	plannerService *service.PlannerService
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(plannerService *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
	}
}

// CreatePlannerRequest represents the create planner request body
type CreatePlannerRequest struct {
	Title    string `json:"title"`
	Username string `json:"username"`
}

// CreatePlannerResponse carries the confirmation message the create
// endpoint returns instead of the created record.
type CreatePlannerResponse struct {
	Message string `json:"message"`
}

// PlannerResponse represents a planner in API responses
type PlannerResponse struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	CreatorName    string   `json:"creator_name"`
	MembersAllowed []string `json:"members_allowed"`
	EventIDs       []int64  `json:"event_ids"`
	Password       string   `json:"password"`
}

// Create handles POST /v1/planners
func (h *PlannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, model.NewMethodNotAllowedError("POST"))
		return
	}

	var req CreatePlannerRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	planner, err := h.plannerService.CreatePlanner(r.Context(), req.Title, req.Username)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, CreatePlannerResponse{Message: "planner created"}, map[string]string{
		"self": "/v1/planners/" + strconv.FormatInt(planner.ID, 10),
	})
}

// Get handles GET /v1/planners/{plannerId}
func (h *PlannerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("plannerId"), 10, 64)
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid planner id"))
		return
	}

	planner, err := h.plannerService.GetPlanner(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toPlannerResponse(planner), map[string]string{
		"self": "/v1/planners/" + strconv.FormatInt(planner.ID, 10),
	})
}

func toPlannerResponse(planner *model.Planner) PlannerResponse {
	resp := PlannerResponse{
		ID:             planner.ID,
		Title:          planner.Title,
		CreatorName:    planner.CreatorName,
		MembersAllowed: planner.MembersAllowed,
		EventIDs:       planner.EventIDs,
		Password:       planner.Password,
	}
	if resp.MembersAllowed == nil {
		resp.MembersAllowed = []string{}
	}
	if resp.EventIDs == nil {
		resp.EventIDs = []int64{}
	}
	return resp
}
