package handler

import (
	"net/http"
	"strconv"

	"github.com/forgo/chrono/api/internal/model"
	"github.com/forgo/chrono/api/internal/service"
)

// EventHandler handles event endpoints
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEventRequest represents the create event request body
type CreateEventRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Username    string `json:"username"`
	PlannerID   int64  `json:"planner_id"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	CreatorName   string `json:"creator_name"`
	ParentPlanner int64  `json:"parent_planner"`
}

// Create handles POST /v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, model.NewMethodNotAllowedError("POST"))
		return
	}

	var req CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), req.Date, req.Description, req.Username, req.PlannerID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toEventResponse(event), map[string]string{
		"self": "/v1/events/" + strconv.FormatInt(event.ID, 10),
	})
}

// Get handles GET /v1/events/{eventId}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("eventId"), 10, 64)
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid event id"))
		return
	}

	event, err := h.eventService.GetEvent(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toEventResponse(event), map[string]string{
		"self": "/v1/events/" + strconv.FormatInt(event.ID, 10),
	})
}

func toEventResponse(event *model.Event) EventResponse {
	return EventResponse{
		ID:            event.ID,
		Date:          event.Date,
		Description:   event.Description,
		CreatorName:   event.CreatorName,
		ParentPlanner: event.ParentPlanner,
	}
}
