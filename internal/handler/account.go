package handler

import (
	"net/http"

	"github.com/forgo/chrono/api/internal/model"
	"github.com/forgo/chrono/api/internal/service"
)

// AccountHandler handles account endpoints
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// RegisterRequest represents the register endpoint request body
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents the login endpoint request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse represents a user account in API responses. The stored
// password digest is part of the payload; clients read it back from
// register and login responses, so it stays.
type UserResponse struct {
	Username       string   `json:"username"`
	PasswordDigest string   `json:"password_digest"`
	PreferredName  string   `json:"preferred_name"`
	PlannerIDs     []int64  `json:"planner_ids"`
	PlannerTitles  []string `json:"planner_titles"`
	EventIDs       []int64  `json:"event_ids"`
}

// Register handles POST /v1/accounts/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, model.NewMethodNotAllowedError("POST"))
		return
	}

	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.accountService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, toUserResponse(user), map[string]string{
		"login": "/v1/accounts/login",
	})
}

// Login handles POST /v1/accounts/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, model.NewMethodNotAllowedError("POST"))
		return
	}

	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.accountService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toUserResponse(user), nil)
}

func toUserResponse(user *model.User) UserResponse {
	resp := UserResponse{
		Username:       user.Username,
		PasswordDigest: user.PasswordDigest,
		PreferredName:  user.PreferredName,
		PlannerIDs:     user.PlannerIDs,
		PlannerTitles:  user.PlannerTitles,
		EventIDs:       user.EventIDs,
	}
	// Empty lists serialize as [] rather than null.
	if resp.PlannerIDs == nil {
		resp.PlannerIDs = []int64{}
	}
	if resp.PlannerTitles == nil {
		resp.PlannerTitles = []string{}
	}
	if resp.EventIDs == nil {
		resp.EventIDs = []int64{}
	}
	return resp
}
