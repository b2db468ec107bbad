package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Account Errors =====
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("that username is taken")
	ErrAccountNotFound  = errors.New("account not found")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// ===== Planner Errors =====
var (
	ErrPlannerNotFound = errors.New("planner not found")
	ErrUserNotFound    = errors.New("user not found")
)

// ===== Event Errors =====
var (
	ErrEventNotFound = errors.New("event not found")
)
