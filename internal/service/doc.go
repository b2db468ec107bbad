// Package service implements the business logic layer for the Chrono API.
//
// Three services cover the exposed operations:
//
//   - AccountService: register and authenticate users
//   - PlannerService: create planners and look them up by ID
//   - EventService: create events under a planner and look them up by ID
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with
//     repository dependencies
//   - Services define their own repository interfaces, allowing easy
//     mocking for unit tests and decoupling from the database
//   - Errors are returned as sentinel errors checked with errors.Is
//   - Context is passed through for cancellation
//
// # Reference-list consistency
//
// Creating a planner or event is a read-modify-write against the parent
// records' reference lists. Writes to a given parent are serialized with
// a per-key lock so two concurrent creations under the same user or
// planner cannot interleave and lose an append. Cross-record updates
// (both parents of a new event) are committed atomically by the
// repository layer.
package service
