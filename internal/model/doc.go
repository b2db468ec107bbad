// Package model defines the core domain types for Chrono.
//
// Three entities make up the data model:
//
//   - User: an account keyed by username, carrying ordered reference
//     lists of the planners and events it created
//   - Planner: a named container that events are attached to
//   - Event: a dated item owned by a creator and attached to exactly
//     one planner
//
// Relationships are tracked on the parent records as ordered ID
// sequences rather than foreign keys: a user's planner_ids and
// planner_titles move in lockstep, and an event's ID appears both in
// its creator's event_ids and its parent planner's event_ids. The
// sequences are append-only and duplicate-tolerant; see the reflist
// package for the append and storage-codec rules.
//
// The package also defines the RFC 9457 Problem Details responses used
// at the HTTP boundary.
package model
