// Package repository implements data access for Chrono's three entity
// tables: user, planner, and event.
//
// Every lookup is by exact primary key. Users are keyed by username
// (user:⟨name⟩); planners and events get system-generated monotonically
// increasing integer IDs from per-table counter records (seq:planner,
// seq:event), incremented in the same transaction as the CREATE.
//
// Reference lists (a user's planner_ids/planner_titles/event_ids, a
// planner's event_ids/members_allowed) are persisted as single
// comma-delimited string fields. Repositories translate between that
// stored form and the typed slices on the models via the reflist
// package; nothing above this layer sees the delimited strings.
package repository
