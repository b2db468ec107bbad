package model

// Planner is a named container that events are attached to, analogous to
// a calendar or board. IDs are system-generated and monotonically
// increasing.
type Planner struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	CreatorName string `json:"creator_name"`

	// MembersAllowed starts as [creator_name]. It is populated but not
	// consulted by any operation; access control is out of scope.
	MembersAllowed []string `json:"members_allowed"`

	// EventIDs lists the events attached to this planner, in creation
	// order. Append-only.
	EventIDs []int64 `json:"event_ids"`

	// Password is optional and unused by any operation.
	Password string `json:"password"`
}
