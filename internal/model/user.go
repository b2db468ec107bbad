package model

// User represents a registered account. The username is the primary key;
// it is supplied by the caller at registration and never changes.
type User struct {
	Username       string `json:"username"`
	PasswordDigest string `json:"password_digest"`
	PreferredName  string `json:"preferred_name"`

	// PlannerIDs and PlannerTitles are parallel lists: the title at
	// index i belongs to the planner at index i. Append-only.
	PlannerIDs    []int64  `json:"planner_ids"`
	PlannerTitles []string `json:"planner_titles"`

	// EventIDs lists every event this user created, in creation order.
	EventIDs []int64 `json:"event_ids"`
}
