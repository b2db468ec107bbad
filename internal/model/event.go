package model

// Event is a dated item attached to exactly one planner. IDs are
// system-generated and monotonically increasing.
type Event struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	CreatorName   string `json:"creator_name"`
	ParentPlanner int64  `json:"parent_planner"`
}
