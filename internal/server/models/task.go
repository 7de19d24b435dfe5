package models

import "time"

// Task belongs to exactly one project. ProjectID is the backlink to the
// owner; it is set at creation and never changes.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ProjectID   string    `json:"project"`
	CreatedAt   time.Time `json:"createdAt"`
}
