package models

import "time"

// Project is a container of tasks. Tasks holds the expanded task records in
// list order; it is populated only by the read operations.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tasks       []*Task   `json:"tasks"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectSummary is a project row with bare task references instead of
// expanded records, as returned by the mutating operations.
type ProjectSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TaskIDs     []string  `json:"tasks"`
	CreatedAt   time.Time `json:"createdAt"`
}
