package domain

import "time"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo  Status = "TODO"
	StatusDoing Status = "DOING"
	StatusDone  Status = "DONE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}

// Priority orders LOW < MEDIUM < HIGH regardless of the alphabet.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank returns the declaration-order position of the priority.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	}
	return -1
}

type Task struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"userId"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	Status      Status     `db:"status" json:"status"`
	Priority    Priority   `db:"priority" json:"priority"`
	DueDate     *time.Time `db:"due_date" json:"dueDate"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
	Tags        []Tag      `json:"tags"`
}

// TaskFilter is a validated set of optional predicates plus one
// sort key/direction pair. Nil fields add no restriction.
type TaskFilter struct {
	Status      *Status
	Priority    *Priority
	TagID       *string
	Search      *string
	DueDateFrom *time.Time
	DueDateTo   *time.Time
	SortBy      string
	SortOrder   string
}

// StatusCounts breaks the task total down by status.
type StatusCounts struct {
	Todo  int `json:"todo"`
	Doing int `json:"doing"`
	Done  int `json:"done"`
}

// TaskStats is the aggregate view of a user's tasks as of a reference instant.
type TaskStats struct {
	Total          int          `json:"total"`
	ByStatus       StatusCounts `json:"byStatus"`
	Overdue        int          `json:"overdue"`
	Upcoming       int          `json:"upcoming"`
	HighPriority   int          `json:"highPriority"`
	CompletionRate int          `json:"completionRate"`
}
