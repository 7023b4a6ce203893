package validation

import (
	"time"

	"taskboard/internal/domain"
)

var (
	statusValues   = []string{"TODO", "DOING", "DONE"}
	priorityValues = []string{"LOW", "MEDIUM", "HIGH"}
	sortByValues   = []string{"dueDate", "createdAt", "priority", "title"}
	sortOrderVals  = []string{"asc", "desc"}
)

// CreateTaskRequest is the POST /tasks body. Status and priority are
// optional but not nullable: an absent field defaults, an explicit null
// is rejected.
type CreateTaskRequest struct {
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Status      Nullable[string] `json:"status"`
	Priority    Nullable[string] `json:"priority"`
	DueDate     *string          `json:"dueDate"`
	TagIDs      []string         `json:"tagIds"`
}

// TaskInput is a validated create payload with defaults applied.
type TaskInput struct {
	Title       string
	Description *string
	Status      domain.Status
	Priority    domain.Priority
	DueDate     *time.Time
	TagIDs      []string
}

func (r *CreateTaskRequest) Validate() (*TaskInput, error) {
	err := Schema{
		{Name: "title", Rules: []Rule{
			minLen(r.Title, 1, "Title is required"),
			maxLen(r.Title, 200, "Title is too long"),
		}},
		{Name: "description", Rules: []Rule{
			optMaxLen(r.Description, 2000, "Description is too long"),
		}},
		{Name: "status", Rules: []Rule{
			nullOneOf(r.Status, statusValues, "Invalid status"),
		}},
		{Name: "priority", Rules: []Rule{
			nullOneOf(r.Priority, priorityValues, "Invalid priority"),
		}},
		{Name: "dueDate", Rules: []Rule{
			optInstant(r.DueDate, "Invalid due date"),
		}},
	}.Validate()
	if err != nil {
		return nil, err
	}

	in := &TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityMedium,
		DueDate:     parseInstant(r.DueDate),
		TagIDs:      r.TagIDs,
	}
	if r.Status.Valid {
		in.Status = domain.Status(r.Status.Value)
	}
	if r.Priority.Valid {
		in.Priority = domain.Priority(r.Priority.Value)
	}
	if in.TagIDs == nil {
		in.TagIDs = []string{}
	}
	return in, nil
}

// UpdateTaskRequest is the PUT /tasks/:id body; every field optional.
// Description and due date distinguish "absent" from an explicit null,
// which clears the column. Status and priority are not nullable, so a
// null there is rejected rather than ignored.
type UpdateTaskRequest struct {
	Title       *string          `json:"title"`
	Description Nullable[string] `json:"description"`
	Status      Nullable[string] `json:"status"`
	Priority    Nullable[string] `json:"priority"`
	DueDate     Nullable[string] `json:"dueDate"`
	TagIDs      []string         `json:"tagIds"`
}

// TaskUpdate is a validated partial update. Nil / unset fields leave the
// stored value untouched; a nil TagIDs slice leaves the tag set alone while
// an empty one removes every link.
type TaskUpdate struct {
	Title       *string
	Description Nullable[string]
	Status      *domain.Status
	Priority    *domain.Priority
	DueDate     Nullable[time.Time]
	TagIDs      []string
}

func (r *UpdateTaskRequest) Validate() (*TaskUpdate, error) {
	var desc, due *string
	if r.Description.Valid {
		desc = &r.Description.Value
	}
	if r.DueDate.Valid {
		due = &r.DueDate.Value
	}

	err := Schema{
		{Name: "title", Rules: []Rule{
			optMinLen(r.Title, 1, "Title is required"),
			optMaxLen(r.Title, 200, "Title is too long"),
		}},
		{Name: "description", Rules: []Rule{
			optMaxLen(desc, 2000, "Description is too long"),
		}},
		{Name: "status", Rules: []Rule{
			nullOneOf(r.Status, statusValues, "Invalid status"),
		}},
		{Name: "priority", Rules: []Rule{
			nullOneOf(r.Priority, priorityValues, "Invalid priority"),
		}},
		{Name: "dueDate", Rules: []Rule{
			optInstant(due, "Invalid due date"),
		}},
	}.Validate()
	if err != nil {
		return nil, err
	}

	up := &TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		TagIDs:      r.TagIDs,
	}
	if r.Status.Valid {
		s := domain.Status(r.Status.Value)
		up.Status = &s
	}
	if r.Priority.Valid {
		p := domain.Priority(r.Priority.Value)
		up.Priority = &p
	}
	up.DueDate.Set = r.DueDate.Set
	if t := parseInstant(due); t != nil {
		up.DueDate.Valid = true
		up.DueDate.Value = *t
	}
	return up, nil
}

// TaskFilterParams are the raw query parameters of GET /tasks.
// Empty strings mean "not supplied"; an empty set is a valid filter.
type TaskFilterParams struct {
	Status      string
	Priority    string
	TagID       string
	Search      string
	DueDateFrom string
	DueDateTo   string
	SortBy      string
	SortOrder   string
}

func (p *TaskFilterParams) Validate() (*domain.TaskFilter, error) {
	opt := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	status, priority := opt(p.Status), opt(p.Priority)
	from, to := opt(p.DueDateFrom), opt(p.DueDateTo)
	sortBy, sortOrder := opt(p.SortBy), opt(p.SortOrder)

	err := Schema{
		{Name: "status", Rules: []Rule{
			optOneOf(status, statusValues, "Invalid status"),
		}},
		{Name: "priority", Rules: []Rule{
			optOneOf(priority, priorityValues, "Invalid priority"),
		}},
		{Name: "dueDateFrom", Rules: []Rule{
			optInstant(from, "Invalid due date range"),
		}},
		{Name: "dueDateTo", Rules: []Rule{
			optInstant(to, "Invalid due date range"),
		}},
		{Name: "sortBy", Rules: []Rule{
			optOneOf(sortBy, sortByValues, "Invalid sort key"),
		}},
		{Name: "sortOrder", Rules: []Rule{
			optOneOf(sortOrder, sortOrderVals, "Invalid sort order"),
		}},
	}.Validate()
	if err != nil {
		return nil, err
	}

	f := &domain.TaskFilter{
		TagID:       opt(p.TagID),
		Search:      opt(p.Search),
		DueDateFrom: parseInstant(from),
		DueDateTo:   parseInstant(to),
		SortBy:      "createdAt",
		SortOrder:   "desc",
	}
	if status != nil {
		s := domain.Status(*status)
		f.Status = &s
	}
	if priority != nil {
		pr := domain.Priority(*priority)
		f.Priority = &pr
	}
	if sortBy != nil {
		f.SortBy = *sortBy
	}
	if sortOrder != nil {
		f.SortOrder = *sortOrder
	}
	return f, nil
}
