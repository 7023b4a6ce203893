package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"taskboard/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestCreateTask_MinimalDefaults(t *testing.T) {
	req := &CreateTaskRequest{Title: "Test Task"}

	in, err := req.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Status != domain.StatusTodo {
		t.Errorf("status = %s; want TODO", in.Status)
	}
	if in.Priority != domain.PriorityMedium {
		t.Errorf("priority = %s; want MEDIUM", in.Priority)
	}
	if in.TagIDs == nil || len(in.TagIDs) != 0 {
		t.Errorf("tagIds should default to empty, got %v", in.TagIDs)
	}
}

func TestCreateTask_Complete(t *testing.T) {
	req := &CreateTaskRequest{
		Title:       "Complete Task",
		Description: strPtr("This is a description"),
		Status:      NullableOf("DOING"),
		Priority:    NullableOf("HIGH"),
		DueDate:     strPtr("2024-12-31T00:00:00.000Z"),
		TagIDs:      []string{"tag1", "tag2"},
	}

	in, err := req.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Status != domain.StatusDoing || in.Priority != domain.PriorityHigh {
		t.Errorf("got %s/%s; want DOING/HIGH", in.Status, in.Priority)
	}
	if in.DueDate == nil || in.DueDate.Year() != 2024 {
		t.Errorf("due date not parsed: %v", in.DueDate)
	}
}

func TestCreateTask_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateTaskRequest
		wantMsg string
	}{
		{"empty title", CreateTaskRequest{Title: ""}, "Title is required"},
		{"title at limit ok", CreateTaskRequest{Title: strings.Repeat("a", 200)}, ""},
		{"title over limit", CreateTaskRequest{Title: strings.Repeat("a", 201)}, "Title is too long"},
		{"long description", CreateTaskRequest{Title: "t", Description: strPtr(strings.Repeat("d", 2001))}, "Description is too long"},
		{"bad status", CreateTaskRequest{Title: "t", Status: NullableOf("INVALID")}, "Invalid status"},
		{"bad priority", CreateTaskRequest{Title: "t", Priority: NullableOf("URGENT")}, "Invalid priority"},
		{"bad due date", CreateTaskRequest{Title: "t", DueDate: strPtr("not-a-date")}, "Invalid due date"},
	}

	for _, tc := range cases {
		_, err := tc.req.Validate()
		if tc.wantMsg == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if err == nil || err.Error() != tc.wantMsg {
			t.Errorf("%s: err = %v; want %q", tc.name, err, tc.wantMsg)
		}
	}
}

func TestUpdateTask_PartialAndNull(t *testing.T) {
	var req UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"title":"Updated Title"}`), &req); err != nil {
		t.Fatal(err)
	}
	up, err := req.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if up.Title == nil || *up.Title != "Updated Title" {
		t.Errorf("title not carried: %v", up.Title)
	}
	if up.Description.Set || up.DueDate.Set {
		t.Errorf("absent fields must stay unset")
	}
	if up.TagIDs != nil {
		t.Errorf("absent tagIds must stay nil")
	}

	// explicit null clears, empty array replaces with nothing
	req = UpdateTaskRequest{}
	if err := json.Unmarshal([]byte(`{"dueDate":null,"tagIds":[]}`), &req); err != nil {
		t.Fatal(err)
	}
	up, err = req.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !up.DueDate.Set || up.DueDate.Valid {
		t.Errorf("null dueDate should be set-but-invalid: %+v", up.DueDate)
	}
	if up.TagIDs == nil || len(up.TagIDs) != 0 {
		t.Errorf("empty tagIds should be non-nil empty, got %v", up.TagIDs)
	}
}

func TestUpdateTask_StatusOnly(t *testing.T) {
	req := UpdateTaskRequest{Status: NullableOf("DONE")}
	up, err := req.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if up.Status == nil || *up.Status != domain.StatusDone {
		t.Errorf("status = %v; want DONE", up.Status)
	}
}

func TestTaskEnums_RejectExplicitNull(t *testing.T) {
	// status and priority are optional but not nullable; an explicit
	// null must not slip through as "absent" and pick up a default.
	var create CreateTaskRequest
	if err := json.Unmarshal([]byte(`{"title":"t","status":null}`), &create); err != nil {
		t.Fatal(err)
	}
	if _, err := create.Validate(); err == nil || err.Error() != "Invalid status" {
		t.Errorf("create null status: err = %v; want %q", err, "Invalid status")
	}

	create = CreateTaskRequest{}
	if err := json.Unmarshal([]byte(`{"title":"t","priority":null}`), &create); err != nil {
		t.Fatal(err)
	}
	if _, err := create.Validate(); err == nil || err.Error() != "Invalid priority" {
		t.Errorf("create null priority: err = %v; want %q", err, "Invalid priority")
	}

	var update UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"status":null}`), &update); err != nil {
		t.Fatal(err)
	}
	if _, err := update.Validate(); err == nil || err.Error() != "Invalid status" {
		t.Errorf("update null status: err = %v; want %q", err, "Invalid status")
	}
}

func TestTaskFilters(t *testing.T) {
	p := TaskFilterParams{
		Status:    "TODO",
		Priority:  "HIGH",
		Search:    "test",
		SortBy:    "dueDate",
		SortOrder: "asc",
	}
	f, err := p.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *f.Status != domain.StatusTodo || *f.Priority != domain.PriorityHigh {
		t.Errorf("enums not carried: %v %v", f.Status, f.Priority)
	}
	if f.SortBy != "dueDate" || f.SortOrder != "asc" {
		t.Errorf("sort = %s/%s", f.SortBy, f.SortOrder)
	}
}

func TestTaskFilters_EmptyIsValid(t *testing.T) {
	f, err := (&TaskFilterParams{}).Validate()
	if err != nil {
		t.Fatalf("empty filter rejected: %v", err)
	}
	if f.Status != nil || f.Priority != nil || f.TagID != nil || f.Search != nil {
		t.Errorf("empty filter should carry no predicates")
	}
	if f.SortBy != "createdAt" || f.SortOrder != "desc" {
		t.Errorf("defaults = %s/%s; want createdAt/desc", f.SortBy, f.SortOrder)
	}
}

func TestTaskFilters_Rejections(t *testing.T) {
	cases := []struct {
		name string
		p    TaskFilterParams
	}{
		{"bad status", TaskFilterParams{Status: "WAITING"}},
		{"bad sort key", TaskFilterParams{SortBy: "id"}},
		{"bad sort order", TaskFilterParams{SortOrder: "up"}},
		{"bad date", TaskFilterParams{DueDateFrom: "yesterday"}},
	}
	for _, tc := range cases {
		if _, err := tc.p.Validate(); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
