package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/validation"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, user_id, title, description, status, priority, due_date, created_at, updated_at`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts the task and its tag links in one transaction.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task, tagIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO tasks (id, user_id, title, description, status, priority, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		t.ID, t.UserID, t.Title, t.Description, t.Status, t.Priority, t.DueDate,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return err
	}

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO task_tags (task_id, tag_id) VALUES ($1, $2)`,
			t.ID, tagID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID returns the caller's own task with its tag set resolved.
// A task owned by someone else is indistinguishable from a missing one.
func (r *TaskRepository) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	tags, err := r.loadTags(ctx, []string{t.ID})
	if err != nil {
		return nil, err
	}
	t.Tags = tags[t.ID]
	if t.Tags == nil {
		t.Tags = []domain.Tag{}
	}
	return &t, nil
}

// List returns the caller's tasks matching the filter, ordered by the
// requested sort key, with tag sets resolved.
func (r *TaskRepository) List(ctx context.Context, userID string, f domain.TaskFilter) ([]*domain.Task, error) {
	query, args := buildListQuery(userID, f)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.Task
	var ids []string
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status,
			&t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Tags = []domain.Tag{}
		tasks = append(tasks, &t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		tags, err := r.loadTags(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			if ts, ok := tags[t.ID]; ok {
				t.Tags = ts
			}
		}
	}
	return tasks, nil
}

// buildListQuery assembles the dynamic WHERE clause and ORDER BY for List.
// The caller's user id is always the first predicate; every optional clause
// is conjunctive except the text search, which is an OR over two columns.
func buildListQuery(userID string, f domain.TaskFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`)
	args := []any{userID}

	next := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if f.Status != nil {
		fmt.Fprintf(&sb, " AND status = $%d", next(*f.Status))
	}
	if f.Priority != nil {
		fmt.Fprintf(&sb, " AND priority = $%d", next(*f.Priority))
	}
	if f.TagID != nil {
		fmt.Fprintf(&sb,
			" AND EXISTS (SELECT 1 FROM task_tags tt WHERE tt.task_id = tasks.id AND tt.tag_id = $%d)",
			next(*f.TagID))
	}
	if f.Search != nil {
		n := next("%" + escapeLike(*f.Search) + "%")
		fmt.Fprintf(&sb, " AND (title ILIKE $%d OR description ILIKE $%d)", n, n)
	}
	if f.DueDateFrom != nil {
		fmt.Fprintf(&sb, " AND due_date >= $%d", next(*f.DueDateFrom))
	}
	if f.DueDateTo != nil {
		fmt.Fprintf(&sb, " AND due_date <= $%d", next(*f.DueDateTo))
	}

	dir := "DESC"
	if f.SortOrder == "asc" {
		dir = "ASC"
	}
	fmt.Fprintf(&sb, " ORDER BY %s %s", sortColumn(f.SortBy), dir)

	return sb.String(), args
}

// sortColumn whitelists the sort key. Priority sorts by enum rank
// (LOW < MEDIUM < HIGH), not alphabetically.
func sortColumn(key string) string {
	switch key {
	case "dueDate":
		return "due_date"
	case "priority":
		return fmt.Sprintf("CASE priority WHEN '%s' THEN %d WHEN '%s' THEN %d ELSE %d END",
			domain.PriorityLow, domain.PriorityLow.Rank(),
			domain.PriorityMedium, domain.PriorityMedium.Rank(),
			domain.PriorityHigh.Rank())
	case "title":
		return "title"
	default:
		return "created_at"
	}
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// Update applies a partial update to the caller's own task. When the update
// carries a tag set, existing links are deleted and the new set inserted —
// a destructive replace, no diffing — inside the same transaction.
func (r *TaskRepository) Update(ctx context.Context, userID, id string, up *validation.TaskUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if up.Title != nil {
		add("title", *up.Title)
	}
	if up.Description.Set {
		if up.Description.Valid {
			add("description", up.Description.Value)
		} else {
			sets = append(sets, "description = NULL")
		}
	}
	if up.Status != nil {
		add("status", *up.Status)
	}
	if up.Priority != nil {
		add("priority", *up.Priority)
	}
	if up.DueDate.Set {
		if up.DueDate.Valid {
			add("due_date", up.DueDate.Value)
		} else {
			sets = append(sets, "due_date = NULL")
		}
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	idArg := len(args)
	args = append(args, userID)
	userArg := len(args)

	res, err := tx.Exec(ctx,
		fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d",
			strings.Join(sets, ", "), idArg, userArg),
		args...,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if up.TagIDs != nil {
		if _, err := tx.Exec(ctx,
			`DELETE FROM task_tags WHERE task_id = $1`, id,
		); err != nil {
			return err
		}
		for _, tagID := range up.TagIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO task_tags (task_id, tag_id) VALUES ($1, $2)`,
				id, tagID,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

// Delete removes the caller's own task; links cascade.
func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountStats computes the seven aggregate counts over the user's tasks.
// Each count is an independent query; none is derived from another.
// dayStart and horizonEnd bound the overdue/upcoming windows.
func (r *TaskRepository) CountStats(ctx context.Context, userID string, dayStart, horizonEnd time.Time) (*domain.TaskStats, error) {
	var st domain.TaskStats

	counts := []struct {
		dst   *int
		query string
		args  []any
	}{
		{&st.Total,
			`SELECT COUNT(*) FROM tasks WHERE user_id = $1`,
			[]any{userID}},
		{&st.ByStatus.Todo,
			`SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status = 'TODO'`,
			[]any{userID}},
		{&st.ByStatus.Doing,
			`SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status = 'DOING'`,
			[]any{userID}},
		{&st.ByStatus.Done,
			`SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status = 'DONE'`,
			[]any{userID}},
		{&st.Overdue,
			`SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status <> 'DONE' AND due_date < $2`,
			[]any{userID, dayStart}},
		{&st.Upcoming,
			`SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status <> 'DONE' AND due_date >= $2 AND due_date <= $3`,
			[]any{userID, dayStart, horizonEnd}},
		{&st.HighPriority,
			`SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status <> 'DONE' AND priority = 'HIGH'`,
			[]any{userID}},
	}

	for _, c := range counts {
		if err := r.db.QueryRow(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, err
		}
	}
	return &st, nil
}

// loadTags resolves the tag sets for a batch of tasks in one query.
func (r *TaskRepository) loadTags(ctx context.Context, taskIDs []string) (map[string][]domain.Tag, error) {
	rows, err := r.db.Query(ctx,
		`SELECT tt.task_id, t.id, t.user_id, t.name, t.color, t.created_at
		 FROM task_tags tt
		 JOIN tags t ON t.id = tt.tag_id
		 WHERE tt.task_id = ANY($1::uuid[])
		 ORDER BY t.name ASC`,
		taskIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[string][]domain.Tag)
	for rows.Next() {
		var taskID string
		var t domain.Tag
		if err := rows.Scan(&taskID, &t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, err
		}
		res[taskID] = append(res[taskID], t)
	}
	return res, rows.Err()
}
