package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateName is returned when a (user, name) pair already exists.
var ErrDuplicateName = errors.New("duplicate tag name")

type TagRepository struct {
	db *pgxpool.Pool
}

func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{db: db}
}

// ListByUser returns the user's tags ordered by name, each with the number
// of tasks currently carrying it.
func (r *TagRepository) ListByUser(ctx context.Context, userID string) ([]*domain.TagWithCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.user_id, t.name, t.color, t.created_at, COUNT(tt.task_id)
		 FROM tags t
		 LEFT JOIN task_tags tt ON tt.tag_id = t.id
		 WHERE t.user_id = $1
		 GROUP BY t.id
		 ORDER BY t.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.TagWithCount
	for rows.Next() {
		var t domain.TagWithCount
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt, &t.TaskCount); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TagRepository) Create(ctx context.Context, t *domain.Tag) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tags (id, user_id, name, color)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		t.ID, t.UserID, t.Name, t.Color,
	).Scan(&t.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	return err
}

func (r *TagRepository) GetByID(ctx context.Context, userID, id string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, color, created_at
		 FROM tags
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagRepository) GetByName(ctx context.Context, userID, name string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, color, created_at
		 FROM tags
		 WHERE user_id = $1 AND name = $2`,
		userID, name,
	).Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies the non-nil fields to the caller's own tag.
func (r *TagRepository) Update(ctx context.Context, userID, id string, name, color *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tags
		 SET name = COALESCE($1, name), color = COALESCE($2, color)
		 WHERE id = $3 AND user_id = $4`,
		name, color, id, userID,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the tag; task links go with it via ON DELETE CASCADE.
func (r *TagRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.Exec(ctx,
		`DELETE FROM tags WHERE id = $1 AND user_id = $2`,
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
