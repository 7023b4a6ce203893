package domain

import "time"

type Tag struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// TagWithCount is a tag plus the number of tasks it is attached to,
// used by the tag list endpoint.
type TagWithCount struct {
	Tag
	TaskCount int `json:"taskCount"`
}
