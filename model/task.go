package model

import (
	"time"
)

type Tasks struct {
	TaskID      string    `firestore:"-"`
	Category    string    `firestore:"category"`
	Deadline    time.Time `firestore:"deadline"`
	Description string    `firestore:"description"`
	NameTask    string    `firestore:"nameTask"`
	Status      string    `firestore:"status"`
	UserID      string    `firestore:"userId"`
	GroupName   *string   `firestore:"groupName"` // group name or id, null when the task is personal
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}

// TaskPatch holds the fields of an edit; nil means "leave as is".
type TaskPatch struct {
	Category    *string
	Deadline    *time.Time
	Description *string
	NameTask    *string
	Status      *string
}

func (p TaskPatch) Empty() bool {
	return p.Category == nil && p.Deadline == nil && p.Description == nil && p.NameTask == nil && p.Status == nil
}
