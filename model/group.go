package model

import "time"

type Group struct {
	GroupID     string     `firestore:"-"`
	Name        string     `firestore:"name"`
	Description string     `firestore:"description"`
	CreatedBy   string     `firestore:"created_by"`
	Members     []string   `firestore:"members"`
	CreatedAt   time.Time  `firestore:"created_at"`
	UpdatedAt   *time.Time `firestore:"updatedAt,omitempty"`
}
