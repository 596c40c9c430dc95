package services

import (
	"context"
	"time"

	"taskboard/model"
)

// AccountStore persists accounts in the users collection.
type AccountStore interface {
	// FindAccountByEmail returns ErrNotFound when no account has the email.
	FindAccountByEmail(ctx context.Context, email string) (*model.User, error)
	// CreateAccount stores user under user.UserID; ErrConflict if the email is taken.
	CreateAccount(ctx context.Context, user *model.User) error
	SetLastLogin(ctx context.Context, userID string, at time.Time) error
	ListAccounts(ctx context.Context) ([]model.User, error)
	// UpdateAccount overwrites email, username and role; ErrNotFound if the document is missing.
	UpdateAccount(ctx context.Context, userID, email, username, role string) error
}

// IdentityProvider owns account identity outside the document store.
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email, password, displayName string) (string, error)
	DeleteIdentity(ctx context.Context, uid string) error
}

type TaskStore interface {
	// CreateTask inserts the task unless (NameTask, UserID) already exists, returning ErrConflict.
	CreateTask(ctx context.Context, task *model.Tasks) (string, error)
	GetTask(ctx context.Context, taskID string) (*model.Tasks, error)
	ListTasksByUser(ctx context.Context, userID string) ([]model.Tasks, error)
	// ListTasksByGroup lists tasks whose groupName equals group; an empty group lists all tasks.
	ListTasksByGroup(ctx context.Context, group string) ([]model.Tasks, error)
	// UpdateTask writes the non-nil patch fields; ErrNotFound if the task is missing.
	UpdateTask(ctx context.Context, taskID string, patch model.TaskPatch) error
	DeleteTask(ctx context.Context, taskID string) error
}

type GroupStore interface {
	// CreateGroup inserts the group unless (Name, CreatedBy) already exists, returning ErrConflict.
	CreateGroup(ctx context.Context, group *model.Group) (string, error)
	GetGroup(ctx context.Context, groupID string) (*model.Group, error)
	ListGroupsByMember(ctx context.Context, userID string) ([]model.Group, error)
	ListGroupsByCreator(ctx context.Context, userID string) ([]model.Group, error)
	// ReplaceGroup overwrites name, description and members and stamps the update time.
	ReplaceGroup(ctx context.Context, groupID, name, description string, members []string) error
	DeleteGroup(ctx context.Context, groupID string) error
}
