package repository

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskboard/services"
)

const (
	usersCollection  = "users"
	tasksCollection  = "task"
	groupsCollection = "groups"
)

// Firestore implements the account, task and group stores on Cloud Firestore.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// mapErr converts gRPC status codes into store sentinels.
func mapErr(err error) error {
	switch status.Code(err) {
	case codes.OK:
		return err
	case codes.NotFound:
		return services.ErrNotFound
	case codes.AlreadyExists:
		return services.ErrConflict
	default:
		return err
	}
}

var (
	_ services.AccountStore     = (*Firestore)(nil)
	_ services.TaskStore        = (*Firestore)(nil)
	_ services.GroupStore       = (*Firestore)(nil)
	_ services.IdentityProvider = (*FirebaseIdentity)(nil)
)
