package repository

import (
	"context"

	"firebase.google.com/go/auth"

	"taskboard/services"
)

// FirebaseIdentity creates and removes Firebase Authentication accounts.
type FirebaseIdentity struct {
	client *auth.Client
}

func NewFirebaseIdentity(client *auth.Client) *FirebaseIdentity {
	return &FirebaseIdentity{client: client}
}

func (f *FirebaseIdentity) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := f.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", services.ErrConflict
		}
		return "", err
	}
	return record.UID, nil
}

func (f *FirebaseIdentity) DeleteIdentity(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}
