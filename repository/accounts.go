package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"taskboard/model"
	"taskboard/services"
)

func (f *Firestore) FindAccountByEmail(ctx context.Context, email string) (*model.User, error) {
	query := f.client.Collection(usersCollection).Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, services.ErrNotFound
	}
	return userFromSnapshot(docs[0]), nil
}

// CreateAccount re-checks the email inside the transaction so two concurrent
// registrations cannot both write a document.
func (f *Firestore) CreateAccount(ctx context.Context, user *model.User) error {
	users := f.client.Collection(usersCollection)
	ref := users.Doc(user.UserID)

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docs, err := tx.Documents(users.Where("email", "==", user.Email).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return services.ErrConflict
		}
		return tx.Create(ref, user)
	})
	return mapErr(err)
}

func (f *Firestore) SetLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := f.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "last_login", Value: at},
	})
	return mapErr(err)
}

func (f *Firestore) ListAccounts(ctx context.Context) ([]model.User, error) {
	iter := f.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []model.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		users = append(users, *userFromSnapshot(doc))
	}
	return users, nil
}

func (f *Firestore) UpdateAccount(ctx context.Context, userID, email, username, role string) error {
	_, err := f.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "email", Value: email},
		{Path: "username", Value: username},
		{Path: "rol", Value: role},
	})
	return mapErr(err)
}

// userFromSnapshot reads a users document field by field; last_login may be a
// timestamp or a free-text string depending on who wrote it.
func userFromSnapshot(doc *firestore.DocumentSnapshot) *model.User {
	return userFromData(doc.Ref.ID, doc.Data())
}

func userFromData(id string, data map[string]interface{}) *model.User {
	user := &model.User{UserID: id}
	user.Email, _ = data["email"].(string)
	user.Username, _ = data["username"].(string)
	user.Password, _ = data["password"].(string)
	user.Role, _ = data["rol"].(string)

	switch v := data["last_login"].(type) {
	case time.Time:
		user.LastLogin = v
	case string:
		user.LegacyLastLogin = v
	}
	return user
}
