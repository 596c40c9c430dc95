package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"taskboard/model"
	"taskboard/services"
)

func (f *Firestore) CreateGroup(ctx context.Context, group *model.Group) (string, error) {
	groups := f.client.Collection(groupsCollection)
	groupid := uuid.New().String()
	ref := groups.Doc(groupid)

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := groups.Where("created_by", "==", group.CreatedBy).Where("name", "==", group.Name).Limit(1)
		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return services.ErrConflict
		}
		return tx.Create(ref, group)
	})
	if err != nil {
		return "", mapErr(err)
	}
	return groupid, nil
}

func (f *Firestore) GetGroup(ctx context.Context, groupID string) (*model.Group, error) {
	doc, err := f.client.Collection(groupsCollection).Doc(groupID).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return groupFromSnapshot(doc)
}

func (f *Firestore) ListGroupsByMember(ctx context.Context, userID string) ([]model.Group, error) {
	query := f.client.Collection(groupsCollection).Where("members", "array-contains", userID)
	return f.queryGroups(ctx, query)
}

func (f *Firestore) ListGroupsByCreator(ctx context.Context, userID string) ([]model.Group, error) {
	query := f.client.Collection(groupsCollection).Where("created_by", "==", userID)
	return f.queryGroups(ctx, query)
}

func (f *Firestore) queryGroups(ctx context.Context, query firestore.Query) ([]model.Group, error) {
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	groups := make([]model.Group, 0, len(docs))
	for _, doc := range docs {
		group, err := groupFromSnapshot(doc)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *group)
	}
	return groups, nil
}

func (f *Firestore) ReplaceGroup(ctx context.Context, groupID, name, description string, members []string) error {
	_, err := f.client.Collection(groupsCollection).Doc(groupID).Update(ctx, []firestore.Update{
		{Path: "name", Value: name},
		{Path: "description", Value: description},
		{Path: "members", Value: members},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	return mapErr(err)
}

func (f *Firestore) DeleteGroup(ctx context.Context, groupID string) error {
	_, err := f.client.Collection(groupsCollection).Doc(groupID).Delete(ctx)
	return mapErr(err)
}

func groupFromSnapshot(doc *firestore.DocumentSnapshot) (*model.Group, error) {
	var group model.Group
	if err := doc.DataTo(&group); err != nil {
		return nil, err
	}
	group.GroupID = doc.Ref.ID
	return &group, nil
}
