package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"taskboard/model"
	"taskboard/services"
)

func (f *Firestore) CreateTask(ctx context.Context, task *model.Tasks) (string, error) {
	tasks := f.client.Collection(tasksCollection)
	taskid := uuid.New().String()
	ref := tasks.Doc(taskid)

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := tasks.Where("nameTask", "==", task.NameTask).Where("userId", "==", task.UserID).Limit(1)
		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return services.ErrConflict
		}
		return tx.Create(ref, task)
	})
	if err != nil {
		return "", mapErr(err)
	}
	return taskid, nil
}

func (f *Firestore) GetTask(ctx context.Context, taskID string) (*model.Tasks, error) {
	doc, err := f.client.Collection(tasksCollection).Doc(taskID).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return taskFromSnapshot(doc)
}

func (f *Firestore) ListTasksByUser(ctx context.Context, userID string) ([]model.Tasks, error) {
	query := f.client.Collection(tasksCollection).Where("userId", "==", userID)
	return f.queryTasks(ctx, query)
}

func (f *Firestore) ListTasksByGroup(ctx context.Context, group string) ([]model.Tasks, error) {
	query := f.client.Collection(tasksCollection).Query
	if group != "" {
		query = query.Where("groupName", "==", group)
	}
	return f.queryTasks(ctx, query)
}

func (f *Firestore) queryTasks(ctx context.Context, query firestore.Query) ([]model.Tasks, error) {
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	tasks := make([]model.Tasks, 0, len(docs))
	for _, doc := range docs {
		task, err := taskFromSnapshot(doc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (f *Firestore) UpdateTask(ctx context.Context, taskID string, patch model.TaskPatch) error {
	var updates []firestore.Update
	if patch.Category != nil {
		updates = append(updates, firestore.Update{Path: "category", Value: *patch.Category})
	}
	if patch.Deadline != nil {
		updates = append(updates, firestore.Update{Path: "deadline", Value: *patch.Deadline})
	}
	if patch.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *patch.Description})
	}
	if patch.NameTask != nil {
		updates = append(updates, firestore.Update{Path: "nameTask", Value: *patch.NameTask})
	}
	if patch.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: *patch.Status})
	}

	_, err := f.client.Collection(tasksCollection).Doc(taskID).Update(ctx, updates)
	return mapErr(err)
}

func (f *Firestore) DeleteTask(ctx context.Context, taskID string) error {
	_, err := f.client.Collection(tasksCollection).Doc(taskID).Delete(ctx)
	return mapErr(err)
}

func taskFromSnapshot(doc *firestore.DocumentSnapshot) (*model.Tasks, error) {
	var task model.Tasks
	if err := doc.DataTo(&task); err != nil {
		return nil, err
	}
	task.TaskID = doc.Ref.ID
	return &task, nil
}
