package dto

import (
	"time"

	"taskboard/model"
)

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// ISOTime renders t in UTC with millisecond precision, or nil for the zero time.
func ISOTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(isoLayout)
	return &s
}

type CreateTaskRequest struct {
	Category    string  `json:"category"`
	Deadline    string  `json:"deadline"`
	Description string  `json:"description"`
	NameTask    string  `json:"nameTask"`
	Status      string  `json:"status"`
	UserID      string  `json:"userId"`
	GroupName   *string `json:"groupName"`
}

type TaskIDRequest struct {
	TaskID string `json:"taskId"`
}

type EditTaskRequest struct {
	TaskID      string  `json:"taskId"`
	Category    *string `json:"category"`
	Deadline    *string `json:"deadline"`
	Description *string `json:"description"`
	NameTask    *string `json:"nameTask"`
	Status      *string `json:"status"`
}

type BoardStatusRequest struct {
	Status string `json:"status"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Deadline    *string `json:"deadline"`
	Description string  `json:"description"`
	NameTask    string  `json:"nameTask"`
	Status      string  `json:"status"`
	UserID      string  `json:"userId"`
	GroupName   *string `json:"groupName"`
	CreatedAt   *string `json:"createdAt"`
}

func NewTaskResponse(t model.Tasks) TaskResponse {
	return TaskResponse{
		ID:          t.TaskID,
		Category:    t.Category,
		Deadline:    ISOTime(t.Deadline),
		Description: t.Description,
		NameTask:    t.NameTask,
		Status:      t.Status,
		UserID:      t.UserID,
		GroupName:   t.GroupName,
		CreatedAt:   ISOTime(t.CreatedAt),
	}
}

func NewTaskList(tasks []model.Tasks) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}
