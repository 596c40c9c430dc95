package services

import (
	"context"
	"errors"

	"taskboard/model"
)

type NewTaskInput struct {
	Deadline    string `validate:"required,isodate"`
	Category    string `validate:"required,taskcategory"`
	Description string `validate:"required"`
	NameTask    string `validate:"required"`
	Status      string `validate:"required,taskstatus"`
	UserID      string `validate:"required"`
	GroupName   string
}

type EditTaskInput struct {
	TaskID      string
	Deadline    *string `validate:"omitempty,isodate"`
	Category    *string `validate:"omitempty,taskcategory"`
	Description *string
	NameTask    *string
	Status      *string `validate:"omitempty,taskstatus"`
}

var taskMessages = messages{
	"required":              "All fields are required except the group name",
	"Deadline.isodate":      "Invalid deadline format",
	"Category.taskcategory": "Invalid category",
	"Status.taskstatus":     "Invalid status",
}

const (
	msgTaskIDRequired = "Task id is required"
	msgTaskNotFound   = "Task not found"
	msgTaskDuplicate  = "A task with this name already exists for this user"
)

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) CreateTask(ctx context.Context, in NewTaskInput) (string, error) {
	if err := checkStruct(in, taskMessages, "Invalid task data"); err != nil {
		return "", err
	}
	deadline, err := ParseDeadline(in.Deadline)
	if err != nil {
		return "", Validation("Invalid deadline format")
	}

	task := &model.Tasks{
		Category:    in.Category,
		Deadline:    deadline,
		Description: in.Description,
		NameTask:    in.NameTask,
		Status:      storedStatus(in.Status),
		UserID:      in.UserID,
	}
	if in.GroupName != "" {
		group := in.GroupName
		task.GroupName = &group
	}

	id, err := s.tasks.CreateTask(ctx, task)
	if err != nil {
		return "", storeErr(err, "", msgTaskDuplicate)
	}
	return id, nil
}

func (s *TaskService) ListUserTasks(ctx context.Context, userID string) ([]model.Tasks, error) {
	if userID == "" {
		return nil, Validation("userId is required")
	}
	tasks, err := s.tasks.ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, Internal(err)
	}
	if tasks == nil {
		tasks = []model.Tasks{}
	}
	return tasks, nil
}

// ListGroupTasks lists the tasks attached to group, or every task when group is empty.
func (s *TaskService) ListGroupTasks(ctx context.Context, group string) ([]model.Tasks, error) {
	tasks, err := s.tasks.ListTasksByGroup(ctx, group)
	if err != nil {
		return nil, Internal(err)
	}
	if tasks == nil {
		tasks = []model.Tasks{}
	}
	return tasks, nil
}

func (s *TaskService) CompleteTask(ctx context.Context, taskID string) error {
	return s.setStatus(ctx, taskID, model.StatusCompleted)
}

func (s *TaskService) MarkPending(ctx context.Context, taskID string) error {
	return s.setStatus(ctx, taskID, model.StatusPending)
}

func (s *TaskService) setStatus(ctx context.Context, taskID string, status model.TaskStatus) error {
	if err := s.requireTask(ctx, taskID); err != nil {
		return err
	}
	value := string(status)
	err := s.tasks.UpdateTask(ctx, taskID, model.TaskPatch{Status: &value})
	return storeErr(err, msgTaskNotFound, "")
}

// SetBoardStatus stores the status matching a board column. The task is not read first.
func (s *TaskService) SetBoardStatus(ctx context.Context, taskID, column string) error {
	if taskID == "" {
		return Validation(msgTaskIDRequired)
	}
	status, ok := model.StatusFromBoard(column)
	if !ok {
		return Validation("Invalid status")
	}
	value := string(status)
	err := s.tasks.UpdateTask(ctx, taskID, model.TaskPatch{Status: &value})
	return storeErr(err, msgTaskNotFound, "")
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.requireTask(ctx, taskID); err != nil {
		return err
	}
	err := s.tasks.DeleteTask(ctx, taskID)
	return storeErr(err, msgTaskNotFound, "")
}

// EditTask applies the supplied fields. Empty strings count as absent.
func (s *TaskService) EditTask(ctx context.Context, in EditTaskInput) error {
	if err := s.requireTask(ctx, in.TaskID); err != nil {
		return err
	}

	in.Deadline = presentOrNil(in.Deadline)
	in.Category = presentOrNil(in.Category)
	in.Description = presentOrNil(in.Description)
	in.NameTask = presentOrNil(in.NameTask)
	in.Status = presentOrNil(in.Status)
	if err := checkStruct(in, taskMessages, "Invalid task data"); err != nil {
		return err
	}

	patch := model.TaskPatch{
		Category:    in.Category,
		Description: in.Description,
		NameTask:    in.NameTask,
	}
	if in.Status != nil {
		status := storedStatus(*in.Status)
		patch.Status = &status
	}
	if in.Deadline != nil {
		deadline, err := ParseDeadline(*in.Deadline)
		if err != nil {
			return Validation("Invalid deadline format")
		}
		patch.Deadline = &deadline
	}
	if patch.Empty() {
		return Validation("No fields to update")
	}

	err := s.tasks.UpdateTask(ctx, in.TaskID, patch)
	return storeErr(err, msgTaskNotFound, "")
}

func (s *TaskService) requireTask(ctx context.Context, taskID string) error {
	if taskID == "" {
		return Validation(msgTaskIDRequired)
	}
	_, err := s.tasks.GetTask(ctx, taskID)
	if errors.Is(err, ErrNotFound) {
		return NotFound(msgTaskNotFound)
	}
	if err != nil {
		return Internal(err)
	}
	return nil
}

// storedStatus maps a validated status or board column to the stored value.
func storedStatus(s string) string {
	status, _ := model.ParseStatus(s)
	return string(status)
}

func presentOrNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
