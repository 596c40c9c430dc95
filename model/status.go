package model

// Task categories.
const (
	CategoryUrgent    = "Urgent"
	CategoryImportant = "Important"
	CategorySmall     = "Small"
)

// TaskStatus is the single status vocabulary stored in the task collection.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusPostponed  TaskStatus = "Postponed"
)

// Board column names accepted by the board status endpoint.
const (
	BoardToDo       = "To-do"
	BoardInProgress = "In-progress"
	BoardDone       = "Done"
)

var boardToStatus = map[string]TaskStatus{
	BoardToDo:       StatusPending,
	BoardInProgress: StatusInProgress,
	BoardDone:       StatusCompleted,
}

// StatusFromBoard maps a board column to the stored status.
func StatusFromBoard(column string) (TaskStatus, bool) {
	s, ok := boardToStatus[column]
	return s, ok
}

// ParseStatus accepts a stored status or a board column name and returns the
// status to store.
func ParseStatus(s string) (TaskStatus, bool) {
	switch status := TaskStatus(s); status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusPostponed:
		return status, true
	}
	return StatusFromBoard(s)
}
