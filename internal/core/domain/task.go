package domain

import "time"

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not-started"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

type TaskCategory string

const (
	TaskCategoryProgramming TaskCategory = "programming"
	TaskCategoryDesign      TaskCategory = "design"
	TaskCategoryAudio       TaskCategory = "audio"
	TaskCategoryMarketing   TaskCategory = "marketing"
	TaskCategoryOther       TaskCategory = "other"
)

type Task struct {
	ID           int64
	ProjectID    *int64
	Title        string
	Description  *string
	Status       TaskStatus
	Priority     TaskPriority
	Category     TaskCategory
	Deadline     *time.Time
	CreatedAt    time.Time
	CompletedAt  *time.Time
	ParentTaskID *int64
	Order        int
	BlockID      *int64
	AssignedTo   *string
}

type CreateTaskInput struct {
	ProjectID   *int64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	Category    TaskCategory
	Deadline    *time.Time
	Order       int
	BlockID     *int64
	AssignedTo  *string
}

// UpdateTaskInput carries partial updates. Nullable fields pair a value
// pointer with a Set flag so a caller can clear them explicitly.
// Status changes through UpdateTask never touch CompletedAt; only
// CompleteTask and ReopenTask do.
type UpdateTaskInput struct {
	ProjectID      *int64
	ProjectIDSet   bool
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *TaskPriority
	Category       *TaskCategory
	Deadline       *time.Time
	DeadlineSet    bool
	Order          *int
	BlockID        *int64
	BlockIDSet     bool
	AssignedTo     *string
	AssignedToSet  bool
}

type Subtask struct {
	ID          int64
	TaskID      int64
	Title       string
	IsCompleted bool
	Order       int
}

type CreateSubtaskInput struct {
	TaskID int64
	Title  string
}

type UpdateSubtaskInput struct {
	Title       *string
	IsCompleted *bool
}

// Block is a kanban column tasks can be assigned to.
type Block struct {
	ID    int64
	Name  string
	Color string
	Order int
}

type CreateBlockInput struct {
	Name  string
	Color string
	Order int
}

type UpdateBlockInput struct {
	Name  *string
	Color *string
	Order *int
}

type Comment struct {
	ID        int64
	TaskID    int64
	AuthorID  *string
	Body      string
	CreatedAt time.Time
}

type CreateCommentInput struct {
	TaskID   int64
	AuthorID *string
	Body     string
}
