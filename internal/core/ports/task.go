package ports

import (
	"context"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error)
	// SetCompletion is the only write path touching CompletedAt.
	SetCompletion(ctx context.Context, id int64, status domain.TaskStatus, completed bool) (domain.Task, error)
	Move(ctx context.Context, id int64, blockID *int64, order int) (domain.Task, error)
	Delete(ctx context.Context, id int64) error
	// DeleteByProject removes every task of the project and returns the
	// deleted ids so the caller can cascade to owned children.
	DeleteByProject(ctx context.Context, projectID int64) ([]int64, error)
	ReplaceAll(ctx context.Context, tasks []domain.Task) error
}

type SubtaskRepository interface {
	List(ctx context.Context) ([]domain.Subtask, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.Subtask, error)
	GetByID(ctx context.Context, id int64) (domain.Subtask, error)
	Create(ctx context.Context, input domain.CreateSubtaskInput, order int) (domain.Subtask, error)
	Update(ctx context.Context, id int64, input domain.UpdateSubtaskInput) (domain.Subtask, error)
	SetOrder(ctx context.Context, id int64, order int) error
	Delete(ctx context.Context, id int64) error
	DeleteByTasks(ctx context.Context, taskIDs []int64) error
	ReplaceAll(ctx context.Context, subtasks []domain.Subtask) error
}

type BlockRepository interface {
	List(ctx context.Context) ([]domain.Block, error)
	GetByID(ctx context.Context, id int64) (domain.Block, error)
	Create(ctx context.Context, input domain.CreateBlockInput) (domain.Block, error)
	Update(ctx context.Context, id int64, input domain.UpdateBlockInput) (domain.Block, error)
	Delete(ctx context.Context, id int64) error
	ReplaceAll(ctx context.Context, blocks []domain.Block) error
}

type CommentRepository interface {
	List(ctx context.Context) ([]domain.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.Comment, error)
	GetByID(ctx context.Context, id int64) (domain.Comment, error)
	Create(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error)
	Delete(ctx context.Context, id int64) error
	DeleteByTasks(ctx context.Context, taskIDs []int64) error
	ReplaceAll(ctx context.Context, comments []domain.Comment) error
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListProjectTasks(ctx context.Context, projectID int64) ([]domain.Task, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error)
	CompleteTask(ctx context.Context, id int64) (domain.Task, error)
	ReopenTask(ctx context.Context, id int64) (domain.Task, error)
	MoveTask(ctx context.Context, id int64, blockID *int64, order int) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type SubtaskService interface {
	ListSubtasks(ctx context.Context, taskID int64) ([]domain.Subtask, error)
	CreateSubtask(ctx context.Context, input domain.CreateSubtaskInput) (domain.Subtask, error)
	UpdateSubtask(ctx context.Context, id int64, input domain.UpdateSubtaskInput) (domain.Subtask, error)
	ToggleSubtask(ctx context.Context, id int64) (domain.Subtask, error)
	ReorderSubtasks(ctx context.Context, taskID int64, orderedIDs []int64) ([]domain.Subtask, error)
	DeleteSubtask(ctx context.Context, id int64) error
}

type BlockService interface {
	ListBlocks(ctx context.Context) ([]domain.Block, error)
	CreateBlock(ctx context.Context, input domain.CreateBlockInput) (domain.Block, error)
	UpdateBlock(ctx context.Context, id int64, input domain.UpdateBlockInput) (domain.Block, error)
	DeleteBlock(ctx context.Context, id int64) error
}

type CommentService interface {
	ListComments(ctx context.Context, taskID int64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
