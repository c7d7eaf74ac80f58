package service

import (
	"context"
	"fmt"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type TaskService struct {
	tx       ports.Transactor
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	subtasks ports.SubtaskRepository
	comments ports.CommentRepository
	timeLogs ports.TimeLogRepository
	activity ports.ActivityRepository
	audit    auditor
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(
	tx ports.Transactor,
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	subtasks ports.SubtaskRepository,
	comments ports.CommentRepository,
	timeLogs ports.TimeLogRepository,
	activity ports.ActivityRepository,
	syncLog ports.SyncRepository,
) *TaskService {
	return &TaskService{
		tx:       tx,
		projects: projects,
		tasks:    tasks,
		subtasks: subtasks,
		comments: comments,
		timeLogs: timeLogs,
		activity: activity,
		audit:    auditor{activity: activity, syncLog: syncLog},
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) ListProjectTasks(ctx context.Context, projectID int64) ([]domain.Task, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if input.Status == "" {
		input.Status = domain.TaskStatusNotStarted
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	if input.Category == "" {
		input.Category = domain.TaskCategoryOther
	}

	var task domain.Task
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.tasks.Create(ctx, input)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionCreate, &task.ID, task.ProjectID, fmt.Sprintf("created task %q", task.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityTask, int64ID(task.ID), domain.ActionCreate, task)
	})
	return task, err
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	var task domain.Task
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.tasks.Update(ctx, id, input)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionUpdate, &task.ID, task.ProjectID, fmt.Sprintf("updated task %q", task.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityTask, int64ID(id), domain.ActionUpdate, task)
	})
	return task, err
}

// CompleteTask is the only path that sets CompletedAt, so the
// "completed_at iff status completed" invariant cannot be bypassed by
// a generic update.
func (s *TaskService) CompleteTask(ctx context.Context, id int64) (domain.Task, error) {
	var task domain.Task
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.tasks.SetCompletion(ctx, id, domain.TaskStatusCompleted, true)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionComplete, &task.ID, task.ProjectID, fmt.Sprintf("completed task %q", task.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityTask, int64ID(id), domain.ActionComplete, task)
	})
	return task, err
}

func (s *TaskService) ReopenTask(ctx context.Context, id int64) (domain.Task, error) {
	var task domain.Task
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.tasks.SetCompletion(ctx, id, domain.TaskStatusInProgress, false)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionUpdate, &task.ID, task.ProjectID, fmt.Sprintf("reopened task %q", task.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityTask, int64ID(id), domain.ActionUpdate, task)
	})
	return task, err
}

func (s *TaskService) MoveTask(ctx context.Context, id int64, blockID *int64, order int) (domain.Task, error) {
	var task domain.Task
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.tasks.Move(ctx, id, blockID, order)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionMove, &task.ID, task.ProjectID, fmt.Sprintf("moved task %q", task.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityTask, int64ID(id), domain.ActionMove, task)
	})
	return task, err
}

// DeleteTask removes the task and its owned subtasks, comments and
// time logs.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		owned := []int64{id}
		if err := s.subtasks.DeleteByTasks(ctx, owned); err != nil {
			return err
		}
		if err := s.comments.DeleteByTasks(ctx, owned); err != nil {
			return err
		}
		if err := s.timeLogs.DeleteByTasks(ctx, owned); err != nil {
			return err
		}
		if err := s.activity.DetachTasks(ctx, owned); err != nil {
			return err
		}

		if err := s.tasks.Delete(ctx, id); err != nil {
			return err
		}

		if err := s.audit.log(ctx, domain.ActionDelete, nil, task.ProjectID, fmt.Sprintf("deleted task %q", task.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityTask, int64ID(id), domain.ActionDelete, nil)
	})
}
