package service

import (
	"context"
	"fmt"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type SubtaskService struct {
	tx       ports.Transactor
	tasks    ports.TaskRepository
	subtasks ports.SubtaskRepository
	audit    auditor
}

var _ ports.SubtaskService = (*SubtaskService)(nil)

func NewSubtaskService(
	tx ports.Transactor,
	tasks ports.TaskRepository,
	subtasks ports.SubtaskRepository,
	activity ports.ActivityRepository,
	syncLog ports.SyncRepository,
) *SubtaskService {
	return &SubtaskService{
		tx:       tx,
		tasks:    tasks,
		subtasks: subtasks,
		audit:    auditor{activity: activity, syncLog: syncLog},
	}
}

func (s *SubtaskService) ListSubtasks(ctx context.Context, taskID int64) ([]domain.Subtask, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.subtasks.ListByTask(ctx, taskID)
}

func (s *SubtaskService) CreateSubtask(ctx context.Context, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	var subtask domain.Subtask
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetByID(ctx, input.TaskID)
		if err != nil {
			return err
		}

		siblings, err := s.subtasks.ListByTask(ctx, input.TaskID)
		if err != nil {
			return err
		}

		subtask, err = s.subtasks.Create(ctx, input, len(siblings))
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionCreate, &task.ID, task.ProjectID, fmt.Sprintf("added subtask %q to %q", subtask.Title, task.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntitySubtask, int64ID(subtask.ID), domain.ActionCreate, subtask)
	})
	return subtask, err
}

func (s *SubtaskService) UpdateSubtask(ctx context.Context, id int64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	var subtask domain.Subtask
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		subtask, err = s.subtasks.Update(ctx, id, input)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionUpdate, &subtask.TaskID, nil, fmt.Sprintf("updated subtask %q", subtask.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntitySubtask, int64ID(id), domain.ActionUpdate, subtask)
	})
	return subtask, err
}

func (s *SubtaskService) ToggleSubtask(ctx context.Context, id int64) (domain.Subtask, error) {
	var subtask domain.Subtask
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		current, err := s.subtasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		toggled := !current.IsCompleted
		subtask, err = s.subtasks.Update(ctx, id, domain.UpdateSubtaskInput{IsCompleted: &toggled})
		if err != nil {
			return err
		}

		state := "reopened"
		if subtask.IsCompleted {
			state = "completed"
		}
		if err := s.audit.log(ctx, domain.ActionUpdate, &subtask.TaskID, nil, fmt.Sprintf("%s subtask %q", state, subtask.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntitySubtask, int64ID(id), domain.ActionUpdate, subtask)
	})
	return subtask, err
}

// ReorderSubtasks rewrites sibling order to the dense 0..n-1 sequence
// given by orderedIDs, which must be exactly the task's subtask ids.
func (s *SubtaskService) ReorderSubtasks(ctx context.Context, taskID int64, orderedIDs []int64) ([]domain.Subtask, error) {
	var reordered []domain.Subtask
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}

		siblings, err := s.subtasks.ListByTask(ctx, taskID)
		if err != nil {
			return err
		}
		if len(siblings) != len(orderedIDs) {
			return domain.ErrSubtaskOrderMismatch
		}
		known := make(map[int64]struct{}, len(siblings))
		for _, sibling := range siblings {
			known[sibling.ID] = struct{}{}
		}
		for _, id := range orderedIDs {
			if _, ok := known[id]; !ok {
				return domain.ErrSubtaskOrderMismatch
			}
			delete(known, id)
		}

		for position, id := range orderedIDs {
			if err := s.subtasks.SetOrder(ctx, id, position); err != nil {
				return err
			}
		}

		reordered, err = s.subtasks.ListByTask(ctx, taskID)
		if err != nil {
			return err
		}

		if err := s.audit.log(ctx, domain.ActionReorder, &taskID, task.ProjectID, fmt.Sprintf("reordered %d subtasks of %q", len(orderedIDs), task.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntitySubtask, int64ID(taskID), domain.ActionReorder, reordered)
	})
	return reordered, err
}

func (s *SubtaskService) DeleteSubtask(ctx context.Context, id int64) error {
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		subtask, err := s.subtasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.subtasks.Delete(ctx, id); err != nil {
			return err
		}

		// Close the order gap so siblings stay dense.
		siblings, err := s.subtasks.ListByTask(ctx, subtask.TaskID)
		if err != nil {
			return err
		}
		for position, sibling := range siblings {
			if sibling.Order == position {
				continue
			}
			if err := s.subtasks.SetOrder(ctx, sibling.ID, position); err != nil {
				return err
			}
		}

		if err := s.audit.log(ctx, domain.ActionDelete, &subtask.TaskID, nil, fmt.Sprintf("deleted subtask %q", subtask.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntitySubtask, int64ID(id), domain.ActionDelete, nil)
	})
}
