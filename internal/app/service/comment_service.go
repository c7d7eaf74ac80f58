package service

import (
	"context"
	"fmt"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type CommentService struct {
	tx       ports.Transactor
	tasks    ports.TaskRepository
	comments ports.CommentRepository
	audit    auditor
}

var _ ports.CommentService = (*CommentService)(nil)

func NewCommentService(tx ports.Transactor, tasks ports.TaskRepository, comments ports.CommentRepository, activity ports.ActivityRepository, syncLog ports.SyncRepository) *CommentService {
	return &CommentService{
		tx:       tx,
		tasks:    tasks,
		comments: comments,
		audit:    auditor{activity: activity, syncLog: syncLog},
	}
}

func (s *CommentService) ListComments(ctx context.Context, taskID int64) ([]domain.Comment, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.comments.ListByTask(ctx, taskID)
}

func (s *CommentService) CreateComment(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error) {
	var comment domain.Comment
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetByID(ctx, input.TaskID)
		if err != nil {
			return err
		}

		comment, err = s.comments.Create(ctx, input)
		if err != nil {
			return err
		}

		entry := domain.ActivityEntry{
			TaskID:    &task.ID,
			ProjectID: task.ProjectID,
			Action:    domain.ActionComment,
			UserID:    input.AuthorID,
			Details:   fmt.Sprintf("commented on %q", task.Title),
		}
		if _, err := s.audit.activity.Record(ctx, entry); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityComment, int64ID(comment.ID), domain.ActionComment, comment)
	})
	return comment, err
}

func (s *CommentService) DeleteComment(ctx context.Context, id int64) error {
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		comment, err := s.comments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.comments.Delete(ctx, id); err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionDelete, &comment.TaskID, nil, "deleted a comment"); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityComment, int64ID(id), domain.ActionDelete, nil)
	})
}
