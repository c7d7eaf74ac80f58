package service

import (
	"context"
	"fmt"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type ProjectService struct {
	tx       ports.Transactor
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	subtasks ports.SubtaskRepository
	comments ports.CommentRepository
	timeLogs ports.TimeLogRepository
	activity ports.ActivityRepository
	audit    auditor
}

var _ ports.ProjectService = (*ProjectService)(nil)

func NewProjectService(
	tx ports.Transactor,
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	subtasks ports.SubtaskRepository,
	comments ports.CommentRepository,
	timeLogs ports.TimeLogRepository,
	activity ports.ActivityRepository,
	syncLog ports.SyncRepository,
) *ProjectService {
	return &ProjectService{
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

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	if input.Phase == "" {
		input.Phase = domain.PhasePreProduction
	}

	var project domain.Project
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.projects.Create(ctx, input)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionCreate, nil, &project.ID, fmt.Sprintf("created project %q", project.Name)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityProject, int64ID(project.ID), domain.ActionCreate, project)
	})
	return project, err
}

func (s *ProjectService) UpdateProject(ctx context.Context, id int64, input domain.UpdateProjectInput) (domain.Project, error) {
	var project domain.Project
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.projects.Update(ctx, id, input)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionUpdate, nil, &project.ID, fmt.Sprintf("updated project %q", project.Name)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityProject, int64ID(id), domain.ActionUpdate, project)
	})
	return project, err
}

// DeleteProject removes the project and every task it owns, cascading
// to subtasks, comments and time logs. Activity entries survive with
// their references nulled.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		project, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}

		taskIDs, err := s.tasks.DeleteByProject(ctx, id)
		if err != nil {
			return err
		}
		if err := s.subtasks.DeleteByTasks(ctx, taskIDs); err != nil {
			return err
		}
		if err := s.comments.DeleteByTasks(ctx, taskIDs); err != nil {
			return err
		}
		if err := s.timeLogs.DeleteByTasks(ctx, taskIDs); err != nil {
			return err
		}
		if err := s.activity.DetachTasks(ctx, taskIDs); err != nil {
			return err
		}
		if err := s.activity.DetachProject(ctx, id); err != nil {
			return err
		}

		if err := s.projects.Delete(ctx, id); err != nil {
			return err
		}

		details := fmt.Sprintf("deleted project %q and %d tasks", project.Name, len(taskIDs))
		if err := s.audit.log(ctx, domain.ActionDelete, nil, nil, details); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityProject, int64ID(id), domain.ActionDelete, nil)
	})
}
