package service

import (
	"context"
	"time"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

// StatsService recomputes every aggregate from full table scans on each
// call; nothing is cached.
type StatsService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	subtasks ports.SubtaskRepository
	timeLogs ports.TimeLogRepository
}

var _ ports.StatsService = (*StatsService)(nil)

func NewStatsService(projects ports.ProjectRepository, tasks ports.TaskRepository, subtasks ports.SubtaskRepository, timeLogs ports.TimeLogRepository) *StatsService {
	return &StatsService{
		projects: projects,
		tasks:    tasks,
		subtasks: subtasks,
		timeLogs: timeLogs,
	}
}

func (s *StatsService) ComputeStatistics(ctx context.Context, windowDays int) (domain.Statistics, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	subtasks, err := s.subtasks.List(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	timeLogs, err := s.timeLogs.List(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}

	return domain.ComputeStatistics(projects, tasks, subtasks, timeLogs, windowDays, time.Now()), nil
}
