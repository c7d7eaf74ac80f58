package ports

import (
	"context"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id int64) (domain.Project, error)
	Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	Update(ctx context.Context, id int64, input domain.UpdateProjectInput) (domain.Project, error)
	Delete(ctx context.Context, id int64) error
	ReplaceAll(ctx context.Context, projects []domain.Project) error
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id int64) (domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	UpdateProject(ctx context.Context, id int64, input domain.UpdateProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}
