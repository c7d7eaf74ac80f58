package domain

import "time"

type ProjectPhase string

const (
	PhasePreProduction  ProjectPhase = "pre-production"
	PhaseProduction     ProjectPhase = "production"
	PhasePostProduction ProjectPhase = "post-production"
)

type Project struct {
	ID               int64
	Name             string
	Description      *string
	Phase            ProjectPhase
	Color            string
	Deadline         *time.Time
	Progress         int
	GameEngine       *string
	DevelopmentTools []string
	CreatedAt        time.Time
}

type CreateProjectInput struct {
	Name             string
	Description      *string
	Phase            ProjectPhase
	Color            string
	Deadline         *time.Time
	GameEngine       *string
	DevelopmentTools []string
}

type UpdateProjectInput struct {
	Name                *string
	Description         *string
	DescriptionSet      bool
	Phase               *ProjectPhase
	Color               *string
	Deadline            *time.Time
	DeadlineSet         bool
	Progress            *int
	GameEngine          *string
	GameEngineSet       bool
	DevelopmentTools    []string
	DevelopmentToolsSet bool
}
