package dto

type ProjectItem struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Description      *string  `json:"description,omitempty"`
	Phase            string   `json:"phase"`
	Color            string   `json:"color"`
	Deadline         *string  `json:"deadline,omitempty"`
	Progress         int      `json:"progress"`
	GameEngine       *string  `json:"game_engine,omitempty"`
	DevelopmentTools []string `json:"development_tools"`
	CreatedAt        string   `json:"created_at"`
}

type CreateProjectRequest struct {
	Name             string   `json:"name" binding:"required,max=255"`
	Description      *string  `json:"description" binding:"omitempty,max=65535"`
	Phase            *string  `json:"phase" binding:"omitempty,oneof=pre-production production post-production"`
	Color            *string  `json:"color" binding:"omitempty,max=32"`
	Deadline         *string  `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	GameEngine       *string  `json:"game_engine" binding:"omitempty,max=255"`
	DevelopmentTools []string `json:"development_tools" binding:"omitempty,dive,max=255"`
}

type UpdateProjectRequest struct {
	Name             *string  `json:"name" binding:"omitempty,max=255"`
	Description      *string  `json:"description" binding:"omitempty,max=65535"`
	Phase            *string  `json:"phase" binding:"omitempty,oneof=pre-production production post-production"`
	Color            *string  `json:"color" binding:"omitempty,max=32"`
	Deadline         *string  `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Progress         *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	GameEngine       *string  `json:"game_engine" binding:"omitempty,max=255"`
	DevelopmentTools []string `json:"development_tools" binding:"omitempty,dive,max=255"`
}
