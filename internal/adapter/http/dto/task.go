package dto

type TaskItem struct {
	ID          int64   `json:"id"`
	ProjectID   *int64  `json:"project_id,omitempty"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
	Deadline    *string `json:"deadline,omitempty"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
	Order       int     `json:"order"`
	BlockID     *int64  `json:"block_id,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
}

type CreateTaskRequest struct {
	ProjectID   *int64  `json:"project_id" binding:"omitempty,gt=0"`
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=not-started in-progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Category    *string `json:"category" binding:"omitempty,oneof=programming design audio marketing other"`
	Deadline    *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Order       *int    `json:"order" binding:"omitempty,gte=0"`
	BlockID     *int64  `json:"block_id" binding:"omitempty,gt=0"`
	AssignedTo  *string `json:"assigned_to" binding:"omitempty,max=64"`
}

type UpdateTaskRequest struct {
	ProjectID   *int64  `json:"project_id" binding:"omitempty,gt=0"`
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=not-started in-progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Category    *string `json:"category" binding:"omitempty,oneof=programming design audio marketing other"`
	Deadline    *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Order       *int    `json:"order" binding:"omitempty,gte=0"`
	BlockID     *int64  `json:"block_id" binding:"omitempty,gt=0"`
	AssignedTo  *string `json:"assigned_to" binding:"omitempty,max=64"`
}

type MoveTaskRequest struct {
	BlockID *int64 `json:"block_id" binding:"omitempty,gt=0"`
	Order   int    `json:"order" binding:"gte=0"`
}

type SubtaskItem struct {
	ID          int64  `json:"id"`
	TaskID      int64  `json:"task_id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
	Order       int    `json:"order"`
}

type CreateSubtaskRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type UpdateSubtaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	IsCompleted *bool   `json:"is_completed"`
}

type ReorderSubtasksRequest struct {
	OrderedIDs []int64 `json:"ordered_ids" binding:"required,min=1,dive,gt=0"`
}

type BlockItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

type CreateBlockRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
	Order *int    `json:"order" binding:"omitempty,gte=0"`
}

type UpdateBlockRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
	Order *int    `json:"order" binding:"omitempty,gte=0"`
}

type CommentItem struct {
	ID        int64   `json:"id"`
	TaskID    int64   `json:"task_id"`
	AuthorID  *string `json:"author_id,omitempty"`
	Body      string  `json:"body"`
	CreatedAt string  `json:"created_at"`
}

type CreateCommentRequest struct {
	AuthorID *string `json:"author_id" binding:"omitempty,max=64"`
	Body     string  `json:"body" binding:"required,max=65535"`
}
