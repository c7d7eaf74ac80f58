package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type TaskRepository struct {
	store *Store
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

type taskRow struct {
	ID           int64          `db:"id"`
	ProjectID    sql.NullInt64  `db:"project_id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Status       string         `db:"status"`
	Priority     string         `db:"priority"`
	Category     string         `db:"category"`
	Deadline     sql.NullTime   `db:"deadline"`
	CreatedAt    time.Time      `db:"created_at"`
	CompletedAt  sql.NullTime   `db:"completed_at"`
	ParentTaskID sql.NullInt64  `db:"parent_task_id"`
	Ord          int            `db:"ord"`
	BlockID      sql.NullInt64  `db:"block_id"`
	AssignedTo   sql.NullString `db:"assigned_to"`
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	return r.selectTasks(ctx, `SELECT * FROM tasks ORDER BY ord, id`)
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	return r.selectTasks(ctx, `SELECT * FROM tasks WHERE project_id = ? ORDER BY ord, id`, projectID)
}

func (r *TaskRepository) selectTasks(ctx context.Context, query string, args ...interface{}) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.store.q(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	var row taskRow
	err := r.store.q(ctx).GetContext(ctx, &row, `SELECT * FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	res, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO tasks (project_id, title, description, status, priority, category, deadline, created_at, completed_at, parent_task_id, ord, block_id, assigned_to)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL, NULL, ?, ?, ?)`,
		toNullInt64(input.ProjectID),
		input.Title,
		toNullString(input.Description),
		string(input.Status),
		string(input.Priority),
		string(input.Category),
		toNullTime(input.Deadline),
		time.Now().UTC(),
		input.Order,
		toNullInt64(input.BlockID),
		toNullString(input.AssignedTo),
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Update(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Task{}, err
	}

	sets := make([]string, 0, 10)
	args := make([]interface{}, 0, 10)

	if input.ProjectIDSet {
		sets = append(sets, "project_id = ?")
		args = append(args, toNullInt64(input.ProjectID))
	}
	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, toNullString(input.Description))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, string(*input.Category))
	}
	if input.DeadlineSet {
		sets = append(sets, "deadline = ?")
		args = append(args, toNullTime(input.Deadline))
	}
	if input.Order != nil {
		sets = append(sets, "ord = ?")
		args = append(args, *input.Order)
	}
	if input.BlockIDSet {
		sets = append(sets, "block_id = ?")
		args = append(args, toNullInt64(input.BlockID))
	}
	if input.AssignedToSet {
		sets = append(sets, "assigned_to = ?")
		args = append(args, toNullString(input.AssignedTo))
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
		if _, err := r.store.q(ctx).ExecContext(ctx, query, args...); err != nil {
			return domain.Task{}, err
		}
	}

	return r.GetByID(ctx, id)
}

func (r *TaskRepository) SetCompletion(ctx context.Context, id int64, status domain.TaskStatus, completed bool) (domain.Task, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Task{}, err
	}

	completedAt := sql.NullTime{}
	if completed {
		completedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	}
	_, err := r.store.q(ctx).ExecContext(ctx,
		`UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`,
		string(status), completedAt, id,
	)
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Move(ctx context.Context, id int64, blockID *int64, order int) (domain.Task, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Task{}, err
	}

	_, err := r.store.q(ctx).ExecContext(ctx,
		`UPDATE tasks SET block_id = ?, ord = ? WHERE id = ?`,
		toNullInt64(blockID), order, id,
	)
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteByProject(ctx context.Context, projectID int64) ([]int64, error) {
	var ids []int64
	if err := r.store.q(ctx).SelectContext(ctx, &ids, `SELECT id FROM tasks WHERE project_id = ?`, projectID); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, projectID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *TaskRepository) ReplaceAll(ctx context.Context, tasks []domain.Task) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return err
	}
	for _, t := range tasks {
		_, err := r.store.q(ctx).ExecContext(ctx,
			`INSERT INTO tasks (id, project_id, title, description, status, priority, category, deadline, created_at, completed_at, parent_task_id, ord, block_id, assigned_to)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID,
			toNullInt64(t.ProjectID),
			t.Title,
			toNullString(t.Description),
			string(t.Status),
			string(t.Priority),
			string(t.Category),
			toNullTime(t.Deadline),
			t.CreatedAt,
			toNullTime(t.CompletedAt),
			toNullInt64(t.ParentTaskID),
			t.Order,
			toNullInt64(t.BlockID),
			toNullString(t.AssignedTo),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func mapTaskRow(row taskRow) domain.Task {
	return domain.Task{
		ID:           row.ID,
		ProjectID:    ptrInt64(row.ProjectID),
		Title:        row.Title,
		Description:  ptrString(row.Description),
		Status:       domain.TaskStatus(row.Status),
		Priority:     domain.TaskPriority(row.Priority),
		Category:     domain.TaskCategory(row.Category),
		Deadline:     ptrTime(row.Deadline),
		CreatedAt:    row.CreatedAt,
		CompletedAt:  ptrTime(row.CompletedAt),
		ParentTaskID: ptrInt64(row.ParentTaskID),
		Order:        row.Ord,
		BlockID:      ptrInt64(row.BlockID),
		AssignedTo:   ptrString(row.AssignedTo),
	}
}
