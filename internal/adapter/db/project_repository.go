package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"context"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type ProjectRepository struct {
	store *Store
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

type projectRow struct {
	ID               int64          `db:"id"`
	Name             string         `db:"name"`
	Description      sql.NullString `db:"description"`
	Phase            string         `db:"phase"`
	Color            string         `db:"color"`
	Deadline         sql.NullTime   `db:"deadline"`
	Progress         int            `db:"progress"`
	GameEngine       sql.NullString `db:"game_engine"`
	DevelopmentTools sql.NullString `db:"development_tools"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.store.q(ctx).SelectContext(ctx, &rows, `SELECT * FROM projects ORDER BY id`); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRow(row))
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (domain.Project, error) {
	var row projectRow
	err := r.store.q(ctx).GetContext(ctx, &row, `SELECT * FROM projects WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}
	return mapProjectRow(row), nil
}

func (r *ProjectRepository) Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	tools, err := marshalTools(input.DevelopmentTools)
	if err != nil {
		return domain.Project{}, err
	}

	res, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO projects (name, description, phase, color, deadline, progress, game_engine, development_tools, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Name,
		toNullString(input.Description),
		string(input.Phase),
		input.Color,
		toNullTime(input.Deadline),
		0,
		toNullString(input.GameEngine),
		tools,
		time.Now().UTC(),
	)
	if err != nil {
		return domain.Project{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Project{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, input domain.UpdateProjectInput) (domain.Project, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Project{}, err
	}

	sets := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, toNullString(input.Description))
	}
	if input.Phase != nil {
		sets = append(sets, "phase = ?")
		args = append(args, string(*input.Phase))
	}
	if input.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *input.Color)
	}
	if input.DeadlineSet {
		sets = append(sets, "deadline = ?")
		args = append(args, toNullTime(input.Deadline))
	}
	if input.Progress != nil {
		sets = append(sets, "progress = ?")
		args = append(args, *input.Progress)
	}
	if input.GameEngineSet {
		sets = append(sets, "game_engine = ?")
		args = append(args, toNullString(input.GameEngine))
	}
	if input.DevelopmentToolsSet {
		tools, err := marshalTools(input.DevelopmentTools)
		if err != nil {
			return domain.Project{}, err
		}
		sets = append(sets, "development_tools = ?")
		args = append(args, tools)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE projects SET %s WHERE id = ?", strings.Join(sets, ", "))
		if _, err := r.store.q(ctx).ExecContext(ctx, query, args...); err != nil {
			return domain.Project{}, err
		}
	}

	return r.GetByID(ctx, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) ReplaceAll(ctx context.Context, projects []domain.Project) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return err
	}
	for _, p := range projects {
		tools, err := marshalTools(p.DevelopmentTools)
		if err != nil {
			return err
		}
		_, err = r.store.q(ctx).ExecContext(ctx,
			`INSERT INTO projects (id, name, description, phase, color, deadline, progress, game_engine, development_tools, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID,
			p.Name,
			toNullString(p.Description),
			string(p.Phase),
			p.Color,
			toNullTime(p.Deadline),
			p.Progress,
			toNullString(p.GameEngine),
			tools,
			p.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func marshalTools(tools []string) (string, error) {
	if tools == nil {
		tools = []string{}
	}
	raw, err := json.Marshal(tools)
	if err != nil {
		return "", fmt.Errorf("marshal development tools: %w", err)
	}
	return string(raw), nil
}

func mapProjectRow(row projectRow) domain.Project {
	project := domain.Project{
		ID:          row.ID,
		Name:        row.Name,
		Phase:       domain.ProjectPhase(row.Phase),
		Color:       row.Color,
		Progress:    row.Progress,
		Description: ptrString(row.Description),
		Deadline:    ptrTime(row.Deadline),
		GameEngine:  ptrString(row.GameEngine),
		CreatedAt:   row.CreatedAt,
	}

	project.DevelopmentTools = []string{}
	if row.DevelopmentTools.Valid && row.DevelopmentTools.String != "" {
		// A corrupt list is dropped rather than failing the read.
		_ = json.Unmarshal([]byte(row.DevelopmentTools.String), &project.DevelopmentTools)
	}

	return project
}
