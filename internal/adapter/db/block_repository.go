package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type BlockRepository struct {
	store *Store
}

var _ ports.BlockRepository = (*BlockRepository)(nil)

func NewBlockRepository(store *Store) *BlockRepository {
	return &BlockRepository{store: store}
}

type blockRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Color string `db:"color"`
	Ord   int    `db:"ord"`
}

func (r *BlockRepository) List(ctx context.Context) ([]domain.Block, error) {
	var rows []blockRow
	if err := r.store.q(ctx).SelectContext(ctx, &rows, `SELECT * FROM blocks ORDER BY ord, id`); err != nil {
		return nil, err
	}

	blocks := make([]domain.Block, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, mapBlockRow(row))
	}
	return blocks, nil
}

func (r *BlockRepository) GetByID(ctx context.Context, id int64) (domain.Block, error) {
	var row blockRow
	err := r.store.q(ctx).GetContext(ctx, &row, `SELECT * FROM blocks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Block{}, domain.ErrBlockNotFound
	}
	if err != nil {
		return domain.Block{}, err
	}
	return mapBlockRow(row), nil
}

func (r *BlockRepository) Create(ctx context.Context, input domain.CreateBlockInput) (domain.Block, error) {
	res, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO blocks (name, color, ord) VALUES (?, ?, ?)`,
		input.Name, input.Color, input.Order,
	)
	if err != nil {
		return domain.Block{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Block{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *BlockRepository) Update(ctx context.Context, id int64, input domain.UpdateBlockInput) (domain.Block, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Block{}, err
	}

	name := current.Name
	if input.Name != nil {
		name = *input.Name
	}
	color := current.Color
	if input.Color != nil {
		color = *input.Color
	}
	order := current.Order
	if input.Order != nil {
		order = *input.Order
	}

	_, err = r.store.q(ctx).ExecContext(ctx,
		`UPDATE blocks SET name = ?, color = ?, ord = ? WHERE id = ?`,
		name, color, order, id,
	)
	if err != nil {
		return domain.Block{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *BlockRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM blocks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBlockNotFound
	}
	return nil
}

func (r *BlockRepository) ReplaceAll(ctx context.Context, blocks []domain.Block) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM blocks`); err != nil {
		return err
	}
	for _, b := range blocks {
		_, err := r.store.q(ctx).ExecContext(ctx,
			`INSERT INTO blocks (id, name, color, ord) VALUES (?, ?, ?, ?)`,
			b.ID, b.Name, b.Color, b.Order,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func mapBlockRow(row blockRow) domain.Block {
	return domain.Block{
		ID:    row.ID,
		Name:  row.Name,
		Color: row.Color,
		Order: row.Ord,
	}
}
