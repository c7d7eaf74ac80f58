package service

import (
	"context"
	"fmt"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type BlockService struct {
	tx     ports.Transactor
	blocks ports.BlockRepository
	audit  auditor
}

var _ ports.BlockService = (*BlockService)(nil)

func NewBlockService(tx ports.Transactor, blocks ports.BlockRepository, activity ports.ActivityRepository, syncLog ports.SyncRepository) *BlockService {
	return &BlockService{
		tx:     tx,
		blocks: blocks,
		audit:  auditor{activity: activity, syncLog: syncLog},
	}
}

func (s *BlockService) ListBlocks(ctx context.Context) ([]domain.Block, error) {
	return s.blocks.List(ctx)
}

func (s *BlockService) CreateBlock(ctx context.Context, input domain.CreateBlockInput) (domain.Block, error) {
	var block domain.Block
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		block, err = s.blocks.Create(ctx, input)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionCreate, nil, nil, fmt.Sprintf("created block %q", block.Name)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityBlock, int64ID(block.ID), domain.ActionCreate, block)
	})
	return block, err
}

func (s *BlockService) UpdateBlock(ctx context.Context, id int64, input domain.UpdateBlockInput) (domain.Block, error) {
	var block domain.Block
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		block, err = s.blocks.Update(ctx, id, input)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionUpdate, nil, nil, fmt.Sprintf("updated block %q", block.Name)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityBlock, int64ID(id), domain.ActionUpdate, block)
	})
	return block, err
}

func (s *BlockService) DeleteBlock(ctx context.Context, id int64) error {
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		block, err := s.blocks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.blocks.Delete(ctx, id); err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionDelete, nil, nil, fmt.Sprintf("deleted block %q", block.Name)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityBlock, int64ID(id), domain.ActionDelete, nil)
	})
}
