package handlers

import (
	"net/http"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BlockHandler struct {
	blockService ports.BlockService
}

func NewBlockHandler(blockService ports.BlockService) *BlockHandler {
	return &BlockHandler{blockService: blockService}
}

func (h *BlockHandler) ListBlocks(c *gin.Context) {
	blocks, err := h.blockService.ListBlocks(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list blocks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBlockItems(blocks))
}

func (h *BlockHandler) CreateBlock(c *gin.Context) {
	var req dto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input := domain.CreateBlockInput{Name: req.Name, Color: "#64748b"}
	if req.Color != nil {
		input.Color = *req.Color
	}
	if req.Order != nil {
		input.Order = *req.Order
	}

	block, err := h.blockService.CreateBlock(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to create block")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToBlockItem(block))
}

func (h *BlockHandler) UpdateBlock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	if req.Name == nil && req.Color == nil && req.Order == nil {
		respondInvalidPayload(c)
		return
	}

	block, err := h.blockService.UpdateBlock(c.Request.Context(), id, domain.UpdateBlockInput{
		Name:  req.Name,
		Color: req.Color,
		Order: req.Order,
	})
	if err != nil {
		respondError(c, err, "failed to update block", zap.Int64("block_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToBlockItem(block))
}

func (h *BlockHandler) DeleteBlock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.blockService.DeleteBlock(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete block", zap.Int64("block_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}
