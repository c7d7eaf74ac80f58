package mapper

import (
	"time"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		Category:  string(task.Category),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		Order:     task.Order,
	}

	if task.ProjectID != nil {
		value := *task.ProjectID
		item.ProjectID = &value
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.Deadline != nil {
		value := task.Deadline.Format("2006-01-02")
		item.Deadline = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	if task.BlockID != nil {
		value := *task.BlockID
		item.BlockID = &value
	}

	if task.AssignedTo != nil {
		value := *task.AssignedTo
		item.AssignedTo = &value
	}

	return item
}

func ToSubtaskItems(subtasks []domain.Subtask) []dto.SubtaskItem {
	items := make([]dto.SubtaskItem, 0, len(subtasks))
	for _, subtask := range subtasks {
		items = append(items, ToSubtaskItem(subtask))
	}
	return items
}

func ToSubtaskItem(subtask domain.Subtask) dto.SubtaskItem {
	return dto.SubtaskItem{
		ID:          subtask.ID,
		TaskID:      subtask.TaskID,
		Title:       subtask.Title,
		IsCompleted: subtask.IsCompleted,
		Order:       subtask.Order,
	}
}

func ToBlockItems(blocks []domain.Block) []dto.BlockItem {
	items := make([]dto.BlockItem, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, ToBlockItem(block))
	}
	return items
}

func ToBlockItem(block domain.Block) dto.BlockItem {
	return dto.BlockItem{
		ID:    block.ID,
		Name:  block.Name,
		Color: block.Color,
		Order: block.Order,
	}
}

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	item := dto.CommentItem{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
	if comment.AuthorID != nil {
		value := *comment.AuthorID
		item.AuthorID = &value
	}
	return item
}
