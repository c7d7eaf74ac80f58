package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/handlers"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/middleware"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/pkg/apierrors"
	"github.com/islamdev99/GameDevTask/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListProjectTasks(ctx context.Context, projectID int64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CompleteTask(ctx context.Context, id int64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ReopenTask(ctx context.Context, id int64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) MoveTask(ctx context.Context, id int64, blockID *int64, order int) (domain.Task, error) {
	args := m.Called(ctx, id, blockID, order)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTaskRouter(handler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.GET("/tasks", handler.ListTasks)
	api.POST("/tasks", handler.CreateTask)
	api.GET("/tasks/:id", handler.GetTask)
	api.PATCH("/tasks/:id", handler.UpdateTask)
	api.DELETE("/tasks/:id", handler.DeleteTask)
	api.POST("/tasks/:id/complete", handler.CompleteTask)
	api.POST("/tasks/:id/move", handler.MoveTask)
	return router
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	description := "wire up save system"
	deadline := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 9, 1, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything).Return(
		[]domain.Task{
			{
				ID:          1,
				Title:       "Implement save system",
				Description: &description,
				Status:      domain.TaskStatusInProgress,
				Priority:    domain.TaskPriorityHigh,
				Category:    domain.TaskCategoryProgramming,
				Deadline:    &deadline,
				CreatedAt:   createdAt,
				Order:       0,
			},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, "Implement save system", got[0].Title)
	require.Equal(t, "wire up save system", *got[0].Description)
	require.Equal(t, "in-progress", got[0].Status)
	require.Equal(t, "high", got[0].Priority)
	require.Equal(t, "programming", got[0].Category)
	require.Equal(t, "2026-09-20", *got[0].Deadline)
	require.Equal(t, "2026-09-01T10:20:30Z", got[0].CreatedAt)
	require.Nil(t, got[0].CompletedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything).Return(nil, errors.New("db is down")).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Internal server error", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/invalid", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id", got.ErrDetails.Message)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, int64(999)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/999", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_NotFound_French(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, int64(999)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/999", nil)
	req.Header.Set("Accept-Language", translator.LanguageFr)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Tâche introuvable", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	createdAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	projectID := int64(3)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Title == "Design boss fight" &&
			input.Status == domain.TaskStatusNotStarted &&
			input.Priority == domain.TaskPriorityMedium &&
			input.Category == domain.TaskCategoryDesign &&
			input.ProjectID != nil && *input.ProjectID == projectID
	})).Return(
		domain.Task{
			ID:        7,
			ProjectID: &projectID,
			Title:     "Design boss fight",
			Status:    domain.TaskStatusNotStarted,
			Priority:  domain.TaskPriorityMedium,
			Category:  domain.TaskCategoryDesign,
			CreatedAt: createdAt,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	body := `{"title":"Design boss fight","category":"design","project_id":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, int64(7), got.ID)
	require.Equal(t, "not-started", got.Status)
	require.Equal(t, "medium", got.Priority)
	require.Equal(t, "design", got.Category)
	require.Equal(t, int64(3), *got.ProjectID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_InvalidStatus(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	body := `{"title":"Design boss fight","status":"doing"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CreateTask")
}

func TestTaskHandler_CreateTask_BlankTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	body := `{"title":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "CreateTask")
}

func TestTaskHandler_UpdateTask_ExplicitNullDeadline(t *testing.T) {
	createdAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, int64(7), mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.DeadlineSet && input.Deadline == nil
	})).Return(
		domain.Task{
			ID:        7,
			Title:     "Design boss fight",
			Status:    domain.TaskStatusNotStarted,
			Priority:  domain.TaskPriorityMedium,
			Category:  domain.TaskCategoryDesign,
			CreatedAt: createdAt,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	body := `{"deadline":null}`
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/7", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Nil(t, got.Deadline)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_EmptyBody(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/7", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "UpdateTask")
}

func TestTaskHandler_CompleteTask_Success(t *testing.T) {
	createdAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	completedAt := time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CompleteTask", mock.Anything, int64(7)).Return(
		domain.Task{
			ID:          7,
			Title:       "Design boss fight",
			Status:      domain.TaskStatusCompleted,
			Priority:    domain.TaskPriorityMedium,
			Category:    domain.TaskCategoryDesign,
			CreatedAt:   createdAt,
			CompletedAt: &completedAt,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/7/complete", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "completed", got.Status)
	require.Equal(t, "2026-09-02T15:30:00Z", *got.CompletedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_MoveTask_Success(t *testing.T) {
	createdAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	blockID := int64(2)

	serviceMock := new(taskServiceMock)
	serviceMock.On("MoveTask", mock.Anything, int64(7), &blockID, 4).Return(
		domain.Task{
			ID:        7,
			Title:     "Design boss fight",
			Status:    domain.TaskStatusInProgress,
			Priority:  domain.TaskPriorityMedium,
			Category:  domain.TaskCategoryDesign,
			CreatedAt: createdAt,
			Order:     4,
			BlockID:   &blockID,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	body := `{"block_id":2,"order":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/7/move", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, int64(2), *got.BlockID)
	require.Equal(t, 4, got.Order)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, int64(7)).Return(nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)
	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/7", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
