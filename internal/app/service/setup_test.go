package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	dbadapter "github.com/islamdev99/GameDevTask/internal/adapter/db"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

// testEnv wires every service against a fresh in-memory sqlite store so
// behavior is exercised through real SQL, transactions included.
type testEnv struct {
	db    *sqlx.DB
	store *dbadapter.Store

	projects      *dbadapter.ProjectRepository
	tasks         *dbadapter.TaskRepository
	subtasks      *dbadapter.SubtaskRepository
	blocks        *dbadapter.BlockRepository
	comments      *dbadapter.CommentRepository
	timeLogs      *dbadapter.TimeLogRepository
	activity      *dbadapter.ActivityRepository
	syncLog       *dbadapter.SyncRepository
	settings      *dbadapter.SettingsRepository
	users         *dbadapter.UserRepository
	notifications *dbadapter.NotificationRepository

	projectService  *ProjectService
	taskService     *TaskService
	subtaskService  *SubtaskService
	blockService    *BlockService
	commentService  *CommentService
	timeLogService  *TimeLogService
	activityService *ActivityService
	syncService     *SyncQueueService
	statsService    *StatsService
	settingsService *SettingsService
	userService     *UserService
	notifService    *NotificationService
	backupService   *BackupService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn, err := sqlx.Connect("sqlite3", "file::memory:?_foreign_keys=ON")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, dbadapter.Migrate(context.Background(), conn))

	store := dbadapter.NewStore(conn)
	env := &testEnv{
		db:            conn,
		store:         store,
		projects:      dbadapter.NewProjectRepository(store),
		tasks:         dbadapter.NewTaskRepository(store),
		subtasks:      dbadapter.NewSubtaskRepository(store),
		blocks:        dbadapter.NewBlockRepository(store),
		comments:      dbadapter.NewCommentRepository(store),
		timeLogs:      dbadapter.NewTimeLogRepository(store),
		activity:      dbadapter.NewActivityRepository(store),
		syncLog:       dbadapter.NewSyncRepository(store),
		settings:      dbadapter.NewSettingsRepository(store),
		users:         dbadapter.NewUserRepository(store),
		notifications: dbadapter.NewNotificationRepository(store),
	}

	env.projectService = NewProjectService(store, env.projects, env.tasks, env.subtasks, env.comments, env.timeLogs, env.activity, env.syncLog)
	env.taskService = NewTaskService(store, env.projects, env.tasks, env.subtasks, env.comments, env.timeLogs, env.activity, env.syncLog)
	env.subtaskService = NewSubtaskService(store, env.tasks, env.subtasks, env.activity, env.syncLog)
	env.blockService = NewBlockService(store, env.blocks, env.activity, env.syncLog)
	env.commentService = NewCommentService(store, env.tasks, env.comments, env.activity, env.syncLog)
	env.timeLogService = NewTimeLogService(store, env.tasks, env.timeLogs, env.activity, env.syncLog)
	env.activityService = NewActivityService(env.activity)
	env.syncService = NewSyncQueueService(env.syncLog, 30)
	env.statsService = NewStatsService(env.projects, env.tasks, env.subtasks, env.timeLogs)
	env.settingsService = NewSettingsService(store, env.settings, env.activity, env.syncLog)
	env.userService = NewUserService(store, env.users, env.activity, env.syncLog)
	env.notifService = NewNotificationService(store, env.notifications, env.activity, env.syncLog)
	env.backupService = NewBackupService(store, env.projects, env.tasks, env.subtasks, env.blocks, env.comments, env.timeLogs, env.activity, env.notifications, env.users, env.settings)

	return env
}

func (e *testEnv) mustCreateProject(t *testing.T, name string) domain.Project {
	t.Helper()
	project, err := e.projectService.CreateProject(context.Background(), domain.CreateProjectInput{
		Name:  name,
		Phase: domain.PhaseProduction,
		Color: "#22c55e",
	})
	require.NoError(t, err)
	return project
}

func (e *testEnv) mustCreateTask(t *testing.T, projectID *int64, title string) domain.Task {
	t.Helper()
	task, err := e.taskService.CreateTask(context.Background(), domain.CreateTaskInput{
		ProjectID: projectID,
		Title:     title,
		Status:    domain.TaskStatusNotStarted,
		Priority:  domain.TaskPriorityMedium,
		Category:  domain.TaskCategoryProgramming,
	})
	require.NoError(t, err)
	return task
}

func (e *testEnv) mustCreateSubtask(t *testing.T, taskID int64, title string) domain.Subtask {
	t.Helper()
	subtask, err := e.subtaskService.CreateSubtask(context.Background(), domain.CreateSubtaskInput{
		TaskID: taskID,
		Title:  title,
	})
	require.NoError(t, err)
	return subtask
}

func (e *testEnv) countRows(t *testing.T, table string) int {
	t.Helper()
	var count int
	require.NoError(t, e.db.Get(&count, "SELECT COUNT(*) FROM "+table))
	return count
}
