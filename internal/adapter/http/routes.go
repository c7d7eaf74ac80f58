package http

import (
	"github.com/islamdev99/GameDevTask/internal/adapter/http/handlers"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler the API mounts.
type Handlers struct {
	Health       *handlers.HealthHandler
	Project      *handlers.ProjectHandler
	Task         *handlers.TaskHandler
	Subtask      *handlers.SubtaskHandler
	Block        *handlers.BlockHandler
	Comment      *handlers.CommentHandler
	TimeLog      *handlers.TimeLogHandler
	Activity     *handlers.ActivityHandler
	Sync         *handlers.SyncHandler
	Stats        *handlers.StatsHandler
	Settings     *handlers.SettingsHandler
	User         *handlers.UserHandler
	Notification *handlers.NotificationHandler
	Backup       *handlers.BackupHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/projects", h.Project.ListProjects)
		api.POST("/projects", h.Project.CreateProject)
		api.GET("/projects/:id", h.Project.GetProject)
		api.PATCH("/projects/:id", h.Project.UpdateProject)
		api.DELETE("/projects/:id", h.Project.DeleteProject)
		api.GET("/projects/:id/tasks", h.Project.ListProjectTasks)

		api.GET("/tasks", h.Task.ListTasks)
		api.POST("/tasks", h.Task.CreateTask)
		api.GET("/tasks/:id", h.Task.GetTask)
		api.PATCH("/tasks/:id", h.Task.UpdateTask)
		api.DELETE("/tasks/:id", h.Task.DeleteTask)
		api.POST("/tasks/:id/complete", h.Task.CompleteTask)
		api.POST("/tasks/:id/reopen", h.Task.ReopenTask)
		api.POST("/tasks/:id/move", h.Task.MoveTask)

		api.GET("/tasks/:id/subtasks", h.Subtask.ListSubtasks)
		api.POST("/tasks/:id/subtasks", h.Subtask.CreateSubtask)
		api.PUT("/tasks/:id/subtasks/order", h.Subtask.ReorderSubtasks)
		api.PATCH("/subtasks/:id", h.Subtask.UpdateSubtask)
		api.POST("/subtasks/:id/toggle", h.Subtask.ToggleSubtask)
		api.DELETE("/subtasks/:id", h.Subtask.DeleteSubtask)

		api.GET("/blocks", h.Block.ListBlocks)
		api.POST("/blocks", h.Block.CreateBlock)
		api.PATCH("/blocks/:id", h.Block.UpdateBlock)
		api.DELETE("/blocks/:id", h.Block.DeleteBlock)

		api.GET("/tasks/:id/comments", h.Comment.ListComments)
		api.POST("/tasks/:id/comments", h.Comment.CreateComment)
		api.DELETE("/comments/:id", h.Comment.DeleteComment)

		api.GET("/tasks/:id/timelogs", h.TimeLog.ListTaskTimeLogs)
		api.POST("/tasks/:id/time/start", h.TimeLog.StartTimer)
		api.POST("/timelogs/:id/stop", h.TimeLog.StopTimer)

		api.GET("/activity", h.Activity.ListActivity)

		api.GET("/sync/pending", h.Sync.ListPending)
		api.POST("/sync/:id/synced", h.Sync.MarkSynced)
		api.POST("/sync/prune", h.Sync.PruneSynced)

		api.GET("/statistics", h.Stats.GetStatistics)

		api.GET("/settings", h.Settings.GetSettings)
		api.PATCH("/settings", h.Settings.UpdateSettings)

		api.GET("/users", h.User.ListUsers)
		api.POST("/users", h.User.CreateUser)
		api.GET("/users/:id", h.User.GetUser)

		api.GET("/notifications", h.Notification.ListNotifications)
		api.POST("/notifications/:id/read", h.Notification.MarkNotificationRead)
		api.DELETE("/notifications/:id", h.Notification.DeleteNotification)

		api.GET("/backup", h.Backup.ExportBackup)
		api.POST("/backup", h.Backup.ImportBackup)
	}
}
