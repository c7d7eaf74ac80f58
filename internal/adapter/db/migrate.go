package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type tableDef struct {
	name    string
	columns string
	indexes map[string]string
}

// %s in columns is the autoincrement primary key fragment, which is the
// one piece of DDL the two drivers disagree on.
var tables = []tableDef{
	{
		name: "projects",
		columns: `id %s,
name VARCHAR(255) NOT NULL,
description TEXT,
phase VARCHAR(32) NOT NULL,
color VARCHAR(32) NOT NULL,
deadline DATETIME,
progress INTEGER NOT NULL,
game_engine VARCHAR(255),
development_tools TEXT,
created_at DATETIME NOT NULL`,
	},
	{
		name: "tasks",
		columns: `id %s,
project_id BIGINT,
title VARCHAR(255) NOT NULL,
description TEXT,
status VARCHAR(32) NOT NULL,
priority VARCHAR(16) NOT NULL,
category VARCHAR(32) NOT NULL,
deadline DATETIME,
created_at DATETIME NOT NULL,
completed_at DATETIME,
parent_task_id BIGINT,
ord INTEGER NOT NULL,
block_id BIGINT,
assigned_to VARCHAR(64)`,
		indexes: map[string]string{
			"idx_tasks_project":  "project_id",
			"idx_tasks_status":   "status",
			"idx_tasks_category": "category",
			"idx_tasks_block":    "block_id",
		},
	},
	{
		name: "subtasks",
		columns: `id %s,
task_id BIGINT NOT NULL,
title VARCHAR(255) NOT NULL,
is_completed BOOLEAN NOT NULL,
ord INTEGER NOT NULL`,
		indexes: map[string]string{"idx_subtasks_task": "task_id"},
	},
	{
		name: "blocks",
		columns: `id %s,
name VARCHAR(255) NOT NULL,
color VARCHAR(32) NOT NULL,
ord INTEGER NOT NULL`,
	},
	{
		name: "comments",
		columns: `id %s,
task_id BIGINT NOT NULL,
author_id VARCHAR(64),
body TEXT NOT NULL,
created_at DATETIME NOT NULL`,
		indexes: map[string]string{"idx_comments_task": "task_id"},
	},
	{
		name: "time_logs",
		columns: `id %s,
task_id BIGINT NOT NULL,
started_at DATETIME NOT NULL,
ended_at DATETIME,
duration_seconds BIGINT NOT NULL,
description TEXT`,
		indexes: map[string]string{"idx_time_logs_task": "task_id"},
	},
	{
		name: "activity_log",
		columns: `id %s,
task_id BIGINT,
project_id BIGINT,
action VARCHAR(32) NOT NULL,
user_id VARCHAR(64),
details TEXT NOT NULL,
created_at DATETIME NOT NULL`,
		indexes: map[string]string{"idx_activity_created": "created_at"},
	},
	{
		name: "sync_log",
		columns: `id %s,
entity_type VARCHAR(32) NOT NULL,
entity_id VARCHAR(64) NOT NULL,
action VARCHAR(32) NOT NULL,
synced BOOLEAN NOT NULL,
data TEXT,
created_at DATETIME NOT NULL`,
		indexes: map[string]string{"idx_sync_synced": "synced"},
	},
	{
		name: "notifications",
		columns: `id %s,
title VARCHAR(255) NOT NULL,
body TEXT NOT NULL,
task_id BIGINT,
is_read BOOLEAN NOT NULL,
created_at DATETIME NOT NULL`,
	},
	{
		name: "settings",
		columns: `id BIGINT PRIMARY KEY,
theme VARCHAR(32) NOT NULL,
language VARCHAR(8) NOT NULL,
primary_color VARCHAR(32) NOT NULL,
notifications TEXT NOT NULL,
pomodoro TEXT NOT NULL`,
	},
	{
		name: "users",
		columns: `id VARCHAR(64) PRIMARY KEY,
name VARCHAR(255) NOT NULL,
email VARCHAR(255),
avatar VARCHAR(512)`,
	},
}

// Migrate creates the schema on first run. Statements are idempotent so
// a restart against an existing database is a no-op.
func Migrate(ctx context.Context, conn *sqlx.DB) error {
	driver := conn.DriverName()
	for _, stmt := range migrationStatements(driver) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func migrationStatements(driver string) []string {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "mysql" {
		pk = "BIGINT PRIMARY KEY AUTO_INCREMENT"
	}

	var stmts []string
	for _, t := range tables {
		columns := t.columns
		if strings.Contains(columns, "%s") {
			columns = fmt.Sprintf(columns, pk)
		}

		if driver == "mysql" {
			// mysql lacks CREATE INDEX IF NOT EXISTS; declare indexes
			// inline where IF NOT EXISTS on the table covers them.
			for name, col := range t.indexes {
				columns += fmt.Sprintf(",\nINDEX %s (%s)", name, col)
			}
			stmts = append(stmts, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)", t.name, columns))
			continue
		}

		stmts = append(stmts, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)", t.name, columns))
		for name, col := range t.indexes {
			stmts = append(stmts, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", name, t.name, col))
		}
	}
	return stmts
}
