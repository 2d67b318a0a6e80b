package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the secondary indexes on todo_tasks. PostgreSQL only:
// existence is checked through pg_indexes, so re-running is harmless.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"todo_tasks", "idx_todo_tasks_due_date", "due_date"},
		{"todo_tasks", "idx_todo_tasks_is_done", "is_done"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
