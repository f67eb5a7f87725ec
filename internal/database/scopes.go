package database

import "gorm.io/gorm"

// InWorkspace restricts a query on the given table to one workspace.
func InWorkspace(table, workspaceCode string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".workspace_code = ?", workspaceCode)
	}
}

// ByDueDate orders tasks by due date, breaking ties by insertion order.
func ByDueDate(db *gorm.DB) *gorm.DB {
	return db.Order("tasks.due_date ASC").Order("tasks.id ASC")
}
