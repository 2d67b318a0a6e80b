package models

import "time"

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsDone      bool       `gorm:"not null;default:false" json:"is_done"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName maps Task onto the todo_tasks table.
func (Task) TableName() string {
	return "todo_tasks"
}
