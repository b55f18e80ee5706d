package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	BaseModel

	TaskListID  uint   `gorm:"not null;index"` // Foreign key to the parent TaskList
	Title       string `gorm:"not null"`
	Description string
	Completed   bool       `gorm:"not null;default:false;index"`
	Priority    string     `gorm:"not null;default:'medium';index"` // "low", "medium" or "high"
	DueDate     *time.Time `gorm:"index"`

	// Relationships
	TaskList TaskList  `gorm:"foreignKey:TaskListID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tags     []TaskTag `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// TaskTag is one tag attached to a task. Tags live in their own table so
// overlap filters stay plain SQL; Position preserves the order tags were
// submitted in.
type TaskTag struct {
	ID       uint   `gorm:"primarykey"`
	TaskID   uint   `gorm:"not null;index"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"not null;index"`
}
