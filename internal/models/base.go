package models

import "time"

// BaseModel is embedded by every persisted model. Deletes are hard
// deletes, so there is no DeletedAt column.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
