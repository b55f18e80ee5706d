package models

type TaskList struct {
	BaseModel

	UserID      uint   `gorm:"not null;index"` // Foreign key to the owning User
	Name        string `gorm:"not null"`
	Description string
	Color       string // Hex color like "#3498db", optional

	// Relationships
	User  User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks []Task `gorm:"foreignKey:TaskListID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
