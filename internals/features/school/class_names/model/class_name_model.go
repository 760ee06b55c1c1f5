package model

import "time"

// ClassNameModel merepresentasikan tabel class_names (rombongan belajar).
type ClassNameModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LevelID     uint      `gorm:"not null" json:"level_id"`
	Name        string    `gorm:"size:60;not null" json:"name"`
	Description *string   `gorm:"size:255" json:"description,omitempty"`
	CreatorID   uint      `gorm:"not null" json:"creator_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClassNameModel) TableName() string {
	return "class_names"
}
