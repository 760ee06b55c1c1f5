package model

import (
	"time"

	"sekolahku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database.
// Password selalu berisi hash bcrypt, tidak pernah plaintext.
type UserModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:60;not null" json:"name"`
	Username  string         `gorm:"size:60;not null;uniqueIndex" json:"username"`
	Email     *string        `gorm:"size:60;uniqueIndex" json:"email,omitempty"`
	Password  string         `gorm:"not null" json:"-"`
	RoleID    constants.Role `gorm:"not null" json:"role_id"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// Role adalah label tampilan dari role_id, dihitung saat dibaca.
func (u *UserModel) Role() string {
	return u.RoleID.Label()
}
