// dto/user_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"sekolahku_backend/internals/features/users/user/model"
)

/* ========== REQUEST DTOs ========== */

// CreateUserRequest: payload saat create. Role TIDAK bisa dikirim klien,
// user yang dibuat lewat jalur ini selalu admin.
type CreateUserRequest struct {
	Name     string  `json:"name"     form:"name"     validate:"required,min=5,max=60"`
	Username string  `json:"username" form:"username" validate:"required,min=5,max=60"`
	Email    *string `json:"email"    form:"email"    validate:"omitempty,email,max=60"`
	Password string  `json:"password" form:"password" validate:"omitempty,min=8,max=15"`
}

// UpdateUserRequest: email jadi wajib saat update; password kosong berarti
// password lama dipertahankan.
type UpdateUserRequest struct {
	Name     string `json:"name"     form:"name"     validate:"required,min=5,max=60"`
	Username string `json:"username" form:"username" validate:"required,min=5,max=60"`
	Email    string `json:"email"    form:"email"    validate:"required,email,max=60"`
	Password string `json:"password" form:"password" validate:"omitempty,min=8,max=15"`
}

// DeleteUserRequest: konfirmasi destruktif. user_id di body harus sama
// dengan id di path.
type DeleteUserRequest struct {
	UserID uint `json:"user_id" form:"user_id" validate:"required"`
}

/* ========== RESPONSE DTO ========== */

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	Role      string    `json:"role"`
	RoleID    int       `json:"role_id"`
	IsActive  bool      `json:"is_active"`
	NameLink  string    `json:"name_link"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(m *model.UserModel, baseURL string) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:        m.ID,
		Name:      m.Name,
		Username:  m.Username,
		Email:     m.Email,
		Role:      m.Role(),
		RoleID:    int(m.RoleID),
		IsActive:  m.IsActive,
		NameLink:  NameLink(baseURL, m.ID, m.Name),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NameLink menggabungkan nama dan URL detail user, dihitung saat dibaca,
// tidak pernah disimpan.
func NameLink(baseURL string, id uint, name string) string {
	url := fmt.Sprintf("%s/users/%d", strings.TrimRight(baseURL, "/"), id)
	return fmt.Sprintf(`<a href="%s" title="Lihat detail user %s">%s</a>`, url, name, name)
}

/* ========== NORMALISASI ========== */

// FallbackPassword dipakai bila admin membuat user tanpa password.
const FallbackPassword = "defaultpassword"

// NormalizeName menyeragamkan nama user menjadi huruf besar semua
// (ucwords di atas hasil uppercase).
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
