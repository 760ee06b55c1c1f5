// dto/class_name_dto.go
package dto

import (
	"time"

	"sekolahku_backend/internals/features/school/class_names/model"
)

/* ========== REQUEST DTOs ========== */

type CreateClassNameRequest struct {
	LevelID     *int    `json:"level_id"    form:"level_id"    validate:"required,gte=0"`
	Name        string  `json:"name"        form:"name"        validate:"required,max=60"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=255"`
}

// UpdateClassNameRequest: aturan field sama dengan create, replace parsial
// untuk field yang dikirim.
type UpdateClassNameRequest struct {
	LevelID     *int    `json:"level_id"    form:"level_id"    validate:"required,gte=0"`
	Name        string  `json:"name"        form:"name"        validate:"required,max=60"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=255"`
}

// DeleteClassNameRequest: class_name_id di body harus sama dengan id di path.
type DeleteClassNameRequest struct {
	ClassNameID uint `json:"class_name_id" form:"class_name_id" validate:"required"`
}

/* ========== RESPONSE DTO ========== */

type ClassNameResponse struct {
	ID          uint      `json:"id"`
	LevelID     uint      `json:"level_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatorID   uint      `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewClassNameResponse(m *model.ClassNameModel) *ClassNameResponse {
	if m == nil {
		return nil
	}
	return &ClassNameResponse{
		ID:          m.ID,
		LevelID:     m.LevelID,
		Name:        m.Name,
		Description: m.Description,
		CreatorID:   m.CreatorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

/* ========== HELPER: KONVERSI DTO -> MODEL ========== */

func (r *CreateClassNameRequest) ToModel(creatorID uint) *model.ClassNameModel {
	return &model.ClassNameModel{
		LevelID:     uint(*r.LevelID),
		Name:        r.Name,
		Description: r.Description,
		CreatorID:   creatorID,
	}
}

func (r *UpdateClassNameRequest) ApplyToModel(m *model.ClassNameModel) {
	m.LevelID = uint(*r.LevelID)
	m.Name = r.Name
	m.Description = r.Description
}
