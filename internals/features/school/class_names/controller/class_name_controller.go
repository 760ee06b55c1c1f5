package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/class_names/dto"
	"sekolahku_backend/internals/features/school/class_names/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassNameController struct {
	DB *gorm.DB
}

func NewClassNameController(db *gorm.DB) *ClassNameController {
	return &ClassNameController{DB: db}
}

var validate = helper.NewValidator()

/* ================= Handlers ================= */

// GET /class-names?q=&page=&action=&id=
// Form edit/hapus inline dari list view: action=edit|delete + id memuat
// record target sebagai include "editable".
func (ctl *ClassNameController) ListClassNames(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	q := strings.TrimSpace(c.Query("q"))

	tx := ctl.DB.Model(&model.ClassNameModel{})
	if q != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []model.ClassNameModel
	if err := tx.Order("id ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*dto.ClassNameResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewClassNameResponse(&rows[i]))
	}

	var includes any
	action := c.Query("action")
	if (action == "edit" || action == "delete") && c.Query("id") != "" {
		if id, err := strconv.ParseUint(c.Query("id"), 10, 64); err == nil {
			var editable model.ClassNameModel
			if err := ctl.DB.First(&editable, uint(id)).Error; err == nil {
				includes = fiber.Map{"editable": dto.NewClassNameResponse(&editable), "action": action}
			}
		}
	}

	return helper.JsonList(c, items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage), includes)
}

// POST /class-names
func (ctl *ClassNameController) CreateClassName(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassNameRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	m := req.ToModel(actorID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil ditambahkan", dto.NewClassNameResponse(m))
}

// PATCH /class-names/:id
// Konteks list (page, q) di-echo kembali supaya klien kembali ke posisi semula.
func (ctl *ClassNameController) UpdateClassName(c *fiber.Ctx) error {
	m, err := ctl.findClassName(c)
	if err != nil {
		return err
	}

	var req dto.UpdateClassNameRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	req.ApplyToModel(m)
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data kelas")
	}

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", fiber.Map{
		"class_name": dto.NewClassNameResponse(m),
		"page":       c.Query("page"),
		"q":          c.Query("q"),
	})
}

// DELETE /class-names/:id  (body: class_name_id harus sama dengan :id)
func (ctl *ClassNameController) DeleteClassName(c *fiber.Ctx) error {
	m, err := ctl.findClassName(c)
	if err != nil {
		return err
	}

	var req dto.DeleteClassNameRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	if req.ClassNameID != m.ID {
		return helper.JsonNoChange(c, "Konfirmasi tidak cocok, tidak ada yang dihapus")
	}

	if err := ctl.DB.Delete(&model.ClassNameModel{}, m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data kelas")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{
		"id":   m.ID,
		"page": c.Query("page"),
		"q":    c.Query("q"),
	})
}

/* ================= internal ================= */

func (ctl *ClassNameController) findClassName(c *fiber.Ctx) (*model.ClassNameModel, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.ClassNameModel
	if err := ctl.DB.First(&m, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}
