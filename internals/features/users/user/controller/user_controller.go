package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/users/user/dto"
	"sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// single validator instance for this package
var validate = helper.NewValidator()

/* ================= Handlers ================= */

// GET /users?q=&page=
func (ctl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	q := strings.TrimSpace(c.Query("q"))

	tx := ctl.DB.Model(&model.UserModel{})
	if q != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []model.UserModel
	if err := tx.Order("id ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*dto.UserResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewUserResponse(&rows[i], configs.AppURL))
	}
	return helper.JsonList(c, items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage), nil)
}

// GET /users/create
// Data form create: role tidak bisa dipilih, selalu admin.
func (ctl *UserController) CreateForm(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"role": constants.RoleAdmin.Label(),
	})
}

// GET /users/:id
func (ctl *UserController) GetUserByID(c *fiber.Ctx) error {
	m, err := ctl.findUser(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Data diterima", dto.NewUserResponse(m, configs.AppURL))
}

// GET /users/:id/edit
func (ctl *UserController) EditUser(c *fiber.Ctx) error {
	m, err := ctl.findUser(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Data diterima", dto.NewUserResponse(m, configs.AppURL))
}

// POST /users
func (ctl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	// cek unik username / email
	if taken, err := ctl.usernameTaken(req.Username, 0); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek username")
	} else if taken {
		return helper.JsonValidationError(c, map[string][]string{"username": {"Username sudah dipakai."}})
	}
	if req.Email != nil {
		if taken, err := ctl.emailTaken(*req.Email, 0); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek email")
		} else if taken {
			return helper.JsonValidationError(c, map[string][]string{"email": {"Email sudah dipakai."}})
		}
	}

	// user baru lewat jalur back office selalu admin; tanpa password pakai fallback
	password := req.Password
	if password == "" {
		password = dto.FallbackPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	m := &model.UserModel{
		Name:     dto.NormalizeName(req.Name),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		RoleID:   constants.RoleAdmin,
		IsActive: true,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, uniqueFieldError(helper.UniqueConstraint(err)))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil ditambahkan", dto.NewUserResponse(m, configs.AppURL))
}

// PATCH /users/:id
func (ctl *UserController) UpdateUser(c *fiber.Ctx) error {
	m, err := ctl.findUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	if taken, err := ctl.usernameTaken(req.Username, m.ID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek username")
	} else if taken {
		return helper.JsonValidationError(c, map[string][]string{"username": {"Username sudah dipakai."}})
	}
	if taken, err := ctl.emailTaken(req.Email, m.ID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek email")
	} else if taken {
		return helper.JsonValidationError(c, map[string][]string{"email": {"Email sudah dipakai."}})
	}

	m.Name = dto.NormalizeName(req.Name)
	m.Username = req.Username
	m.Email = &req.Email
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
		}
		m.Password = string(hash)
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, uniqueFieldError(helper.UniqueConstraint(err)))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.NewUserResponse(m, configs.AppURL))
}

// DELETE /users/:id  (body: user_id harus sama dengan :id)
func (ctl *UserController) DeleteUser(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	m, err := ctl.findUser(c)
	if err != nil {
		return err
	}

	// user tidak boleh menghapus akunnya sendiri
	if actorID == m.ID {
		return helper.JsonWarning(c, "Anda tidak dapat menghapus akun sendiri")
	}

	var req dto.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	if req.UserID != m.ID {
		return helper.JsonNoChange(c, "Konfirmasi tidak cocok, tidak ada yang dihapus")
	}

	if err := ctl.DB.Delete(&model.UserModel{}, m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": m.ID})
}

// POST /users/:id/activate
func (ctl *UserController) ActivateUser(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	m, err := ctl.findUser(c)
	if err != nil {
		return err
	}

	// user tidak boleh menangguhkan akunnya sendiri
	if actorID == m.ID {
		return helper.JsonRefused(c, "Anda tidak dapat menangguhkan akun sendiri")
	}

	m.IsActive = !m.IsActive
	if err := ctl.DB.Model(&model.UserModel{}).Where("id = ?", m.ID).
		Update("is_active", m.IsActive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status user")
	}

	msg := "User berhasil diaktifkan"
	if !m.IsActive {
		msg = "User berhasil ditangguhkan"
	}
	return helper.JsonSuccess(c, msg, dto.NewUserResponse(m, configs.AppURL))
}

/* ================= internal ================= */

func (ctl *UserController) findUser(c *fiber.Ctx) (*model.UserModel, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.UserModel
	if err := ctl.DB.First(&m, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

// uniqueFieldError menunjuk field yang benar dari nama constraint 23505.
func uniqueFieldError(constraint string) map[string][]string {
	switch constraint {
	case "idx_users_email":
		return map[string][]string{"email": {"Email sudah dipakai."}}
	default:
		return map[string][]string{"username": {"Username sudah dipakai."}}
	}
}

func (ctl *UserController) usernameTaken(username string, excludeID uint) (bool, error) {
	var cnt int64
	tx := ctl.DB.Model(&model.UserModel{}).Where("username = ?", username)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (ctl *UserController) emailTaken(email string, excludeID uint) (bool, error) {
	var cnt int64
	tx := ctl.DB.Model(&model.UserModel{}).Where("email = ?", email)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
