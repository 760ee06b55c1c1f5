package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/class_names/model"
	"sekolahku_backend/internals/features/school/students/dto"
	"sekolahku_backend/internals/features/school/students/model"
	"sekolahku_backend/internals/features/school/students/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = helper.NewValidator()

/* ================= Handlers ================= */

// GET /students?q=&page=
func (ctl *StudentController) ListStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	q := strings.TrimSpace(c.Query("q"))

	tx := ctl.DB.Model(&model.StudentModel{})
	if q != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []model.StudentModel
	if err := tx.Order("id ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*dto.StudentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewStudentResponse(&rows[i]))
	}
	return helper.JsonList(c, items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage), nil)
}

// GET /students/create
// Data form create: dropdown kelas diurutkan level lalu nama.
func (ctl *StudentController) CreateForm(c *fiber.Ctx) error {
	classes, err := ctl.classOptions()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}
	return helper.JsonOK(c, "Data diterima", fiber.Map{"classes": classes})
}

// GET /students/:id
func (ctl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	m, err := ctl.findStudent(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Data diterima", dto.NewStudentResponse(m))
}

// GET /students/:id/edit
func (ctl *StudentController) EditStudent(c *fiber.Ctx) error {
	m, err := ctl.findStudent(c)
	if err != nil {
		return err
	}
	classes, err := ctl.classOptions()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}
	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"student": dto.NewStudentResponse(m),
		"classes": classes,
	})
}

// POST /students
// Membuat siswa: valid → akun login + baris siswa lahir dalam SATU transaksi.
func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	if fieldErrs, err := ctl.checkStudentRules(&req, 0); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek data siswa")
	} else if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m, err := service.CreateWithLogin(ctl.DB, &req, actorID)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, uniqueFieldError(helper.UniqueConstraint(err)))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", dto.NewStudentResponse(m))
}

// PATCH /students/:id
func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	m, err := ctl.findStudent(c)
	if err != nil {
		return err
	}

	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	if fieldErrs, err := ctl.checkStudentRules(&req, m.ID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek data siswa")
	} else if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if err := service.UpdateWithLogin(ctl.DB, m, &req); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, uniqueFieldError(helper.UniqueConstraint(err)))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}

	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", dto.NewStudentResponse(m))
}

// DELETE /students/:id  (body: student_id harus sama dengan :id)
func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	m, err := ctl.findStudent(c)
	if err != nil {
		return err
	}

	var req dto.DeleteStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	if req.StudentID != m.ID {
		return helper.JsonNoChange(c, "Konfirmasi tidak cocok, tidak ada yang dihapus")
	}

	if err := service.DeleteWithLogin(ctl.DB, m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"id": m.ID})
}

/* ================= internal ================= */

func (ctl *StudentController) findStudent(c *fiber.Ctx) (*model.StudentModel, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.StudentModel
	if err := ctl.DB.First(&m, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

// checkStudentRules: aturan yang butuh store. class_id harus ada, nis dan nisn
// unik. Saat update, pengecualian SELALU per record id (bukan per nilai).
func (ctl *StudentController) checkStudentRules(req *dto.StudentRequest, excludeID uint) (map[string][]string, error) {
	fieldErrs := map[string][]string{}

	var cnt int64
	if err := ctl.DB.Model(&classModel.ClassNameModel{}).
		Where("id = ?", req.ClassID).Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt == 0 {
		fieldErrs["class_id"] = append(fieldErrs["class_id"], "Kelas tidak ditemukan.")
	}

	tx := ctl.DB.Model(&model.StudentModel{}).Where("nis = ?", req.NIS)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt > 0 {
		fieldErrs["nis"] = append(fieldErrs["nis"], "NIS sudah terdaftar.")
	}

	if req.NISN != nil && *req.NISN != "" {
		tx = ctl.DB.Model(&model.StudentModel{}).Where("nisn = ?", *req.NISN)
		if excludeID != 0 {
			tx = tx.Where("id <> ?", excludeID)
		}
		if err := tx.Count(&cnt).Error; err != nil {
			return nil, err
		}
		if cnt > 0 {
			fieldErrs["nisn"] = append(fieldErrs["nisn"], "NISN sudah terdaftar.")
		}
	}

	return fieldErrs, nil
}

// uniqueFieldError menunjuk field yang benar dari nama constraint 23505.
// Transaksi siswa menulis dua tabel: pelanggaran bisa datang dari students
// maupun dari akun login di users (username akun login = nis).
func uniqueFieldError(constraint string) map[string][]string {
	switch constraint {
	case "idx_students_nisn":
		return map[string][]string{"nisn": {"NISN sudah terdaftar."}}
	case "idx_users_username":
		return map[string][]string{"nis": {"NIS sudah dipakai sebagai username akun login."}}
	case "idx_users_email":
		return map[string][]string{"email": {"Email sudah dipakai akun login lain."}}
	default:
		return map[string][]string{"nis": {"NIS sudah terdaftar."}}
	}
}

func (ctl *StudentController) classOptions() ([]classModel.ClassNameModel, error) {
	var classes []classModel.ClassNameModel
	err := ctl.DB.Order("level_id ASC").Order("name ASC").Find(&classes).Error
	return classes, err
}
