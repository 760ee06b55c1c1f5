package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/students/controller"
)

// StudentAdminRoutes mendaftarkan endpoint pengelolaan siswa untuk admin.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	students := admin.Group("/students")
	students.Get("/", ctl.ListStudents)
	students.Post("/", ctl.CreateStudent)
	students.Get("/create", ctl.CreateForm)
	students.Get("/:id", ctl.GetStudentByID)
	students.Get("/:id/edit", ctl.EditStudent)
	students.Patch("/:id", ctl.UpdateStudent)
	students.Delete("/:id", ctl.DeleteStudent)
}
