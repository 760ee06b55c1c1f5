// internals/features/school/class_names/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctrl "sekolahku_backend/internals/features/school/class_names/controller"
)

func ClassNameAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := classctrl.NewClassNameController(db)

	classNames := admin.Group("/class-names")
	classNames.Get("/", h.ListClassNames)
	classNames.Post("/", h.CreateClassName)
	classNames.Patch("/:id", h.UpdateClassName)
	classNames.Delete("/:id", h.DeleteClassName)
}
