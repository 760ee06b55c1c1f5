// internals/features/users/user/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userctrl "sekolahku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: semua operasi user lewat grup admin (otorisasi di grup).
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := userctrl.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/", h.ListUsers)
	users.Post("/", h.CreateUser)
	users.Get("/create", h.CreateForm)
	users.Get("/:id", h.GetUserByID)
	users.Get("/:id/edit", h.EditUser)
	users.Patch("/:id", h.UpdateUser)
	users.Delete("/:id", h.DeleteUser)
	users.Post("/:id/activate", h.ActivateUser)
}
