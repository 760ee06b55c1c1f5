package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	userRoute "sekolahku_backend/internals/features/users/user/route"
	classNameRoute "sekolahku_backend/internals/features/school/class_names/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes merangkai seluruh endpoint aplikasi.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("back office"), constants.RoleAdmin),
	)

	userRoute.UserAdminRoutes(admin, db)
	classNameRoute.ClassNameAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
}
