package seeds

import (
	"log"

	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/class_names/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Run migrasi skema lalu seed data awal.
func Run(db *gorm.DB) {
	log.Println("📥 Menjalankan migrasi & seed...")

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassNameModel{},
		&studentModel.StudentModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}

	SeedAdminUser(db)

	log.Println("✅ Seed selesai")
}
