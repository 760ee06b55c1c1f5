package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// SeedAdminUser membuat akun admin awal jika belum ada.
// Kredensial diambil dari env ADMIN_USERNAME / ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB) {
	username := configs.GetEnv("ADMIN_USERNAME", "admin")
	password := configs.GetEnv("ADMIN_PASSWORD", "admin12345")

	var existing userModel.UserModel
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		log.Printf("ℹ️ User admin '%s' sudah ada, dilewati.", username)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Gagal hash password admin: %v", err)
		return
	}

	admin := userModel.UserModel{
		Name:     "ADMINISTRATOR",
		Username: username,
		Password: string(hashed),
		RoleID:   constants.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Gagal insert user admin: %v", err)
		return
	}
	log.Printf("✅ Berhasil insert user admin '%s'", username)
}
