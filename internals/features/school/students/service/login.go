// internals/features/school/students/service/login.go
package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"sekolahku_backend/internals/constants"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// LoginPassword menurunkan password awal akun siswa dari tanggal lahir:
// "1989-09-09" menjadi "19890909".
func LoginPassword(dob string) string {
	return strings.ReplaceAll(dob, "-", "")
}

// NewLoginForStudent membangun akun login untuk siswa baru:
// nama di-uppercase, username = nis, role = student, password = hash(dob tanpa strip).
func NewLoginForStudent(name, nis string, email *string, dob string) (*userModel.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(LoginPassword(dob)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &userModel.UserModel{
		Name:     strings.ToUpper(name),
		Username: nis,
		Email:    email,
		Password: string(hash),
		RoleID:   constants.RoleStudent,
		IsActive: true,
	}, nil
}

// SyncLoginWithStudent menyelaraskan akun login saat data siswa berubah:
// nama, username (= nis baru), email, dan password diturunkan ulang dari dob.
func SyncLoginWithStudent(login *userModel.UserModel, name, nis string, email *string, dob string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(LoginPassword(dob)), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	login.Name = strings.ToUpper(name)
	login.Username = nis
	login.Email = email
	login.Password = string(hash)
	return nil
}
