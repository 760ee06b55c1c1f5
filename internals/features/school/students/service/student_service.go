// internals/features/school/students/service/student_service.go
package service

import (
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/students/dto"
	"sekolahku_backend/internals/features/school/students/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Lifecycle siswa + akun login. Semua operasi di sini all-or-nothing:
// pembaca tidak boleh pernah melihat siswa tanpa login atau sebaliknya.

// CreateWithLogin membuat akun login lalu baris siswa dalam satu transaksi.
func CreateWithLogin(db *gorm.DB, req *dto.StudentRequest, actorID uint) (*model.StudentModel, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	login, err := NewLoginForStudent(req.Name, req.NIS, req.Email, req.DOB)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Create(login).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	m := req.ToModel(actorID)
	m.LoginID = login.ID
	if err := tx.Create(m).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	m.Login = login
	return m, nil
}

// UpdateWithLogin memperbarui baris siswa dan akun login-nya bersamaan.
func UpdateWithLogin(db *gorm.DB, m *model.StudentModel, req *dto.StudentRequest) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var login userModel.UserModel
	if err := tx.First(&login, m.LoginID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := SyncLoginWithStudent(&login, req.Name, req.NIS, req.Email, req.DOB); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Save(&login).Error; err != nil {
		tx.Rollback()
		return err
	}

	req.ApplyToModel(m)
	if err := tx.Save(m).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	m.Login = &login
	return nil
}

// DeleteWithLogin menghapus baris siswa dan akun login-nya bersamaan.
func DeleteWithLogin(db *gorm.DB, m *model.StudentModel) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Delete(&model.StudentModel{}, m.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&userModel.UserModel{}, m.LoginID).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
