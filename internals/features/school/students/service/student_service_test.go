package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/features/school/students/dto"
	"sekolahku_backend/internals/features/school/students/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// in-memory sqlite hidup per koneksi
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&userModel.UserModel{}, &model.StudentModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func intptr(v int) *int       { return &v }
func strptr(v string) *string { return &v }

func studentRequest(nis, name string) *dto.StudentRequest {
	return &dto.StudentRequest{
		ClassID:    1,
		NIS:        nis,
		Name:       name,
		POB:        "Bandung",
		DOB:        "2010-05-17",
		GenderID:   intptr(0),
		ReligionID: intptr(1),
	}
}

func TestCreateWithLoginCommitsBothRows(t *testing.T) {
	db := newTestDB(t)

	m, err := CreateWithLogin(db, studentRequest("2024001", "Budi Santoso"), 9)
	if err != nil {
		t.Fatalf("CreateWithLogin: %v", err)
	}
	if m.LoginID == 0 {
		t.Fatal("login_id kosong setelah create")
	}

	var login userModel.UserModel
	if err := db.First(&login, m.LoginID).Error; err != nil {
		t.Fatalf("akun login tidak ditemukan: %v", err)
	}
	if login.Username != "2024001" || login.Name != "BUDI SANTOSO" {
		t.Errorf("akun login = %q/%q", login.Username, login.Name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(login.Password), []byte("20100517")); err != nil {
		t.Errorf("password login tidak diturunkan dari dob: %v", err)
	}

	var cnt int64
	db.Model(&model.StudentModel{}).Count(&cnt)
	if cnt != 1 {
		t.Errorf("jumlah siswa = %d, want 1", cnt)
	}
}

func TestCreateWithLoginRollsBackOnStudentFailure(t *testing.T) {
	db := newTestDB(t)

	first := studentRequest("2024001", "Budi")
	first.NISN = strptr("0051234567")
	if _, err := CreateWithLogin(db, first, 9); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// nis berbeda: akun login berhasil dibuat di dalam transaksi,
	// lalu insert siswa gagal karena nisn duplikat
	second := studentRequest("2024002", "Siti")
	second.NISN = strptr("0051234567")
	if _, err := CreateWithLogin(db, second, 9); err == nil {
		t.Fatal("nisn duplikat harus gagal")
	}

	var cnt int64
	db.Model(&userModel.UserModel{}).Where("username = ?", "2024002").Count(&cnt)
	if cnt != 0 {
		t.Error("akun login ikut tersimpan padahal insert siswa gagal")
	}
	db.Model(&model.StudentModel{}).Count(&cnt)
	if cnt != 1 {
		t.Errorf("jumlah siswa = %d, want 1", cnt)
	}
}

func TestUpdateWithLoginRollsBackOnStudentFailure(t *testing.T) {
	db := newTestDB(t)

	reqA := studentRequest("2024001", "Budi")
	reqA.NISN = strptr("0051234567")
	if _, err := CreateWithLogin(db, reqA, 9); err != nil {
		t.Fatalf("seed A: %v", err)
	}
	b, err := CreateWithLogin(db, studentRequest("2024002", "Siti"), 9)
	if err != nil {
		t.Fatalf("seed B: %v", err)
	}

	// akun login B sudah di-sync ke nis baru di dalam transaksi
	// sebelum save siswa gagal karena nisn milik A
	upd := studentRequest("2024099", "Siti Baru")
	upd.NISN = strptr("0051234567")
	if err := UpdateWithLogin(db, b, upd); err == nil {
		t.Fatal("update dengan nisn milik siswa lain harus gagal")
	}

	var login userModel.UserModel
	if err := db.First(&login, b.LoginID).Error; err != nil {
		t.Fatalf("akun login B hilang: %v", err)
	}
	if login.Username != "2024002" {
		t.Errorf("username login = %q, harus tetap %q setelah rollback", login.Username, "2024002")
	}
	if login.Name != "SITI" {
		t.Errorf("nama login = %q, harus tetap %q setelah rollback", login.Name, "SITI")
	}
}

func TestDeleteWithLoginRemovesBothRows(t *testing.T) {
	db := newTestDB(t)

	m, err := CreateWithLogin(db, studentRequest("2024001", "Budi"), 9)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := DeleteWithLogin(db, m); err != nil {
		t.Fatalf("DeleteWithLogin: %v", err)
	}

	var cnt int64
	db.Model(&model.StudentModel{}).Count(&cnt)
	if cnt != 0 {
		t.Error("siswa masih ada setelah delete")
	}
	db.Model(&userModel.UserModel{}).Count(&cnt)
	if cnt != 0 {
		t.Error("akun login masih ada setelah delete")
	}
}
