package model

import (
	"time"

	"gorm.io/datatypes"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

// StudentModel merepresentasikan tabel students.
// Setiap siswa MEMILIKI tepat satu akun login (users.id lewat login_id);
// keduanya dibuat, di-rename, dan dihapus bersama dalam satu transaksi.
// Akun login tidak boleh dimanipulasi langsung di luar lifecycle siswa.
type StudentModel struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ClassID    uint           `gorm:"not null" json:"class_id"`
	NIS        string         `gorm:"column:nis;size:60;not null;uniqueIndex" json:"nis"`
	NISN       *string        `gorm:"column:nisn;size:60;uniqueIndex" json:"nisn,omitempty"`
	Name       string         `gorm:"size:60;not null" json:"name"`
	POB        string         `gorm:"column:pob;size:60;not null" json:"pob"`
	DOB        datatypes.Date `gorm:"column:dob;not null" json:"dob"`
	GenderID   int            `gorm:"not null" json:"gender_id"`
	ReligionID int            `gorm:"not null" json:"religion_id"`

	Phone   *string `gorm:"size:14" json:"phone,omitempty"`
	Email   *string `gorm:"size:60" json:"email,omitempty"`
	Address *string `gorm:"size:255" json:"address,omitempty"`

	FatherName   *string `gorm:"size:60" json:"father_name,omitempty"`
	FatherPhone  *string `gorm:"size:14" json:"father_phone,omitempty"`
	MotherName   *string `gorm:"size:60" json:"mother_name,omitempty"`
	MotherPhone  *string `gorm:"size:14" json:"mother_phone,omitempty"`
	WaliName     *string `gorm:"size:60" json:"wali_name,omitempty"`
	WaliRelation *string `gorm:"size:60" json:"wali_relation,omitempty"`
	WaliPhone    *string `gorm:"size:14" json:"wali_phone,omitempty"`

	IsActive  bool `gorm:"not null;default:true" json:"is_active"`
	CreatorID uint `gorm:"not null" json:"creator_id"`
	LoginID   uint `gorm:"not null;uniqueIndex" json:"login_id"`

	Login *userModel.UserModel `gorm:"foreignKey:LoginID" json:"login,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
