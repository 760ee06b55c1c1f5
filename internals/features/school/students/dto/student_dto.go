// dto/student_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/students/model"
)

// DOBLayout: tanggal lahir selalu YYYY-MM-DD.
const DOBLayout = "2006-01-02"

/* ========== REQUEST DTOs ========== */

// StudentRequest dipakai untuk create dan update; aturan field keduanya sama.
// Cek unik nis/nisn dan keberadaan class_id dilakukan terpisah di controller
// karena butuh akses store.
type StudentRequest struct {
	ClassID    uint   `json:"class_id"    form:"class_id"    validate:"required"`
	NIS        string `json:"nis"         form:"nis"         validate:"required,max=60"`
	NISN       *string `json:"nisn"       form:"nisn"        validate:"omitempty,max=60"`
	Name       string `json:"name"        form:"name"        validate:"required,max=60"`
	POB        string `json:"pob"         form:"pob"         validate:"required,max=60"`
	DOB        string `json:"dob"         form:"dob"         validate:"required,datetime=2006-01-02"`
	GenderID   *int   `json:"gender_id"   form:"gender_id"   validate:"required,oneof=0 1"`
	ReligionID *int   `json:"religion_id" form:"religion_id" validate:"required,oneof=1 2 3 4 5 6 99"`

	Phone   *string `json:"phone"   form:"phone"   validate:"omitempty,max=14"`
	Email   *string `json:"email"   form:"email"   validate:"omitempty,max=60"`
	Address *string `json:"address" form:"address" validate:"omitempty,max=255"`

	FatherName   *string `json:"father_name"   form:"father_name"   validate:"omitempty,max=60"`
	FatherPhone  *string `json:"father_phone"  form:"father_phone"  validate:"omitempty,max=14"`
	MotherName   *string `json:"mother_name"   form:"mother_name"   validate:"omitempty,max=60"`
	MotherPhone  *string `json:"mother_phone"  form:"mother_phone"  validate:"omitempty,max=14"`
	WaliName     *string `json:"wali_name"     form:"wali_name"     validate:"omitempty,max=60"`
	WaliRelation *string `json:"wali_relation" form:"wali_relation" validate:"omitempty,max=60"`
	WaliPhone    *string `json:"wali_phone"    form:"wali_phone"    validate:"omitempty,max=14"`
}

// DeleteStudentRequest: student_id di body harus sama dengan id di path.
type DeleteStudentRequest struct {
	StudentID uint `json:"student_id" form:"student_id" validate:"required"`
}

/* ========== RESPONSE DTO ========== */

type StudentResponse struct {
	ID         uint   `json:"id"`
	ClassID    uint   `json:"class_id"`
	NIS        string `json:"nis"`
	NISN       *string `json:"nisn,omitempty"`
	Name       string `json:"name"`
	POB        string `json:"pob"`
	DOB        string `json:"dob"`
	GenderID   int    `json:"gender_id"`
	Gender     string `json:"gender"`
	ReligionID int    `json:"religion_id"`
	Religion   string `json:"religion"`

	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`

	FatherName   *string `json:"father_name,omitempty"`
	FatherPhone  *string `json:"father_phone,omitempty"`
	MotherName   *string `json:"mother_name,omitempty"`
	MotherPhone  *string `json:"mother_phone,omitempty"`
	WaliName     *string `json:"wali_name,omitempty"`
	WaliRelation *string `json:"wali_relation,omitempty"`
	WaliPhone    *string `json:"wali_phone,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatorID uint      `json:"creator_id"`
	LoginID   uint      `json:"login_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		ID:           m.ID,
		ClassID:      m.ClassID,
		NIS:          m.NIS,
		NISN:         m.NISN,
		Name:         m.Name,
		POB:          m.POB,
		DOB:          time.Time(m.DOB).Format(DOBLayout),
		GenderID:     m.GenderID,
		Gender:       constants.GenderLabel(m.GenderID),
		ReligionID:   m.ReligionID,
		Religion:     constants.ReligionLabel(m.ReligionID),
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      m.Address,
		FatherName:   m.FatherName,
		FatherPhone:  m.FatherPhone,
		MotherName:   m.MotherName,
		MotherPhone:  m.MotherPhone,
		WaliName:     m.WaliName,
		WaliRelation: m.WaliRelation,
		WaliPhone:    m.WaliPhone,
		IsActive:     m.IsActive,
		CreatorID:    m.CreatorID,
		LoginID:      m.LoginID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

/* ========== HELPER: KONVERSI DTO -> MODEL ========== */

// ToModel: mapping StudentRequest -> StudentModel baru. login_id diisi service
// setelah akun login dibuat dalam transaksi yang sama.
func (r *StudentRequest) ToModel(creatorID uint) *model.StudentModel {
	dob, _ := time.Parse(DOBLayout, r.DOB) // sudah lolos validasi datetime
	return &model.StudentModel{
		ClassID:      r.ClassID,
		NIS:          r.NIS,
		NISN:         r.NISN,
		Name:         r.Name,
		POB:          r.POB,
		DOB:          datatypes.Date(dob),
		GenderID:     *r.GenderID,
		ReligionID:   *r.ReligionID,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		FatherName:   r.FatherName,
		FatherPhone:  r.FatherPhone,
		MotherName:   r.MotherName,
		MotherPhone:  r.MotherPhone,
		WaliName:     r.WaliName,
		WaliRelation: r.WaliRelation,
		WaliPhone:    r.WaliPhone,
		IsActive:     true,
		CreatorID:    creatorID,
	}
}

func (r *StudentRequest) ApplyToModel(m *model.StudentModel) {
	dob, _ := time.Parse(DOBLayout, r.DOB)
	m.ClassID = r.ClassID
	m.NIS = r.NIS
	m.NISN = r.NISN
	m.Name = r.Name
	m.POB = r.POB
	m.DOB = datatypes.Date(dob)
	m.GenderID = *r.GenderID
	m.ReligionID = *r.ReligionID
	m.Phone = r.Phone
	m.Email = r.Email
	m.Address = r.Address
	m.FatherName = r.FatherName
	m.FatherPhone = r.FatherPhone
	m.MotherName = r.MotherName
	m.MotherPhone = r.MotherPhone
	m.WaliName = r.WaliName
	m.WaliRelation = r.WaliRelation
	m.WaliPhone = r.WaliPhone
}
