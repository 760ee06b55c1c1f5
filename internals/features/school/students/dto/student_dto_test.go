package dto

import (
	"strings"
	"testing"

	helper "sekolahku_backend/internals/helpers"
)

var validate = helper.NewValidator()

func intptr(v int) *int       { return &v }
func strptr(v string) *string { return &v }

func validStudentRequest() StudentRequest {
	return StudentRequest{
		ClassID:    1,
		NIS:        "2024001",
		Name:       "Budi Santoso",
		POB:        "Bandung",
		DOB:        "2010-05-17",
		GenderID:   intptr(0),
		ReligionID: intptr(1),
	}
}

func TestStudentRequestValid(t *testing.T) {
	req := validStudentRequest()
	if err := validate.Struct(req); err != nil {
		t.Fatalf("request valid ditolak: %v", err)
	}
}

func TestStudentRequestFieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*StudentRequest)
		field  string
	}{
		{"class_id kosong", func(r *StudentRequest) { r.ClassID = 0 }, "class_id"},
		{"nis kosong", func(r *StudentRequest) { r.NIS = "" }, "nis"},
		{"nis terlalu panjang", func(r *StudentRequest) { r.NIS = strings.Repeat("9", 61) }, "nis"},
		{"nama terlalu panjang", func(r *StudentRequest) { r.Name = strings.Repeat("a", 61) }, "name"},
		{"dob format salah", func(r *StudentRequest) { r.DOB = "17-05-2010" }, "dob"},
		{"dob bukan tanggal", func(r *StudentRequest) { r.DOB = "bukan tanggal" }, "dob"},
		{"gender di luar enum", func(r *StudentRequest) { r.GenderID = intptr(2) }, "gender_id"},
		{"gender nil", func(r *StudentRequest) { r.GenderID = nil }, "gender_id"},
		{"religion di luar enum", func(r *StudentRequest) { r.ReligionID = intptr(7) }, "religion_id"},
		{"phone terlalu panjang", func(r *StudentRequest) { r.Phone = strptr(strings.Repeat("0", 15)) }, "phone"},
		{"alamat terlalu panjang", func(r *StudentRequest) { r.Address = strptr(strings.Repeat("j", 256)) }, "address"},
		{"wali_phone terlalu panjang", func(r *StudentRequest) { r.WaliPhone = strptr(strings.Repeat("0", 15)) }, "wali_phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validStudentRequest()
			tc.mutate(&req)
			err := validate.Struct(req)
			if err == nil {
				t.Fatal("request tidak valid lolos validasi")
			}
			msgs := helper.ValidationMessages(err)
			if _, ok := msgs[tc.field]; !ok {
				t.Errorf("tidak ada pesan untuk field %q, dapat: %v", tc.field, msgs)
			}
		})
	}
}

func TestStudentRequestReligionNinetyNine(t *testing.T) {
	req := validStudentRequest()
	req.ReligionID = intptr(99)
	if err := validate.Struct(req); err != nil {
		t.Errorf("religion_id=99 harus diterima: %v", err)
	}
}

func TestStudentRequestEmailWithoutFormatCheck(t *testing.T) {
	// Email siswa hanya dibatasi panjang; bebas format.
	req := validStudentRequest()
	req.Email = strptr("bukan-email")
	if err := validate.Struct(req); err != nil {
		t.Errorf("email tanpa format harus diterima: %v", err)
	}
}

func TestStudentRequestToModelAndResponse(t *testing.T) {
	req := validStudentRequest()
	req.NISN = strptr("0051234567")
	req.Phone = strptr("081234567890")

	m := req.ToModel(7)
	if m.CreatorID != 7 {
		t.Errorf("CreatorID = %d, want 7", m.CreatorID)
	}
	if !m.IsActive {
		t.Error("siswa baru harus aktif")
	}

	resp := NewStudentResponse(m)
	if resp.DOB != "2010-05-17" {
		t.Errorf("DOB response = %q, want 2010-05-17", resp.DOB)
	}
	if resp.Gender != "Laki-laki" {
		t.Errorf("Gender label = %q, want Laki-laki", resp.Gender)
	}
	if resp.NISN == nil || *resp.NISN != "0051234567" {
		t.Errorf("NISN = %v", resp.NISN)
	}
}

func TestStudentRequestApplyToModel(t *testing.T) {
	req := validStudentRequest()
	m := req.ToModel(1)

	upd := validStudentRequest()
	upd.Name = "Budi Baru"
	upd.DOB = "2010-06-18"
	upd.NISN = strptr("0059999999")
	upd.ApplyToModel(m)

	if m.Name != "Budi Baru" {
		t.Errorf("Name = %q, want Budi Baru", m.Name)
	}
	if NewStudentResponse(m).DOB != "2010-06-18" {
		t.Errorf("DOB tidak ikut berubah")
	}
	if m.CreatorID != 1 {
		t.Error("CreatorID tidak boleh berubah saat update")
	}
}

func TestDeleteStudentRequestRequiresID(t *testing.T) {
	if err := validate.Struct(DeleteStudentRequest{}); err == nil {
		t.Error("student_id kosong harus ditolak")
	}
	if err := validate.Struct(DeleteStudentRequest{StudentID: 3}); err != nil {
		t.Errorf("student_id terisi harus lolos: %v", err)
	}
}
