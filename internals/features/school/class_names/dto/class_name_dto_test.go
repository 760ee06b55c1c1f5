package dto

import (
	"strings"
	"testing"

	helper "sekolahku_backend/internals/helpers"
)

var validate = helper.NewValidator()

func intptr(v int) *int       { return &v }
func strptr(v string) *string { return &v }

func TestCreateClassNameRequestValidation(t *testing.T) {
	valid := CreateClassNameRequest{LevelID: intptr(1), Name: "VII A"}
	if err := validate.Struct(valid); err != nil {
		t.Fatalf("request valid ditolak: %v", err)
	}

	cases := []struct {
		name  string
		req   CreateClassNameRequest
		field string
	}{
		{"level nil", CreateClassNameRequest{Name: "VII A"}, "level_id"},
		{"level negatif", CreateClassNameRequest{LevelID: intptr(-1), Name: "VII A"}, "level_id"},
		{"nama kosong", CreateClassNameRequest{LevelID: intptr(1)}, "name"},
		{"nama terlalu panjang", CreateClassNameRequest{LevelID: intptr(1), Name: strings.Repeat("a", 61)}, "name"},
		{"deskripsi terlalu panjang", CreateClassNameRequest{LevelID: intptr(1), Name: "VII A", Description: strptr(strings.Repeat("d", 256))}, "description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.req)
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

func TestClassNameToModelAndApply(t *testing.T) {
	req := CreateClassNameRequest{LevelID: intptr(7), Name: "VII A", Description: strptr("Kelas unggulan")}
	m := req.ToModel(3)
	if m.LevelID != 7 || m.Name != "VII A" || m.CreatorID != 3 {
		t.Errorf("ToModel = %+v", m)
	}

	upd := UpdateClassNameRequest{LevelID: intptr(8), Name: "VIII A"}
	upd.ApplyToModel(m)
	if m.LevelID != 8 || m.Name != "VIII A" {
		t.Errorf("ApplyToModel = %+v", m)
	}
	if m.Description != nil {
		t.Error("deskripsi kosong harus menghapus nilai lama")
	}
	if m.CreatorID != 3 {
		t.Error("CreatorID tidak boleh berubah saat update")
	}
}
