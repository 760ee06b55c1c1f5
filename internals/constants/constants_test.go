package constants

import "testing"

func TestRoleLabels(t *testing.T) {
	cases := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "Admin"},
		{RoleTeacher, "Teacher"},
		{RoleStudent, "Student"},
		{Role(0), ""},
		{Role(9), ""},
	}
	for _, tc := range cases {
		if got := tc.role.Label(); got != tc.want {
			t.Errorf("Role(%d).Label() = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleTeacher, RoleStudent} {
		if !r.IsValid() {
			t.Errorf("Role(%d) harus valid", r)
		}
	}
	for _, r := range []Role{0, 4, 99} {
		if r.IsValid() {
			t.Errorf("Role(%d) tidak boleh valid", r)
		}
	}
}

func TestGenderLabels(t *testing.T) {
	if GenderLabel(GenderMale) != "Laki-laki" || GenderLabel(GenderFemale) != "Perempuan" {
		t.Error("label gender salah")
	}
	if IsValidGender(2) {
		t.Error("gender 2 tidak boleh valid")
	}
}

func TestReligionLabels(t *testing.T) {
	if ReligionLabel(ReligionIslam) != "Islam" {
		t.Error("label agama 1 salah")
	}
	if ReligionLabel(ReligionOther) != "Lainnya" {
		t.Error("label agama 99 salah")
	}
	if IsValidReligion(7) {
		t.Error("agama 7 tidak boleh valid")
	}
	if !IsValidReligion(99) {
		t.Error("agama 99 harus valid")
	}
}
