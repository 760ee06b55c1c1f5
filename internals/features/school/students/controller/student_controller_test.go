package controller

import "testing"

func TestUniqueFieldError(t *testing.T) {
	cases := []struct {
		constraint string
		field      string
	}{
		{"idx_students_nis", "nis"},
		{"idx_students_nisn", "nisn"},
		{"idx_users_username", "nis"},
		{"idx_users_email", "email"},
		{"", "nis"},
	}
	for _, tc := range cases {
		msgs := uniqueFieldError(tc.constraint)
		if _, ok := msgs[tc.field]; !ok {
			t.Errorf("constraint %q harus menunjuk field %q, dapat %v", tc.constraint, tc.field, msgs)
		}
		if len(msgs) != 1 {
			t.Errorf("constraint %q: satu pelanggaran satu field, dapat %v", tc.constraint, msgs)
		}
	}
}
