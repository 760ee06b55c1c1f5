package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"sekolahku_backend/internals/constants"
)

func TestLoginPassword(t *testing.T) {
	cases := []struct {
		dob  string
		want string
	}{
		{"1989-09-09", "19890909"},
		{"2010-01-31", "20100131"},
		{"2005-12-01", "20051201"},
	}
	for _, tc := range cases {
		if got := LoginPassword(tc.dob); got != tc.want {
			t.Errorf("LoginPassword(%q) = %q, want %q", tc.dob, got, tc.want)
		}
	}
}

func TestNewLoginForStudent(t *testing.T) {
	email := "budi@example.com"
	login, err := NewLoginForStudent("Budi Santoso", "2024001", &email, "2010-05-17")
	if err != nil {
		t.Fatalf("NewLoginForStudent: %v", err)
	}

	if login.Name != "BUDI SANTOSO" {
		t.Errorf("Name = %q, want %q", login.Name, "BUDI SANTOSO")
	}
	if login.Username != "2024001" {
		t.Errorf("Username = %q, want nis", login.Username)
	}
	if login.Email == nil || *login.Email != email {
		t.Errorf("Email = %v, want %q", login.Email, email)
	}
	if login.RoleID != constants.RoleStudent {
		t.Errorf("RoleID = %d, want RoleStudent", login.RoleID)
	}
	if !login.IsActive {
		t.Error("IsActive = false, want true")
	}
	if login.Password == "20100517" {
		t.Error("Password tersimpan plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(login.Password), []byte("20100517")); err != nil {
		t.Errorf("hash tidak cocok dengan dob tanpa strip: %v", err)
	}
}

func TestNewLoginForStudentNilEmail(t *testing.T) {
	login, err := NewLoginForStudent("Siti", "2024002", nil, "2011-02-03")
	if err != nil {
		t.Fatalf("NewLoginForStudent: %v", err)
	}
	if login.Email != nil {
		t.Errorf("Email = %v, want nil", login.Email)
	}
}

func TestSyncLoginWithStudent(t *testing.T) {
	login, err := NewLoginForStudent("Budi", "2024001", nil, "2010-05-17")
	if err != nil {
		t.Fatalf("NewLoginForStudent: %v", err)
	}
	oldHash := login.Password

	email := "baru@example.com"
	if err := SyncLoginWithStudent(login, "Budi Baru", "2024099", &email, "2010-06-18"); err != nil {
		t.Fatalf("SyncLoginWithStudent: %v", err)
	}

	if login.Name != "BUDI BARU" {
		t.Errorf("Name = %q, want %q", login.Name, "BUDI BARU")
	}
	if login.Username != "2024099" {
		t.Errorf("Username = %q, want nis baru", login.Username)
	}
	if login.Email == nil || *login.Email != email {
		t.Errorf("Email = %v, want %q", login.Email, email)
	}
	if login.Password == oldHash {
		t.Error("Password tidak diturunkan ulang")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(login.Password), []byte("20100618")); err != nil {
		t.Errorf("hash tidak cocok dengan dob baru: %v", err)
	}
}
