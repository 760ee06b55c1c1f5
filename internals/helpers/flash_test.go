package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type flashBody struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

func doFlash(t *testing.T, h fiber.Handler) (int, flashBody) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body flashBody
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return resp.StatusCode, body
}

func TestFlashSeverityMapping(t *testing.T) {
	cases := []struct {
		name         string
		handler      fiber.Handler
		wantStatus   int
		wantSeverity string
	}{
		{"created", func(c *fiber.Ctx) error { return JsonCreated(c, "dibuat", nil) }, 201, SeveritySuccess},
		{"updated", func(c *fiber.Ctx) error { return JsonUpdated(c, "diperbarui", nil) }, 200, SeverityInformation},
		{"deleted", func(c *fiber.Ctx) error { return JsonDeleted(c, "dihapus", nil) }, 200, SeverityError},
		{"success", func(c *fiber.Ctx) error { return JsonSuccess(c, "diaktifkan", nil) }, 200, SeveritySuccess},
		{"warning", func(c *fiber.Ctx) error { return JsonWarning(c, "tidak bisa hapus diri sendiri") }, 200, SeverityWarning},
		{"no change", func(c *fiber.Ctx) error { return JsonNoChange(c, "konfirmasi tidak cocok") }, 200, SeverityInformation},
		{"refused", func(c *fiber.Ctx) error { return JsonRefused(c, "tidak bisa menangguhkan diri sendiri") }, 200, SeverityError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doFlash(t, tc.handler)
			if status != tc.wantStatus {
				t.Errorf("status = %d, want %d", status, tc.wantStatus)
			}
			if !body.Success {
				t.Error("success = false, flash selalu success=true")
			}
			if body.Severity != tc.wantSeverity {
				t.Errorf("severity = %q, want %q", body.Severity, tc.wantSeverity)
			}
		})
	}
}

func TestJsonValidationErrorShape(t *testing.T) {
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return JsonValidationError(c, map[string][]string{"nis": {"NIS sudah terdaftar."}})
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
	var body struct {
		Success   bool                `json:"success"`
		ErrorCode string              `json:"error_code"`
		Errors    map[string][]string `json:"errors"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Error("success harus false")
	}
	if body.ErrorCode != "VALIDATION_ERROR" {
		t.Errorf("error_code = %q", body.ErrorCode)
	}
	if len(body.Errors["nis"]) != 1 {
		t.Errorf("errors = %v", body.Errors)
	}
}
