// file: internals/helpers/json_response.go
package helper

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Flash severity (one-shot status)
=================================*/

// Severity mengikuti level flash message di UI:
// success (create), information (update), error (delete), warning (penolakan).
const (
	SeveritySuccess     = "success"
	SeverityInformation = "information"
	SeverityError       = "error"
	SeverityWarning     = "warning"
)

/* ===============================
   Pagination type & defaults
=================================*/

// PerPage tetap 25 untuk semua list view.
const DefaultPerPage = 25

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"` // jumlah item di halaman ini
}

/* ===============================
   Paging resolver (query → page/offset)
=================================*/

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging membaca ?page= dan normalisasi. PerPage tidak bisa diubah klien.
func ResolvePaging(c *fiber.Ctx) Paging {
	return ResolvePagingWith(strings.TrimSpace(c.Query("page", "1")))
}

func ResolvePagingWith(pageStr string) Paging {
	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	return Paging{
		Page:    page,
		PerPage: DefaultPerPage,
		Offset:  (page - 1) * DefaultPerPage,
		Limit:   DefaultPerPage,
	}
}

func BuildPaginationFromPage(total int64, page, perPage int) Pagination {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage)) // ceil
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func lenOf(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len()
	default:
		return 0
	}
}

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusConflict:
		return "CONFLICT"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonValidationError: khusus error validasi (422), field-scoped,
// tidak ada state yang berubah.
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success:   false,
		Message:   "validation failed",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fieldErrors,
	})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonList: list dengan pagination. includes boleh nil (mis. editable record,
// dropdown kelas, konteks page/q).
func JsonList(c *fiber.Ctx, data any, pagination Pagination, includes any) error {
	pagination.Count = lenOf(data)
	body := fiber.Map{
		"success":    true,
		"message":    "ok",
		"data":       data,
		"pagination": pagination,
	}
	if includes != nil {
		body["includes"] = includes
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonOK: response sukses generic (GET detail dsb), tanpa flash.
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func flash(c *fiber.Ctx, status int, message, severity string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success":  true,
		"message":  message,
		"severity": severity,
		"data":     data,
	})
}

// JsonSuccess: sukses non-create dengan flash success (mis. toggle aktif)
func JsonSuccess(c *fiber.Ctx, message string, data any) error {
	return flash(c, fiber.StatusOK, message, SeveritySuccess, data)
}

// JsonCreated: sukses create (POST) → flash success
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return flash(c, fiber.StatusCreated, message, SeveritySuccess, data)
}

// JsonUpdated: sukses update (PATCH) → flash information
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return flash(c, fiber.StatusOK, message, SeverityInformation, data)
}

// JsonDeleted: sukses delete → flash error (mengikuti warna flash di UI lama)
func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return flash(c, fiber.StatusOK, message, SeverityError, data)
}

// JsonWarning: penolakan non-fatal (mis. self-delete) → flash warning, no-op
func JsonWarning(c *fiber.Ctx, message string) error {
	return flash(c, fiber.StatusOK, message, SeverityWarning, nil)
}

// JsonNoChange: guarded no-op (konfirmasi id tidak cocok) → kembali ke view sebelumnya
func JsonNoChange(c *fiber.Ctx, message string) error {
	return flash(c, fiber.StatusOK, message, SeverityInformation, nil)
}

// JsonRefused: penolakan non-fatal dengan flash error (mis. self-suspend), no-op
func JsonRefused(c *fiber.Ctx, message string) error {
	return flash(c, fiber.StatusOK, message, SeverityError, nil)
}
