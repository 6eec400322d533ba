package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Bentuk respons mengikuti kontrak FE lama: selalu ada "message",
// field tambahan (authorization, userData, dst.) digabung lewat extra.

// ✅ Success Response tanpa custom code (default 200)
func JsonOK(c *fiber.Ctx, message string, extra fiber.Map) error {
	return JsonWithCode(c, fiber.StatusOK, message, extra)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func JsonWithCode(c *fiber.Ctx, code int, message string, extra fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(code).JSON(body)
}

// ✅ Error Response sederhana
func JsonError(c *fiber.Ctx, code int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(code).JSON(fiber.Map{"message": message})
}

// ✅ Khusus error validasi: message + daftar pelanggaran yang digabung
func JsonValidationError(c *fiber.Ctx, message string, violations []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"error":   strings.Join(violations, ", "),
	})
}
