// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"eventku_backend/internals/configs"
	helper "eventku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer token dan menyimpan Principal ke Locals.
// Pesan error sengaja seragam: jangan bocorkan apakah signature, exp,
// atau header yang bermasalah.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		principal, err := ParseToken(tokenString, secretKey)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
		}

		c.Locals(localsPrincipal, principal)
		c.Locals("userRole", principal.Role)
		return c.Next()
	}
}
