// internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"eventku_backend/internals/configs"
	"eventku_backend/internals/constants"
	authModel "eventku_backend/internals/features/users/auth/model"
)

// TokenTTL: kontrak FE lama — token berlaku 7 hari sejak diterbitkan.
const TokenTTL = 7 * 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func sign(claims jwt.MapClaims) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	claims["exp"] = time.Now().Add(TokenTTL).Unix()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ========================== ISSUE PER ROLE ==========================
// Bentuk claim per varian (ikut kontrak token sumber lama):
//   USER       → {email, role, uid}
//   ADMIN      → {id, email, eventId, role}
//   SUPERADMIN → {email, role}

func IssueUserToken(u *authModel.UserModel) (string, error) {
	return sign(jwt.MapClaims{
		"email": u.Email,
		"role":  constants.RoleUser,
		"uid":   u.ID,
	})
}

func IssueAdminToken(a *authModel.AdminModel) (string, error) {
	return sign(jwt.MapClaims{
		"id":      a.ID,
		"email":   a.Email,
		"eventId": a.EventID,
		"role":    constants.RoleAdmin,
	})
}

func IssueSuperAdminToken(s *authModel.SuperAdminModel) (string, error) {
	return sign(jwt.MapClaims{
		"email": s.Email,
		"role":  constants.RoleSuperAdmin,
	})
}
