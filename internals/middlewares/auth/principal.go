// internals/middlewares/auth/principal.go
package auth

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"eventku_backend/internals/constants"
)

// Principal = identitas hasil verifikasi token: role + identity + scoping attribute.
// Satu tipe untuk tiga varian role (bukan hierarki per-role seperti sumber lama):
//   - USER       → Email + UserID
//   - ADMIN      → Email + AdminID + EventID (event yang dia pegang)
//   - SUPERADMIN → Email saja
type Principal struct {
	Role    string
	Email   string
	UserID  uint
	AdminID uint
	EventID uint
}

const localsPrincipal = "principal"

var errBadClaims = errors.New("bad claims")

// claimShape memetakan role → field claim wajib (tabel varian, bukan if-else per role)
var claimShape = map[string][]string{
	constants.RoleUser:       {"uid"},
	constants.RoleAdmin:      {"id", "eventId"},
	constants.RoleSuperAdmin: {},
}

// ParseToken memverifikasi signature + expiry lalu membangun Principal dari claims.
// Semua kegagalan dikembalikan sebagai satu error generik — caller tidak boleh
// membocorkan tahap verifikasi mana yang gagal.
func ParseToken(raw, secret string) (*Principal, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, errBadClaims
	}

	role, _ := claims["role"].(string)
	required, known := claimShape[role]
	if !known {
		return nil, errBadClaims
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, errBadClaims
	}

	p := &Principal{Role: role, Email: email}
	for _, key := range required {
		id, err := numericClaim(claims, key)
		if err != nil {
			return nil, errBadClaims
		}
		switch key {
		case "uid":
			p.UserID = id
		case "id":
			p.AdminID = id
		case "eventId":
			p.EventID = id
		}
	}
	return p, nil
}

// numericClaim: angka di JSON claim selalu float64
func numericClaim(claims jwt.MapClaims, key string) (uint, error) {
	f, ok := claims[key].(float64)
	if !ok || f <= 0 {
		return 0, errBadClaims
	}
	return uint(f), nil
}

// GetPrincipal mengambil Principal yang disimpan AuthMiddleware.
func GetPrincipal(c *fiber.Ctx) (*Principal, bool) {
	p, ok := c.Locals(localsPrincipal).(*Principal)
	return p, ok
}
