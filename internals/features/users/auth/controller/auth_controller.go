package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/configs"
	"eventku_backend/internals/constants"
	authDTO "eventku_backend/internals/features/users/auth/dto"
	authModel "eventku_backend/internals/features/users/auth/model"
	authService "eventku_backend/internals/features/users/auth/service"
	helper "eventku_backend/internals/helpers"
	authMw "eventku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ==========================
   Varian role (tabel, bukan copy-paste per role)
========================== */

type roleVariant struct {
	find     func(db *gorm.DB, email string) (authModel.Account, error)
	issue    func(acc authModel.Account) (string, error)
	userData func(acc authModel.Account) fiber.Map
	okCode   int
	okMsg    string
}

var signinVariants = map[string]roleVariant{
	constants.RoleUser: {
		find: func(db *gorm.DB, email string) (authModel.Account, error) {
			var u authModel.UserModel
			err := db.Where("email = ?", email).First(&u).Error
			return &u, err
		},
		issue: func(acc authModel.Account) (string, error) {
			return authService.IssueUserToken(acc.(*authModel.UserModel))
		},
		userData: func(acc authModel.Account) fiber.Map {
			return fiber.Map{"email": acc.AccountEmail(), "name": acc.AccountName()}
		},
		okCode: fiber.StatusCreated,
		okMsg:  "User signin successfully",
	},
	constants.RoleAdmin: {
		find: func(db *gorm.DB, email string) (authModel.Account, error) {
			var a authModel.AdminModel
			err := db.Preload("Event").Where("email = ?", email).First(&a).Error
			return &a, err
		},
		issue: func(acc authModel.Account) (string, error) {
			return authService.IssueAdminToken(acc.(*authModel.AdminModel))
		},
		userData: func(acc authModel.Account) fiber.Map {
			a := acc.(*authModel.AdminModel)
			return fiber.Map{"email": a.Email, "name": a.Name, "event": a.Event.Event}
		},
		okCode: fiber.StatusCreated,
		okMsg:  "User signin successfully",
	},
	constants.RoleSuperAdmin: {
		find: func(db *gorm.DB, email string) (authModel.Account, error) {
			var s authModel.SuperAdminModel
			err := db.Where("email = ?", email).First(&s).Error
			return &s, err
		},
		issue: func(acc authModel.Account) (string, error) {
			return authService.IssueSuperAdminToken(acc.(*authModel.SuperAdminModel))
		},
		userData: func(acc authModel.Account) fiber.Map {
			return fiber.Map{"email": acc.AccountEmail(), "name": acc.AccountName()}
		},
		okCode: fiber.StatusOK,
		okMsg:  "Super Admin signin successfully",
	},
}

// signin: satu alur untuk tiga role.
// Email tidak ada → 404; digest mismatch → 403 dengan pesan seragam
// (jangan bocorkan sub-check mana yang gagal).
func (h *AuthController) signin(c *fiber.Ctx, role, email, password string) error {
	variant := signinVariants[role]

	acc, err := variant.find(h.DB, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account doesn't exist")
		}
		log.Println("[ERROR] signin lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := authService.CheckPasswordHash(acc.PasswordDigest(), password); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: Incorrect credential")
	}

	token, err := variant.issue(acc)
	if err != nil {
		log.Println("[ERROR] signin issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonWithCode(c, variant.okCode, variant.okMsg, fiber.Map{
		"authorization": "Bearer " + token,
		"userData":      variant.userData(acc),
	})
}

/* ==========================
   SIGNUP
========================== */

// POST /users/signup
func (h *AuthController) UserSignup(c *fiber.Ctx) error {
	var req authDTO.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return helper.JsonValidationError(c, "Please enter correct input", violations)
	}

	var existing authModel.UserModel
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] signup lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := authModel.UserModel{Name: req.Name, Email: req.Email, Password: hash}
	if err := h.DB.Create(&user).Error; err != nil {
		// pre-check bisa kalah race; constraint unik di DB yang jadi sumber kebenaran
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] signup create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	token, err := authService.IssueUserToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "User registered successfully", fiber.Map{
		"authorization": "Bearer " + token,
		"userData":      fiber.Map{"email": user.Email, "name": user.Name},
	})
}

// POST /sadmin/signup
func (h *AuthController) SuperAdminSignup(c *fiber.Ctx) error {
	var req authDTO.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return helper.JsonValidationError(c, "Please enter correct input", violations)
	}

	var existing authModel.SuperAdminModel
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] sadmin signup lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	sadmin := authModel.SuperAdminModel{Name: req.Name, Email: req.Email, Password: hash}
	if err := h.DB.Create(&sadmin).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] sadmin signup create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	token, err := authService.IssueSuperAdminToken(&sadmin)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonOK(c, "Super Admin registered successfully", fiber.Map{
		"authorization": "Bearer " + token,
		"user":          fiber.Map{"email": sadmin.Email, "name": sadmin.Name},
	})
}

/* ==========================
   SIGNIN
========================== */

// POST /users/signin
func (h *AuthController) UserSignin(c *fiber.Ctx) error {
	var req authDTO.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return helper.JsonValidationError(c, "Please enter correct input", violations)
	}
	return h.signin(c, constants.RoleUser, req.Email, req.Password)
}

// POST /admin/signin
func (h *AuthController) AdminSignin(c *fiber.Ctx) error {
	var req authDTO.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return helper.JsonValidationError(c, "Please enter correct input", violations)
	}
	return h.signin(c, constants.RoleAdmin, req.Email, req.Password)
}

// POST /sadmin/signin
func (h *AuthController) SuperAdminSignin(c *fiber.Ctx) error {
	var req authDTO.SuperAdminSigninRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return helper.JsonValidationError(c, "Please enter correct input", violations)
	}
	return h.signin(c, constants.RoleSuperAdmin, req.SuperEmail, req.SuperPassword)
}

/* ==========================
   PROFILE
========================== */

// GET /users/profile
func (h *AuthController) UserProfile(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}

	var user authModel.UserModel
	if err := h.DB.Where("email = ?", principal.Email).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "User doesn't exist")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Get Details Successfull", fiber.Map{
		"userData": fiber.Map{"email": user.Email, "name": user.Name},
	})
}

// GET /admin/profile
func (h *AuthController) AdminProfile(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}

	var admin authModel.AdminModel
	if err := h.DB.Preload("Event").Where("email = ?", principal.Email).First(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "User doesn't exist")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Get Details Successfull", fiber.Map{
		"userData": fiber.Map{"email": admin.Email, "name": admin.Name, "event": admin.Event.Event},
	})
}

// GET /sadmin/profile
func (h *AuthController) SuperAdminProfile(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}

	var sadmin authModel.SuperAdminModel
	if err := h.DB.Where("email = ?", principal.Email).First(&sadmin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "User doesn't exist")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Get Details Successfull", fiber.Map{
		"userData": fiber.Map{"email": sadmin.Email, "name": sadmin.Name},
	})
}

/* ==========================
   SESSION CHECK
========================== */

// GET /islogIn — dipakai FE untuk cek sesi masih valid atau tidak.
// Tanpa header → 401 auth:null; token rusak/kedaluwarsa → 403 auth:null.
func (h *AuthController) CheckLogin(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not Logged In",
			"auth":    nil,
		})
	}

	principal, err := authMw.ParseToken(helper.GetRawAccessToken(c), configs.JWTSecret)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
			"auth":    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"auth":    principal.Role,
		"message": "Authenticated",
	})
}
