package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	authController "eventku_backend/internals/features/users/auth/controller"
	authMw "eventku_backend/internals/middlewares/auth"
)

// UserAuthRoutes: signup/signin publik + profile (USER only)
func UserAuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/signup", ctrl.UserSignup)
	r.Post("/signin", ctrl.UserSignin)
	r.Get("/profile",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorUser("profil user"), constants.RoleUser),
		ctrl.UserProfile,
	)
}

// AdminAuthRoutes: admin tidak pernah signup sendiri (dibuat super admin bersama event)
func AdminAuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/signin", ctrl.AdminSignin)
	r.Get("/profile",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorAdmin("profil admin"), constants.RoleAdmin),
		ctrl.AdminProfile,
	)
}

func SuperAdminAuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/signup", ctrl.SuperAdminSignup)
	r.Post("/signin", ctrl.SuperAdminSignin)
	r.Get("/profile",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("profil super admin"), constants.RoleSuperAdmin),
		ctrl.SuperAdminProfile,
	)
}
