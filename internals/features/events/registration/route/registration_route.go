package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	registrationController "eventku_backend/internals/features/events/registration/controller"
	authMw "eventku_backend/internals/middlewares/auth"
)

// UserRegistrationRoutes: register + cek status registrasi (USER only)
func UserRegistrationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := registrationController.NewRegistrationController(db)
	auth := authMw.AuthMiddleware()
	onlyUser := authMw.OnlyRoles(constants.RoleErrorUser("registrasi event"), constants.RoleUser)

	r.Post("/register", auth, onlyUser, ctrl.Register)
	r.Get("/registered", auth, onlyUser, ctrl.Registered)
	r.Get("/check", auth, onlyUser, ctrl.Check)
}

// AdminRegistrationRoutes: listing + approve untuk event milik admin
func AdminRegistrationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := registrationController.NewRegistrationController(db)
	auth := authMw.AuthMiddleware()
	onlyAdmin := authMw.OnlyRoles(constants.RoleErrorAdmin("data registrasi"), constants.RoleAdmin)

	r.Get("/register-details", auth, onlyAdmin, ctrl.AdminListRegistrations)
	r.Put("/approve/:registrationId", auth, onlyAdmin, ctrl.AdminApprove)
}

// SuperAdminRegistrationRoutes: listing global + approve tanpa scope
func SuperAdminRegistrationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := registrationController.NewRegistrationController(db)
	auth := authMw.AuthMiddleware()
	onlySadmin := authMw.OnlyRoles(constants.RoleErrorSuperAdmin("data registrasi"), constants.RoleSuperAdmin)

	r.Get("/user-registered", auth, onlySadmin, ctrl.SuperAdminListRegistrations)
	r.Put("/approve/:registrationId", auth, onlySadmin, ctrl.SuperAdminApprove)
}
