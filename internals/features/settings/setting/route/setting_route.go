package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	settingController "eventku_backend/internals/features/settings/setting/controller"
	authMw "eventku_backend/internals/middlewares/auth"
)

// PublicStatusRoutes: dua gate global bisa dibaca tanpa login
func PublicStatusRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := settingController.NewSettingController(db)

	r.Get("/status", ctrl.Status)
	r.Get("/game-status", ctrl.GameStatus)
}

// SuperAdminSettingRoutes: baca + tulis gate, khusus super admin
func SuperAdminSettingRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := settingController.NewSettingController(db)
	auth := authMw.AuthMiddleware()
	onlySadmin := authMw.OnlyRoles(constants.RoleErrorSuperAdmin("pengaturan global"), constants.RoleSuperAdmin)

	r.Get("/registration-open", auth, onlySadmin, ctrl.GetRegistrationOpen)
	r.Put("/registration-open", auth, onlySadmin, ctrl.SetRegistrationOpen)
	r.Get("/game-registration-open", auth, onlySadmin, ctrl.GetGameRegistrationOpen)
	r.Put("/game-registration-open", auth, onlySadmin, ctrl.SetGameRegistrationOpen)
}
