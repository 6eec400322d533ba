// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "eventku_backend/internals/features/events/event/route"
	registrationRoute "eventku_backend/internals/features/events/registration/route"
	settingRoute "eventku_backend/internals/features/settings/setting/route"
	authController "eventku_backend/internals/features/users/auth/controller"
	authRoute "eventku_backend/internals/features/users/auth/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== SESSION CHECK =====================
	app.Get("/islogIn", authController.NewAuthController(db).CheckLogin)

	// ===================== USERS =====================
	log.Println("[INFO] Mounting /users routes...")
	users := app.Group("/users")
	authRoute.UserAuthRoutes(users, db)
	settingRoute.PublicStatusRoutes(users, db)
	registrationRoute.UserRegistrationRoutes(users, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Mounting /admin routes...")
	admin := app.Group("/admin")
	authRoute.AdminAuthRoutes(admin, db)
	eventRoute.AdminEventRoutes(admin, db)
	registrationRoute.AdminRegistrationRoutes(admin, db)

	// ===================== SUPER ADMIN =====================
	log.Println("[INFO] Mounting /sadmin routes...")
	sadmin := app.Group("/sadmin")
	authRoute.SuperAdminAuthRoutes(sadmin, db)
	eventRoute.SuperAdminEventRoutes(sadmin, db)
	registrationRoute.SuperAdminRegistrationRoutes(sadmin, db)
	settingRoute.SuperAdminSettingRoutes(sadmin, db)
}
