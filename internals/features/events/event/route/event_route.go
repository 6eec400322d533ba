package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventku_backend/internals/constants"
	eventController "eventku_backend/internals/features/events/event/controller"
	authMw "eventku_backend/internals/middlewares/auth"
)

// AdminEventRoutes: event milik admin sendiri (scoping dari claim token)
func AdminEventRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)
	auth := authMw.AuthMiddleware()
	onlyAdmin := authMw.OnlyRoles(constants.RoleErrorAdmin("kelola event"), constants.RoleAdmin)

	r.Get("/event", auth, onlyAdmin, ctrl.AdminGetEvent)
	r.Put("/event", auth, onlyAdmin, ctrl.AdminUpdateEvent)
}

// SuperAdminEventRoutes: buat event+admin, update event mana pun, listing
func SuperAdminEventRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)
	auth := authMw.AuthMiddleware()
	onlySadmin := authMw.OnlyRoles(constants.RoleErrorSuperAdmin("kelola event"), constants.RoleSuperAdmin)

	r.Post("/event-admin", auth, onlySadmin, ctrl.CreateEventWithAdmin)
	r.Get("/event-admin", auth, onlySadmin, ctrl.SuperAdminListEventAdmins)
	r.Put("/event", auth, onlySadmin, ctrl.SuperAdminUpdateEvent)
}
