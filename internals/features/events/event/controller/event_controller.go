package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventDTO "eventku_backend/internals/features/events/event/dto"
	eventModel "eventku_backend/internals/features/events/event/model"
	authModel "eventku_backend/internals/features/users/auth/model"
	authService "eventku_backend/internals/features/users/auth/service"
	helper "eventku_backend/internals/helpers"
	authMw "eventku_backend/internals/middlewares/auth"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

/* ==========================
   CREATE EVENT + ADMIN (super admin)
========================== */

// POST /sadmin/event-admin
// Event dan admin-nya dibuat dalam SATU transaksi: kalau email admin
// ternyata bentrok setelah event dibuat, dua-duanya batal.
func (h *EventController) CreateEventWithAdmin(c *fiber.Ctx) error {
	var req eventDTO.CreateEventWithAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return helper.JsonValidationError(c, "Please enter correct input", violations)
	}

	// Pre-check sebelum transaksi (laporan error lebih jelas);
	// race antar request tetap ditangkap constraint unik di dalam transaksi.
	var existingEvent eventModel.EventModel
	if err := h.DB.Where("event = ?", req.Event).First(&existingEvent).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Event already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] event pre-check:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var existingAdmin authModel.AdminModel
	if err := h.DB.Where("email = ?", req.AdminEmail).First(&existingAdmin).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Admin already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] admin pre-check:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hash, err := authService.HashPassword(req.AdminPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	newEvent := eventModel.EventModel{
		Event:       req.Event,
		Date:        req.Date,
		Description: req.Description,
		Fee:         req.FeeString(),
	}
	newAdmin := authModel.AdminModel{
		Name:     req.Name,
		Email:    req.AdminEmail,
		Password: hash,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newEvent).Error; err != nil {
			return err
		}
		newAdmin.EventID = newEvent.ID
		if err := tx.Create(&newAdmin).Error; err != nil {
			return err
		}
		return nil
	}); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Event or admin already exists")
		}
		log.Println("[ERROR] create event+admin tx:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Event and Admin successfully created", fiber.Map{
		"details": fiber.Map{"event": newEvent.Event, "admin": newAdmin.Name},
	})
}

/* ==========================
   PARTIAL UPDATE
========================== */

// updateEvent: alur bersama admin & super admin setelah eventID di-resolve.
// Rename ke slug milik event LAIN → 409; rename ke slug sendiri = no-op sah.
func (h *EventController) updateEvent(c *fiber.Ctx, eventID uint, req *eventDTO.UpdateEventRequest) error {
	var existing eventModel.EventModel
	if err := h.DB.First(&existing, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Println("[ERROR] update event lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.Event != nil {
		var collide eventModel.EventModel
		err := h.DB.Where("event = ? AND id <> ?", *req.Event, eventID).First(&collide).Error
		if err == nil {
			return helper.JsonError(c, fiber.StatusConflict, "Event name already existed")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] slug collision check:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := h.DB.Model(&existing).Updates(updates).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Event name already existed")
			}
			log.Println("[ERROR] update event:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return helper.JsonOK(c, "Event updated successfully", fiber.Map{
		"eventDetails": existing,
	})
}

// PUT /admin/event — eventId SELALU dari claim token, bukan dari body
// (mencegah admin menyasar event orang lain lewat body palsu).
func (h *EventController) AdminUpdateEvent(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}

	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return helper.JsonValidationError(c, "Please enter correct input", violations)
	}

	return h.updateEvent(c, principal.EventID, &req)
}

// PUT /sadmin/event — super admin boleh menunjuk event lewat body eventId,
// wajib integer positif.
func (h *EventController) SuperAdminUpdateEvent(c *fiber.Ctx) error {
	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.EventID == nil || *req.EventID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return helper.JsonValidationError(c, "Please enter correct input", violations)
	}

	return h.updateEvent(c, uint(*req.EventID), &req)
}

/* ==========================
   READ
========================== */

// GET /admin/event — detail event milik admin yang login
func (h *EventController) AdminGetEvent(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}

	var admin authModel.AdminModel
	if err := h.DB.Preload("Event").First(&admin, principal.AdminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		log.Println("[ERROR] admin get event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonOK(c, "Get details  successfully", fiber.Map{
		"eventDetails": admin,
	})
}

// GET /sadmin/event-admin — semua admin beserta event-nya
func (h *EventController) SuperAdminListEventAdmins(c *fiber.Ctx) error {
	var admins []authModel.AdminModel
	if err := h.DB.Preload("Event").Find(&admins).Error; err != nil {
		log.Println("[ERROR] list event-admin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Admins Events Details Successfull", fiber.Map{
		"adminEvent": admins,
	})
}
