package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventModel "eventku_backend/internals/features/events/event/model"
	registrationDTO "eventku_backend/internals/features/events/registration/dto"
	registrationModel "eventku_backend/internals/features/events/registration/model"
	settingModel "eventku_backend/internals/features/settings/setting/model"
	helper "eventku_backend/internals/helpers"
	authMw "eventku_backend/internals/middlewares/auth"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

/* ==========================
   REGISTER (user)
========================== */

// POST /users/register
// Registrasi individual = satu row; registrasi tim = row registrasi + row tim
// dalam SATU transaksi. Gate pendaftaran dan cek duplikat (user,event) juga
// dievaluasi DI DALAM transaksi supaya tidak ada jendela race lewat /check.
func (h *RegistrationController) Register(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}

	var req registrationDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return helper.JsonValidationError(c, "Please enter correct input", violations)
	}

	var event eventModel.EventModel
	if err := h.DB.Where("event = ?", req.Event).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event doesn't exist")
		}
		log.Println("[ERROR] register event lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !req.Individual && (strings.TrimSpace(req.TeamName) == "" || len(req.Players) == 0) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Team name and players are required")
	}

	// gender hanya tersimpan untuk individual; tim selalu NULL
	var gender *string
	if req.Individual {
		g := req.Gender
		gender = &g
	}

	registration := registrationModel.RegistrationModel{
		Name:          req.Name,
		Gender:        gender,
		Contact:       req.Contact,
		Address:       req.Address,
		Individual:    req.Individual,
		BankingName:   req.BankingName,
		TransactionID: req.TransactionID,
		UserID:        principal.UserID,
		EventID:       event.ID,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var setting settingModel.GlobalSettingModel
		if err := tx.First(&setting, settingModel.GlobalSettingID).Error; err != nil {
			return err
		}
		if !setting.RegistrationOpen {
			return fiber.NewError(fiber.StatusForbidden, "Registration is closed")
		}

		var cnt int64
		if err := tx.Model(&registrationModel.RegistrationModel{}).
			Where("user_id = ? AND event_id = ?", principal.UserID, event.ID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Already Registered in this Event")
		}

		if err := tx.Create(&registration).Error; err != nil {
			return err
		}

		if !req.Individual {
			players, err := req.PlayersJSON()
			if err != nil {
				return err
			}
			team := registrationModel.TeamModel{
				TeamName:       strings.TrimSpace(req.TeamName),
				Players:        players,
				RegistrationID: registration.ID,
			}
			if err := tx.Create(&team).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] register tx:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if req.Individual {
		return helper.JsonWithCode(c, fiber.StatusCreated, "Individual registration successful", nil)
	}
	return helper.JsonWithCode(c, fiber.StatusCreated, "Team registration successful", nil)
}

/* ==========================
   READ (user)
========================== */

// GET /users/registered — semua registrasi milik user yang login
func (h *RegistrationController) Registered(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}

	var regs []registrationModel.RegistrationModel
	if err := h.DB.Preload("Event").Preload("User").Preload("Team").
		Where("user_id = ?", principal.UserID).
		Find(&regs).Error; err != nil {
		log.Println("[ERROR] registered:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Can't get the details")
	}

	return helper.JsonOK(c, "Get details  successfully", fiber.Map{
		"registeredDetails": registrationDTO.FromModels(regs),
	})
}

// GET /users/check?event=<slug>
// Read-only: sudah terdaftar atau belum; kalau belum, kembalikan fee
// supaya FE bisa konfirmasi nominal sebelum submit bukti pembayaran.
func (h *RegistrationController) Check(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}

	slug, ferr := helper.ValidateSlug("event", c.Query("event"))
	if ferr != nil {
		return helper.JsonValidationError(c, "Invalid event", ferr.Violations)
	}

	var event eventModel.EventModel
	if err := h.DB.Where("event = ?", slug).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusConflict, "Event doesn't exist")
		}
		log.Println("[ERROR] check event lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var cnt int64
	if err := h.DB.Model(&registrationModel.RegistrationModel{}).
		Where("user_id = ? AND event_id = ?", principal.UserID, event.ID).
		Count(&cnt).Error; err != nil {
		log.Println("[ERROR] check registration lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if cnt > 0 {
		return helper.JsonWithCode(c, fiber.StatusConflict, "Already Registered in this Event", fiber.Map{
			"eventRegistered": true,
		})
	}

	return helper.JsonOK(c, "Not Registered Yet", fiber.Map{
		"fee":             event.Fee,
		"eventRegistered": false,
	})
}

/* ==========================
   LISTING (admin / super admin)
========================== */

// GET /admin/register-details — hanya registrasi event milik admin (scope dari token)
func (h *RegistrationController) AdminListRegistrations(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}

	var regs []registrationModel.RegistrationModel
	if err := h.DB.Preload("Event").Preload("User").Preload("Team").
		Where("event_id = ?", principal.EventID).
		Find(&regs).Error; err != nil {
		log.Println("[ERROR] admin register-details:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, "Get details  successfully", fiber.Map{
		"registerDetails": registrationDTO.FromModels(regs),
	})
}

// GET /sadmin/user-registered — semua registrasi lintas event
func (h *RegistrationController) SuperAdminListRegistrations(c *fiber.Ctx) error {
	var regs []registrationModel.RegistrationModel
	if err := h.DB.Preload("Event").Preload("User").Preload("Team").
		Find(&regs).Error; err != nil {
		log.Println("[ERROR] sadmin user-registered:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Gets all the Users Registered Details Successfully", fiber.Map{
		"eventRegistrationDetails": registrationDTO.FromModels(regs),
	})
}

/* ==========================
   APPROVE
========================== */

// approve: toggle boolean tanpa aturan transisi (boleh bolak-balik).
// scopeEventID != nil → registrasi harus milik event tersebut (admin biasa).
func (h *RegistrationController) approve(c *fiber.Ctx, scopeEventID *uint) error {
	id, err := strconv.Atoi(c.Params("registrationId"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration ID")
	}

	var req registrationDTO.ApproveRequest
	if err := c.BodyParser(&req); err != nil || req.Approved == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "approved must be a boolean")
	}

	var reg registrationModel.RegistrationModel
	if err := h.DB.First(&reg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		log.Println("[ERROR] approve lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}

	if scopeEventID != nil && reg.EventID != *scopeEventID {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: registration belongs to another event")
	}

	if err := h.DB.Model(&reg).Update("approved", *req.Approved).Error; err != nil {
		log.Println("[ERROR] approve update:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}

	return helper.JsonOK(c, "Updated successfully", fiber.Map{
		"data": reg,
	})
}

// PUT /admin/approve/:registrationId
func (h *RegistrationController) AdminApprove(c *fiber.Ctx) error {
	principal, ok := authMw.GetPrincipal(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not Logged In")
	}
	return h.approve(c, &principal.EventID)
}

// PUT /sadmin/approve/:registrationId
func (h *RegistrationController) SuperAdminApprove(c *fiber.Ctx) error {
	return h.approve(c, nil)
}
