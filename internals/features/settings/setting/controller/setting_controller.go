package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingDTO "eventku_backend/internals/features/settings/setting/dto"
	settingModel "eventku_backend/internals/features/settings/setting/model"
	helper "eventku_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

func (h *SettingController) loadSetting(c *fiber.Ctx) (*settingModel.GlobalSettingModel, error) {
	var setting settingModel.GlobalSettingModel
	if err := h.DB.First(&setting, settingModel.GlobalSettingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Global setting not found")
		}
		log.Println("[ERROR] load global setting:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration status")
	}
	return &setting, nil
}

/* ==========================
   STATUS PUBLIK
========================== */

// GET /users/status — gate pendaftaran umum
func (h *SettingController) Status(c *fiber.Ctx) error {
	setting, err := h.loadSetting(c)
	if setting == nil {
		return err
	}
	return c.JSON(fiber.Map{"registrationOpen": setting.RegistrationOpen})
}

// GET /users/game-status — gate pendaftaran game
// (key respons tetap "registrationOpen", ikut kontrak FE lama)
func (h *SettingController) GameStatus(c *fiber.Ctx) error {
	setting, err := h.loadSetting(c)
	if setting == nil {
		return err
	}
	return c.JSON(fiber.Map{"registrationOpen": setting.GameRegistrationOpen})
}

/* ==========================
   SUPER ADMIN
========================== */

// GET /sadmin/registration-open
func (h *SettingController) GetRegistrationOpen(c *fiber.Ctx) error {
	return h.Status(c)
}

// GET /sadmin/game-registration-open
func (h *SettingController) GetGameRegistrationOpen(c *fiber.Ctx) error {
	return h.GameStatus(c)
}

// PUT /sadmin/registration-open
func (h *SettingController) SetRegistrationOpen(c *fiber.Ctx) error {
	var req settingDTO.SetRegistrationOpenRequest
	if err := c.BodyParser(&req); err != nil || req.RegistrationOpen == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "registrationOpen must be a boolean")
	}

	if err := h.DB.Model(&settingModel.GlobalSettingModel{}).
		Where("id = ?", settingModel.GlobalSettingID).
		Update("registration_open", *req.RegistrationOpen).Error; err != nil {
		log.Println("[ERROR] update registration gate:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration status")
	}

	return helper.JsonOK(c, "Registration status updated successfully", fiber.Map{
		"registrationOpen": *req.RegistrationOpen,
	})
}

// PUT /sadmin/game-registration-open
func (h *SettingController) SetGameRegistrationOpen(c *fiber.Ctx) error {
	var req settingDTO.SetGameRegistrationOpenRequest
	if err := c.BodyParser(&req); err != nil || req.GameRegistrationOpen == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "registrationOpen must be a boolean")
	}

	if err := h.DB.Model(&settingModel.GlobalSettingModel{}).
		Where("id = ?", settingModel.GlobalSettingID).
		Update("game_registration_open", *req.GameRegistrationOpen).Error; err != nil {
		log.Println("[ERROR] update game registration gate:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration status")
	}

	return helper.JsonOK(c, "Registration status updated successfully", fiber.Map{
		"registrationOpen": *req.GameRegistrationOpen,
	})
}
