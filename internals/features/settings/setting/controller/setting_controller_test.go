package controller_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	settingModel "eventku_backend/internals/features/settings/setting/model"
	"eventku_backend/internals/testutil"
)

func sadminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := testutil.Do(t, app, http.MethodPost, "/sadmin/signup", "", fiber.Map{
		"name": "Root", "email": "root@mail.com", "password": "rahasia123",
	})
	body := testutil.WantStatus(t, resp, fiber.StatusOK)
	raw, _ := body["authorization"].(string)
	return strings.TrimPrefix(raw, "Bearer ")
}

func TestGlobalSettingSeeded(t *testing.T) {
	_, db := testutil.NewApp(t)

	var setting settingModel.GlobalSettingModel
	if err := db.First(&setting, settingModel.GlobalSettingID).Error; err != nil {
		t.Fatalf("baris singleton tidak ada: %v", err)
	}
	if !setting.RegistrationOpen || !setting.GameRegistrationOpen {
		t.Fatalf("default gate harus terbuka: %+v", setting)
	}
}

func TestPublicStatusEndpoints(t *testing.T) {
	app, _ := testutil.NewApp(t)

	// tanpa token sama sekali
	resp := testutil.Do(t, app, http.MethodGet, "/users/status", "", nil)
	body := testutil.WantStatus(t, resp, fiber.StatusOK)
	if body["registrationOpen"] != true {
		t.Fatalf("registrationOpen = %v", body["registrationOpen"])
	}

	resp = testutil.Do(t, app, http.MethodGet, "/users/game-status", "", nil)
	body = testutil.WantStatus(t, resp, fiber.StatusOK)
	if body["registrationOpen"] != true {
		t.Fatalf("registrationOpen = %v", body["registrationOpen"])
	}
}

func TestGatesAreIndependent(t *testing.T) {
	app, _ := testutil.NewApp(t)
	sadmin := sadminToken(t, app)

	// tutup gate game saja
	resp := testutil.Do(t, app, http.MethodPut, "/sadmin/game-registration-open", sadmin, fiber.Map{"gameRegistrationOpen": false})
	testutil.WantStatus(t, resp, fiber.StatusOK)

	resp = testutil.Do(t, app, http.MethodGet, "/users/game-status", "", nil)
	body := testutil.WantStatus(t, resp, fiber.StatusOK)
	if body["registrationOpen"] != false {
		t.Fatalf("gate game masih terbuka: %v", body["registrationOpen"])
	}

	// gate umum tidak boleh ikut berubah
	resp = testutil.Do(t, app, http.MethodGet, "/users/status", "", nil)
	body = testutil.WantStatus(t, resp, fiber.StatusOK)
	if body["registrationOpen"] != true {
		t.Fatalf("gate umum ikut tertutup: %v", body["registrationOpen"])
	}
}

func TestSetRegistrationOpen(t *testing.T) {
	app, _ := testutil.NewApp(t)
	sadmin := sadminToken(t, app)

	t.Run("bukan boolean", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodPut, "/sadmin/registration-open", sadmin, fiber.Map{})
		body := testutil.WantStatus(t, resp, fiber.StatusBadRequest)
		if body["message"] != "registrationOpen must be a boolean" {
			t.Fatalf("message = %v", body["message"])
		}
	})

	t.Run("tutup lalu buka", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodPut, "/sadmin/registration-open", sadmin, fiber.Map{"registrationOpen": false})
		body := testutil.WantStatus(t, resp, fiber.StatusOK)
		if body["registrationOpen"] != false {
			t.Fatalf("registrationOpen = %v", body["registrationOpen"])
		}

		resp = testutil.Do(t, app, http.MethodGet, "/sadmin/registration-open", sadmin, nil)
		body = testutil.WantStatus(t, resp, fiber.StatusOK)
		if body["registrationOpen"] != false {
			t.Fatalf("gate tidak tersimpan: %v", body["registrationOpen"])
		}

		resp = testutil.Do(t, app, http.MethodPut, "/sadmin/registration-open", sadmin, fiber.Map{"registrationOpen": true})
		testutil.WantStatus(t, resp, fiber.StatusOK)
	})
}

func TestSettingWriteNeedsSuperAdmin(t *testing.T) {
	app, _ := testutil.NewApp(t)

	// user biasa ditolak
	resp := testutil.Do(t, app, http.MethodPost, "/users/signup", "", fiber.Map{
		"name": "Budi", "email": "budi@mail.com", "password": "rahasia123",
	})
	body := testutil.WantStatus(t, resp, fiber.StatusCreated)
	raw, _ := body["authorization"].(string)
	userToken := strings.TrimPrefix(raw, "Bearer ")

	resp = testutil.Do(t, app, http.MethodPut, "/sadmin/registration-open", userToken, fiber.Map{"registrationOpen": false})
	testutil.WantStatus(t, resp, fiber.StatusForbidden)

	// tanpa token → 401
	resp = testutil.Do(t, app, http.MethodPut, "/sadmin/registration-open", "", fiber.Map{"registrationOpen": false})
	testutil.WantStatus(t, resp, fiber.StatusUnauthorized)
}
