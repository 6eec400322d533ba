package controller_test

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationModel "eventku_backend/internals/features/events/registration/model"
	"eventku_backend/internals/testutil"
)

func token(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	raw, _ := body["authorization"].(string)
	if !strings.HasPrefix(raw, "Bearer ") {
		t.Fatalf("authorization tidak berbentuk Bearer: %q", raw)
	}
	return strings.TrimPrefix(raw, "Bearer ")
}

func sadminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := testutil.Do(t, app, http.MethodPost, "/sadmin/signup", "", fiber.Map{
		"name": "Root", "email": "root@mail.com", "password": "rahasia123",
	})
	return token(t, testutil.WantStatus(t, resp, fiber.StatusOK))
}

func userToken(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := testutil.Do(t, app, http.MethodPost, "/users/signup", "", fiber.Map{
		"name": "Budi", "email": email, "password": "rahasia123",
	})
	return token(t, testutil.WantStatus(t, resp, fiber.StatusCreated))
}

// createEvent membuat event lewat jalur super admin, balikin token admin event-nya.
func createEvent(t *testing.T, app *fiber.App, sadmin, slug, adminEmail string) string {
	t.Helper()
	resp := testutil.Do(t, app, http.MethodPost, "/sadmin/event-admin", sadmin, fiber.Map{
		"name":          "Panitia " + slug,
		"adminEmail":    adminEmail,
		"adminPassword": "rahasia123",
		"event":         slug,
		"date":          "2026-10-01",
		"description":   "Turnamen " + slug,
		"fee":           50000,
	})
	testutil.WantStatus(t, resp, fiber.StatusCreated)

	resp = testutil.Do(t, app, http.MethodPost, "/admin/signin", "", fiber.Map{
		"email": adminEmail, "password": "rahasia123",
	})
	return token(t, testutil.WantStatus(t, resp, fiber.StatusCreated))
}

func individualBody(slug string) fiber.Map {
	return fiber.Map{
		"event":         slug,
		"name":          "Budi",
		"gender":        "male",
		"contact":       "0812345678",
		"address":       "Jl. Merdeka 1",
		"individual":    true,
		"bankingName":   "Budi S",
		"transactionId": "TRX-001",
	}
}

func teamBody(slug string) fiber.Map {
	return fiber.Map{
		"event":         slug,
		"name":          "Budi",
		"gender":        "male", // harus diabaikan untuk tim
		"contact":       "0812345678",
		"address":       "Jl. Merdeka 1",
		"individual":    false,
		"bankingName":   "Budi S",
		"transactionId": "TRX-002",
		"teamName":      "Garuda",
		"players": []fiber.Map{
			{"name": "Budi", "gender": "male", "gameId": "budi#1", "teamLeader": true},
			{"name": "Sari", "gender": "female", "gameId": "sari#2", "teamLeader": false},
		},
	}
}

/* ==========================
   REGISTER
========================== */

func TestRegisterIndividual(t *testing.T) {
	app, db := testutil.NewApp(t)
	sadmin := sadminToken(t, app)
	createEvent(t, app, sadmin, "chess", "panitia@mail.com")
	user := userToken(t, app, "budi@mail.com")

	resp := testutil.Do(t, app, http.MethodPost, "/users/register", user, individualBody("chess"))
	body := testutil.WantStatus(t, resp, fiber.StatusCreated)
	if body["message"] != "Individual registration successful" {
		t.Fatalf("message = %v", body["message"])
	}

	var reg registrationModel.RegistrationModel
	if err := db.First(&reg).Error; err != nil {
		t.Fatalf("registrasi tidak tersimpan: %v", err)
	}
	if reg.Gender == nil || *reg.Gender != "male" {
		t.Fatalf("gender = %v, want male", reg.Gender)
	}
	if reg.Approved {
		t.Fatal("registrasi baru harus approved=false")
	}

	var teams int64
	if err := db.Model(&registrationModel.TeamModel{}).Count(&teams).Error; err != nil {
		t.Fatalf("count teams: %v", err)
	}
	if teams != 0 {
		t.Fatal("registrasi individual tidak boleh punya row tim")
	}
}

func TestRegisterTeam(t *testing.T) {
	app, db := testutil.NewApp(t)
	sadmin := sadminToken(t, app)
	createEvent(t, app, sadmin, "futsal", "panitia@mail.com")
	user := userToken(t, app, "budi@mail.com")

	resp := testutil.Do(t, app, http.MethodPost, "/users/register", user, teamBody("futsal"))
	body := testutil.WantStatus(t, resp, fiber.StatusCreated)
	if body["message"] != "Team registration successful" {
		t.Fatalf("message = %v", body["message"])
	}

	var reg registrationModel.RegistrationModel
	if err := db.Preload("Team").First(&reg).Error; err != nil {
		t.Fatalf("registrasi tidak tersimpan: %v", err)
	}
	// gender dikirim "male" tapi untuk tim harus tersimpan NULL
	if reg.Gender != nil {
		t.Fatalf("gender tim harus NULL, dapat %q", *reg.Gender)
	}
	if reg.Team == nil {
		t.Fatal("row tim tidak dibuat")
	}
	if reg.Team.TeamName != "Garuda" {
		t.Fatalf("teamName = %q", reg.Team.TeamName)
	}
	if !strings.Contains(string(reg.Team.Players), "budi#1") {
		t.Fatalf("players JSON tidak berisi pemain: %s", reg.Team.Players)
	}
}

func TestRegisterRejections(t *testing.T) {
	app, _ := testutil.NewApp(t)
	sadmin := sadminToken(t, app)
	createEvent(t, app, sadmin, "chess", "panitia@mail.com")
	user := userToken(t, app, "budi@mail.com")

	t.Run("event tidak ada", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodPost, "/users/register", user, individualBody("ghaib"))
		body := testutil.WantStatus(t, resp, fiber.StatusNotFound)
		if body["message"] != "Event doesn't exist" {
			t.Fatalf("message = %v", body["message"])
		}
	})

	t.Run("tim tanpa players", func(t *testing.T) {
		body := teamBody("chess")
		delete(body, "players")
		resp := testutil.Do(t, app, http.MethodPost, "/users/register", user, body)
		got := testutil.WantStatus(t, resp, fiber.StatusBadRequest)
		if got["message"] != "Team name and players are required" {
			t.Fatalf("message = %v", got["message"])
		}
	})

	t.Run("individual tanpa gender", func(t *testing.T) {
		body := individualBody("chess")
		delete(body, "gender")
		resp := testutil.Do(t, app, http.MethodPost, "/users/register", user, body)
		testutil.WantStatus(t, resp, fiber.StatusBadRequest)
	})
}

func TestRegisterDuplicate(t *testing.T) {
	app, _ := testutil.NewApp(t)
	sadmin := sadminToken(t, app)
	createEvent(t, app, sadmin, "chess", "panitia@mail.com")
	user := userToken(t, app, "budi@mail.com")

	resp := testutil.Do(t, app, http.MethodPost, "/users/register", user, individualBody("chess"))
	testutil.WantStatus(t, resp, fiber.StatusCreated)

	// user yang sama, event yang sama → konflik, termasuk ganti mode tim
	resp = testutil.Do(t, app, http.MethodPost, "/users/register", user, teamBody("chess"))
	body := testutil.WantStatus(t, resp, fiber.StatusConflict)
	if body["message"] != "Already Registered in this Event" {
		t.Fatalf("message = %v", body["message"])
	}

	// user lain masih boleh
	other := userToken(t, app, "sari@mail.com")
	resp = testutil.Do(t, app, http.MethodPost, "/users/register", other, individualBody("chess"))
	testutil.WantStatus(t, resp, fiber.StatusCreated)
}

func TestRegisterGateClosed(t *testing.T) {
	app, db := testutil.NewApp(t)
	sadmin := sadminToken(t, app)
	createEvent(t, app, sadmin, "chess", "panitia@mail.com")
	user := userToken(t, app, "budi@mail.com")

	resp := testutil.Do(t, app, http.MethodPut, "/sadmin/registration-open", sadmin, fiber.Map{"registrationOpen": false})
	testutil.WantStatus(t, resp, fiber.StatusOK)

	resp = testutil.Do(t, app, http.MethodPost, "/users/register", user, teamBody("chess"))
	body := testutil.WantStatus(t, resp, fiber.StatusForbidden)
	if body["message"] != "Registration is closed" {
		t.Fatalf("message = %v", body["message"])
	}

	// gate menutup SEBELUM insert: tidak boleh ada row yang bocor
	var regs, teams int64
	db.Model(&registrationModel.RegistrationModel{}).Count(&regs)
	db.Model(&registrationModel.TeamModel{}).Count(&teams)
	if regs != 0 || teams != 0 {
		t.Fatalf("gate tertutup tapi ada row tersimpan: regs=%d teams=%d", regs, teams)
	}

	// buka lagi → boleh daftar
	resp = testutil.Do(t, app, http.MethodPut, "/sadmin/registration-open", sadmin, fiber.Map{"registrationOpen": true})
	testutil.WantStatus(t, resp, fiber.StatusOK)
	resp = testutil.Do(t, app, http.MethodPost, "/users/register", user, individualBody("chess"))
	testutil.WantStatus(t, resp, fiber.StatusCreated)
}

// Registrasi + tim dibuat dalam satu transaksi: kalau ada langkah gagal
// setelah insert, dua-duanya harus batal.
func TestRegistrationTransactionRollsBack(t *testing.T) {
	_, db := testutil.NewApp(t)

	boom := errors.New("boom")
	err := db.Transaction(func(tx *gorm.DB) error {
		reg := registrationModel.RegistrationModel{
			Name: "Budi", Contact: "0812", Address: "Jl. Merdeka",
			Individual: false, BankingName: "Budi S", TransactionID: "TRX-9",
			UserID: 1, EventID: 1,
		}
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}
		team := registrationModel.TeamModel{
			TeamName: "Garuda", Players: []byte(`[]`), RegistrationID: reg.ID,
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}

	var regs, teams int64
	db.Model(&registrationModel.RegistrationModel{}).Count(&regs)
	db.Model(&registrationModel.TeamModel{}).Count(&teams)
	if regs != 0 || teams != 0 {
		t.Fatalf("rollback bocor: regs=%d teams=%d", regs, teams)
	}
}

/* ==========================
   READ
========================== */

func TestRegisteredAndCheck(t *testing.T) {
	app, _ := testutil.NewApp(t)
	sadmin := sadminToken(t, app)
	createEvent(t, app, sadmin, "chess", "panitia@mail.com")
	createEvent(t, app, sadmin, "futsal", "futsal@mail.com")
	user := userToken(t, app, "budi@mail.com")

	resp := testutil.Do(t, app, http.MethodPost, "/users/register", user, teamBody("futsal"))
	testutil.WantStatus(t, resp, fiber.StatusCreated)

	t.Run("registered listing", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodGet, "/users/registered", user, nil)
		body := testutil.WantStatus(t, resp, fiber.StatusOK)
		details, _ := body["registeredDetails"].([]interface{})
		if len(details) != 1 {
			t.Fatalf("registeredDetails punya %d entri, want 1", len(details))
		}
		entry, _ := details[0].(map[string]interface{})
		event, _ := entry["event"].(map[string]interface{})
		if event["event"] != "futsal" {
			t.Fatalf("event = %v", event["event"])
		}
		team, _ := entry["team"].(map[string]interface{})
		if team == nil || team["teamName"] != "Garuda" {
			t.Fatalf("team = %v", entry["team"])
		}
	})

	t.Run("check query kosong", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodGet, "/users/check", user, nil)
		testutil.WantStatus(t, resp, fiber.StatusBadRequest)
	})

	t.Run("check event ghaib", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodGet, "/users/check?event=ghaib", user, nil)
		body := testutil.WantStatus(t, resp, fiber.StatusConflict)
		if body["message"] != "Event doesn't exist" {
			t.Fatalf("message = %v", body["message"])
		}
	})

	t.Run("check belum terdaftar", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodGet, "/users/check?event=CHESS", user, nil)
		body := testutil.WantStatus(t, resp, fiber.StatusOK)
		if body["eventRegistered"] != false {
			t.Fatalf("eventRegistered = %v", body["eventRegistered"])
		}
		if body["fee"] != "50000" {
			t.Fatalf("fee = %v", body["fee"])
		}
	})

	t.Run("check sudah terdaftar", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodGet, "/users/check?event=futsal", user, nil)
		body := testutil.WantStatus(t, resp, fiber.StatusConflict)
		if body["eventRegistered"] != true {
			t.Fatalf("eventRegistered = %v", body["eventRegistered"])
		}
	})
}

func TestAdminListingScopedToOwnEvent(t *testing.T) {
	app, _ := testutil.NewApp(t)
	sadmin := sadminToken(t, app)
	chessAdmin := createEvent(t, app, sadmin, "chess", "panitia@mail.com")
	createEvent(t, app, sadmin, "futsal", "futsal@mail.com")

	budi := userToken(t, app, "budi@mail.com")
	sari := userToken(t, app, "sari@mail.com")
	testutil.WantStatus(t, testutil.Do(t, app, http.MethodPost, "/users/register", budi, individualBody("chess")), fiber.StatusCreated)
	testutil.WantStatus(t, testutil.Do(t, app, http.MethodPost, "/users/register", sari, teamBody("futsal")), fiber.StatusCreated)

	resp := testutil.Do(t, app, http.MethodGet, "/admin/register-details", chessAdmin, nil)
	body := testutil.WantStatus(t, resp, fiber.StatusOK)
	details, _ := body["registerDetails"].([]interface{})
	if len(details) != 1 {
		t.Fatalf("admin chess melihat %d registrasi, want 1", len(details))
	}
	entry, _ := details[0].(map[string]interface{})
	userInfo, _ := entry["user"].(map[string]interface{})
	if userInfo["email"] != "budi@mail.com" {
		t.Fatalf("user.email = %v", userInfo["email"])
	}

	// super admin melihat semuanya
	resp = testutil.Do(t, app, http.MethodGet, "/sadmin/user-registered", sadmin, nil)
	body = testutil.WantStatus(t, resp, fiber.StatusCreated)
	all, _ := body["eventRegistrationDetails"].([]interface{})
	if len(all) != 2 {
		t.Fatalf("sadmin melihat %d registrasi, want 2", len(all))
	}
}

/* ==========================
   APPROVE
========================== */

func TestApprove(t *testing.T) {
	app, db := testutil.NewApp(t)
	sadmin := sadminToken(t, app)
	chessAdmin := createEvent(t, app, sadmin, "chess", "panitia@mail.com")
	futsalAdmin := createEvent(t, app, sadmin, "futsal", "futsal@mail.com")
	user := userToken(t, app, "budi@mail.com")
	testutil.WantStatus(t, testutil.Do(t, app, http.MethodPost, "/users/register", user, individualBody("chess")), fiber.StatusCreated)

	var reg registrationModel.RegistrationModel
	if err := db.First(&reg).Error; err != nil {
		t.Fatalf("lookup: %v", err)
	}
	path := "/admin/approve/" + strconv.Itoa(int(reg.ID))

	t.Run("id bukan angka", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodPut, "/admin/approve/abc", chessAdmin, fiber.Map{"approved": true})
		testutil.WantStatus(t, resp, fiber.StatusBadRequest)
	})

	t.Run("approved bukan boolean", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodPut, path, chessAdmin, fiber.Map{})
		body := testutil.WantStatus(t, resp, fiber.StatusBadRequest)
		if body["message"] != "approved must be a boolean" {
			t.Fatalf("message = %v", body["message"])
		}
	})

	t.Run("registrasi tidak ada", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodPut, "/admin/approve/9999", chessAdmin, fiber.Map{"approved": true})
		testutil.WantStatus(t, resp, fiber.StatusNotFound)
	})

	t.Run("admin event lain ditolak", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodPut, path, futsalAdmin, fiber.Map{"approved": true})
		testutil.WantStatus(t, resp, fiber.StatusForbidden)
	})

	t.Run("toggle bolak-balik", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodPut, path, chessAdmin, fiber.Map{"approved": true})
		testutil.WantStatus(t, resp, fiber.StatusOK)

		var got registrationModel.RegistrationModel
		if err := db.First(&got, reg.ID).Error; err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if !got.Approved {
			t.Fatal("approved tidak berubah jadi true")
		}

		// tidak ada aturan transisi: boleh dibatalkan lagi
		resp = testutil.Do(t, app, http.MethodPut, path, chessAdmin, fiber.Map{"approved": false})
		testutil.WantStatus(t, resp, fiber.StatusOK)
		if err := db.First(&got, reg.ID).Error; err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if got.Approved {
			t.Fatal("approved tidak kembali false")
		}
	})

	t.Run("super admin tanpa scope", func(t *testing.T) {
		resp := testutil.Do(t, app, http.MethodPut, "/sadmin/approve/"+strconv.Itoa(int(reg.ID)), sadmin, fiber.Map{"approved": true})
		testutil.WantStatus(t, resp, fiber.StatusOK)
	})
}
