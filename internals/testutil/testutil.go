// Package testutil menyiapkan app Fiber + DB SQLite in-memory untuk test end-to-end.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventku_backend/internals/configs"
	database "eventku_backend/internals/databases"
	routes "eventku_backend/internals/route"
)

// Secret memegang JWT secret yang dipakai semua test end-to-end.
const Secret = "secret-khusus-test"

// NewApp membuat app lengkap (routes + DB in-memory) untuk satu test.
// Tiap test dapat DSN sendiri supaya state tidak bocor antar test;
// cache=shared wajib karena GORM membuka lebih dari satu koneksi.
func NewApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	prev := configs.JWTSecret
	configs.JWTSecret = Secret
	t.Cleanup(func() { configs.JWTSecret = prev })

	dsn := "file:" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql pool: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.EnsureGlobalSetting(db); err != nil {
		t.Fatalf("seed global setting: %v", err)
	}

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

// Do mengirim request JSON (body boleh nil) dan mengembalikan respons.
// token tanpa prefix "Bearer " — helper ini yang menambahkan.
func Do(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// Decode membaca body respons ke map generik.
func Decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	out := map[string]interface{}{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

// WantStatus memastikan status respons; kalau beda, body ikut dicetak.
func WantStatus(t *testing.T, resp *http.Response, want int) map[string]interface{} {
	t.Helper()
	body := Decode(t, resp)
	if resp.StatusCode != want {
		t.Fatalf("status = %d, want %d (body: %v)", resp.StatusCode, want, body)
	}
	return body
}
