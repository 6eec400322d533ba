package controller_test

import (
	"testing"

	"gorm.io/gorm"

	eventModel "eventku_backend/internals/features/events/event/model"
	authModel "eventku_backend/internals/features/users/auth/model"
)

// seedAdminEvent menanam event + admin-nya langsung ke DB
// (jalur normalnya lewat POST /sadmin/event-admin, diuji di paket event).
func seedAdminEvent(t *testing.T, db *gorm.DB, slug, adminEmail, passwordHash string) (*eventModel.EventModel, *authModel.AdminModel) {
	t.Helper()

	ev := eventModel.EventModel{
		Event:       slug,
		Date:        "2026-10-01",
		Description: "Turnamen " + slug,
		Fee:         "50000",
	}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	admin := authModel.AdminModel{
		Name:     "Panitia " + slug,
		Email:    adminEmail,
		Password: passwordHash,
		EventID:  ev.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return &ev, &admin
}
