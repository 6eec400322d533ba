package model

import (
	"time"

	eventModel "eventku_backend/internals/features/events/event/model"
)

// AdminModel = admin event. Satu admin selalu terikat tepat satu event
// (dibuat atomik bersama event-nya oleh super admin, tidak pernah berdiri sendiri).
type AdminModel struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	Name      string                `gorm:"size:100;not null" json:"name"`
	Email     string                `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string                `gorm:"not null" json:"-"`
	EventID   uint                  `gorm:"uniqueIndex;not null" json:"event_id"`
	Event     eventModel.EventModel `gorm:"foreignKey:EventID" json:"event"`
	CreatedAt time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (a *AdminModel) AccountEmail() string   { return a.Email }
func (a *AdminModel) AccountName() string    { return a.Name }
func (a *AdminModel) PasswordDigest() string { return a.Password }
