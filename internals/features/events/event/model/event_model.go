package model

import (
	"time"
)

// EventModel merepresentasikan tabel events.
// Kolom `event` = slug unik, SELALU lowercase sebelum disimpan/dicari
// supaya lookup case-insensitive.
type EventModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Event       string    `gorm:"size:100;uniqueIndex;not null" json:"event"`
	Date        string    `gorm:"size:50;not null" json:"date"`
	Description string    `gorm:"not null" json:"description"`
	Fee         string    `gorm:"size:20;not null" json:"fee"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
