package model

import (
	"time"

	eventModel "eventku_backend/internals/features/events/event/model"
	authModel "eventku_backend/internals/features/users/auth/model"
)

// RegistrationModel = satu submission user terhadap satu event.
// Gender nullable: hanya terisi untuk pendaftaran individual,
// pendaftaran tim selalu NULL (perilaku sumber lama dipertahankan).
type RegistrationModel struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"size:100;not null" json:"name"`
	Gender        *string `gorm:"size:10" json:"gender"`
	Contact       string  `gorm:"size:50;not null" json:"contact"`
	Address       string  `gorm:"not null" json:"address"`
	Individual    bool    `gorm:"not null" json:"individual"`
	BankingName   string  `gorm:"size:100;not null" json:"bankingName"`
	TransactionID string  `gorm:"size:100;not null" json:"transactionId"`
	Approved      bool    `gorm:"not null;default:false" json:"approved"`

	UserID  uint                  `gorm:"not null;index" json:"user_id"`
	User    authModel.UserModel   `gorm:"foreignKey:UserID" json:"user"`
	EventID uint                  `gorm:"not null;index" json:"event_id"`
	Event   eventModel.EventModel `gorm:"foreignKey:EventID" json:"event"`
	Team    *TeamModel            `gorm:"foreignKey:RegistrationID" json:"team,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
