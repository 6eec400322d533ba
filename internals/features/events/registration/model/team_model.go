package model

import (
	"gorm.io/datatypes"
)

// TeamModel hanya ada untuk registrasi dengan individual=false.
// 1:1 dengan registrasinya dan dibuat dalam transaksi yang sama —
// tim tanpa registrasi (atau sebaliknya) tidak boleh pernah ada.
type TeamModel struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	TeamName       string         `gorm:"size:100;not null" json:"teamName"`
	Players        datatypes.JSON `gorm:"not null" json:"players"`
	RegistrationID uint           `gorm:"uniqueIndex;not null" json:"registration_id"`
}

func (TeamModel) TableName() string {
	return "teams"
}
