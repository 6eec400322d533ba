package model

// GlobalSettingID = identitas tetap baris singleton.
const GlobalSettingID uint = 1

// GlobalSettingModel = konfigurasi proses (singleton, id selalu 1).
// Dua gate boolean independen: pendaftaran umum & pendaftaran game.
// Dibaca endpoint status publik, ditulis hanya oleh super admin.
type GlobalSettingModel struct {
	ID                   uint `gorm:"primaryKey" json:"id"`
	RegistrationOpen     bool `gorm:"not null;default:true" json:"registrationOpen"`
	GameRegistrationOpen bool `gorm:"not null;default:true" json:"gameRegistrationOpen"`
}

func (GlobalSettingModel) TableName() string {
	return "global_settings"
}
