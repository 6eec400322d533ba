package model

import (
	"time"
)

type SuperAdminModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SuperAdminModel) TableName() string {
	return "super_admins"
}

func (s *SuperAdminModel) AccountEmail() string   { return s.Email }
func (s *SuperAdminModel) AccountName() string    { return s.Name }
func (s *SuperAdminModel) PasswordDigest() string { return s.Password }
