package model

import (
	"time"
)

// UserModel merepresentasikan tabel users di database.
// Password SELALU berisi digest bcrypt, tidak pernah plaintext.
type UserModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) AccountEmail() string   { return u.Email }
func (u *UserModel) AccountName() string    { return u.Name }
func (u *UserModel) PasswordDigest() string { return u.Password }
