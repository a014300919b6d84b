package model

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Nickname     string    `gorm:"size:128" json:"nickname"`
	AvatarURL    string    `gorm:"size:255" json:"avatarUrl"`
	Token        string    `gorm:"size:255;index" json:"-"`
	UpdatedAt    time.Time `json:"updated_at"`
}
