package model

import "time"

type Article struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Section   string     `gorm:"size:64;not null;index" json:"section"`
	Images    StringList `gorm:"type:text" json:"images"`
	Videos    StringList `gorm:"type:text" json:"videos"`
	CreatedAt time.Time  `json:"created_at"`
}
