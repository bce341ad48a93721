package model

import (
	"time"
)

type Media struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_media_user" json:"user_id"`
	Filename  string    `gorm:"type:varchar(255);not null" json:"filename"`
	Path      string    `gorm:"type:varchar(500);not null" json:"path"`
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`
	MimeType  string    `gorm:"type:varchar(50);not null" json:"mime_type"`
	Size      int64     `gorm:"not null" json:"size"`
	Width     int       `gorm:"not null;default:0" json:"width"`
	Height    int       `gorm:"not null;default:0" json:"height"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Media) TableName() string {
	return "media"
}
