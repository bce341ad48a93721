package model

import (
	"time"
)

type Theme struct {
	ID             uint64  `gorm:"primaryKey" json:"id"`
	UserID         *uint64 `gorm:"index:idx_theme_user" json:"user_id"` // null = 系统主题
	Name           string  `gorm:"type:varchar(100);not null" json:"name"`
	Description    *string `gorm:"type:text" json:"description"`
	PrimaryColor   string  `gorm:"type:varchar(7);not null;default:'#FF5733'" json:"primary_color"`
	SecondaryColor string  `gorm:"type:varchar(7);not null;default:'#FFC300'" json:"secondary_color"`
	BgColor        string  `gorm:"type:varchar(7);not null;default:'#F5F5F5'" json:"bg_color"`
	BgImageMediaID *uint64 `gorm:"index:idx_theme_bg_media" json:"bg_image_media_id"`
	BgImageURL     *string `gorm:"type:varchar(500)" json:"bg_image_url"`
	CssClass       string  `gorm:"type:varchar(100);not null" json:"css_class"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Theme) TableName() string {
	return "themes"
}

// IsSystem 系统主题不属于任何用户，全局共享且不可修改
func (t *Theme) IsSystem() bool {
	return t.UserID == nil
}
