package dto

import "time"

// CreateThemeDTO multipart 表单，背景图文件在 handler 层单独读取
type CreateThemeDTO struct {
	Name           string  `form:"name" validate:"required,min=1,max=60"`
	Description    *string `form:"description" validate:"omitempty,max=255"`
	PrimaryColor   *string `form:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor *string `form:"secondary_color" validate:"omitempty,hexcolor"`
	BgColor        *string `form:"bg_color" validate:"omitempty,hexcolor"`
	CssClass       *string `form:"css_class" validate:"omitempty,max=60"`
	// BgImageMediaID 引用已有媒体作为背景图，与文件上传二选一
	BgImageMediaID *uint64 `form:"bg_image_media_id"`
}

type UpdateThemeDTO struct {
	Name           *string `form:"name" validate:"omitempty,min=1,max=60"`
	Description    *string `form:"description" validate:"omitempty,max=255"`
	PrimaryColor   *string `form:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor *string `form:"secondary_color" validate:"omitempty,hexcolor"`
	BgColor        *string `form:"bg_color" validate:"omitempty,hexcolor"`
	CssClass       *string `form:"css_class" validate:"omitempty,max=60"`
	// BgImageMediaID 字段缺省不改背景图，空串清除背景图，数字引用已有媒体
	BgImageMediaID *string `form:"bg_image_media_id"`
}

type ThemeDTO struct {
	ID             uint64    `json:"id"`
	UserID         *uint64   `json:"user_id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	BgColor        string    `json:"bg_color"`
	BgImageURL     *string   `json:"bg_image_url"`
	CssClass       string    `json:"css_class"`
	IsSystem       bool      `json:"is_system"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
