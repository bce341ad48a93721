package model

import (
	"time"

	"gorm.io/gorm"
)

type Landing struct {
	ID              uint64         `gorm:"primaryKey" json:"id"`
	UserID          uint64         `gorm:"not null;uniqueIndex:idx_landing_user_slug" json:"user_id"`
	ThemeID         uint64         `gorm:"not null;index:idx_landing_theme" json:"theme_id"`
	Slug            string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_landing_user_slug" json:"slug"`
	CoupleNames     string         `gorm:"type:varchar(200);not null" json:"couple_names"`
	AnniversaryDate time.Time      `gorm:"type:date;not null" json:"anniversary_date"`
	BioText         *string        `gorm:"type:longtext" json:"bio_text"`
	IsPublished     bool           `gorm:"not null;default:1;index:idx_landing_published" json:"is_published"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	// 关联关系，媒体经 landing_media 带排序值单独查询
	Theme *Theme `gorm:"foreignKey:ThemeID;references:ID" json:"theme,omitempty"`
}

func (Landing) TableName() string {
	return "landings"
}
