package dto

import "time"

type CreateLandingDTO struct {
	ThemeID         uint64  `json:"theme_id" validate:"required"`
	CoupleNames     string  `json:"couple_names" validate:"required,min=1,max=120"`
	Slug            *string `json:"slug" validate:"omitempty,min=1,max=120"`
	AnniversaryDate string  `json:"anniversary_date" validate:"required,datetime=2006-01-02"`
	BioText         *string `json:"bio_text" validate:"omitempty,max=2000"`
	IsPublished     *bool   `json:"is_published"`
}

type UpdateLandingDTO struct {
	ThemeID         *uint64 `json:"theme_id"`
	CoupleNames     *string `json:"couple_names" validate:"omitempty,min=1,max=120"`
	Slug            *string `json:"slug" validate:"omitempty,min=1,max=120"`
	AnniversaryDate *string `json:"anniversary_date" validate:"omitempty,datetime=2006-01-02"`
	BioText         *string `json:"bio_text" validate:"omitempty,max=2000"`
	IsPublished     *bool   `json:"is_published"`
}

type LandingDTO struct {
	ID              uint64             `json:"id"`
	UserID          uint64             `json:"user_id"`
	ThemeID         uint64             `json:"theme_id"`
	Slug            string             `json:"slug"`
	CoupleNames     string             `json:"couple_names"`
	AnniversaryDate string             `json:"anniversary_date"`
	BioText         *string            `json:"bio_text"`
	IsPublished     bool               `json:"is_published"`
	Theme           *ThemeDTO          `json:"theme,omitempty"`
	Media           []AttachedMediaDTO `json:"media,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       *time.Time         `json:"deleted_at,omitempty"`
}

type AttachMediaDTO struct {
	MediaID   uint64 `json:"media_id" validate:"required"`
	SortOrder *int   `json:"sort_order" validate:"omitempty,min=1"`
}

type ReorderItemDTO struct {
	MediaID   uint64 `json:"media_id" validate:"required"`
	SortOrder int    `json:"sort_order" validate:"required,min=1"`
}

type ReorderDTO struct {
	Items []ReorderItemDTO `json:"items" validate:"required,min=1,dive"`
}
