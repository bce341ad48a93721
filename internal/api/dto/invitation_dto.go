package dto

import "time"

type CreateInvitationDTO struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=120"`
	Slug        *string  `json:"slug" validate:"omitempty,min=1,max=120"`
	YesMessage  *string  `json:"yes_message" validate:"omitempty,max=255"`
	NoMessages  []string `json:"no_messages" validate:"omitempty,min=1,max=10,dive,max=255"`
	IsPublished *bool    `json:"is_published"`
}

type UpdateInvitationDTO struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=120"`
	Slug        *string  `json:"slug" validate:"omitempty,min=1,max=120"`
	YesMessage  *string  `json:"yes_message" validate:"omitempty,max=255"`
	NoMessages  []string `json:"no_messages" validate:"omitempty,min=1,max=10,dive,max=255"`
	IsPublished *bool    `json:"is_published"`
}

type InvitationDTO struct {
	ID          uint64     `json:"id"`
	UserID      uint64     `json:"user_id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	YesMessage  string     `json:"yes_message"`
	NoMessages  []string   `json:"no_messages"`
	IsPublished bool       `json:"is_published"`
	Media       []MediaDTO `json:"media,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
