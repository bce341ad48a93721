package dto

import "time"

type MediaDTO struct {
	ID        uint64    `json:"id"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	MimeType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachedMediaDTO 与页面/邀请关联的媒体，附带排序值
type AttachedMediaDTO struct {
	MediaDTO
	SortOrder int `json:"sort_order"`
}
