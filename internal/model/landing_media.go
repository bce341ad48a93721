package model

type LandingMedia struct {
	LandingID uint64 `gorm:"primaryKey" json:"landing_id"`
	MediaID   uint64 `gorm:"primaryKey" json:"media_id"`
	SortOrder int    `gorm:"not null;default:1;index:idx_landing_media_sort" json:"sort_order"`
}

func (LandingMedia) TableName() string {
	return "landing_media"
}
