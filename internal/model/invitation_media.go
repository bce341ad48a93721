package model

type InvitationMedia struct {
	InvitationID uint64 `gorm:"primaryKey" json:"invitation_id"`
	MediaID      uint64 `gorm:"primaryKey" json:"media_id"`
}

func (InvitationMedia) TableName() string {
	return "invitation_media"
}
