package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// StringList JSON 列，按 json 数组存储
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

type Invitation struct {
	ID          uint64         `gorm:"primaryKey" json:"id"`
	UserID      uint64         `gorm:"not null;uniqueIndex:idx_invitation_user_slug" json:"user_id"`
	Slug        string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_invitation_user_slug" json:"slug"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	YesMessage  string         `gorm:"type:varchar(100);not null" json:"yes_message"`
	NoMessages  StringList     `gorm:"type:json" json:"no_messages"`
	IsPublished bool           `gorm:"not null;default:0;index:idx_invitation_published" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Invitation) TableName() string {
	return "invitations"
}

// IsPubliclyVisible 公开路径只暴露已发布且未删除的邀请
func (i *Invitation) IsPubliclyVisible() bool {
	return i.IsPublished && !i.DeletedAt.Valid
}
