package notification

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("notification not found")

// Type values mirror what the clients key their icons on.
const (
	TypeDueSoon  = "due_soon"
	TypeOverdue  = "overdue"
	TypeBorrowed = "borrowed"
)

type Notification struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string         `gorm:"size:36;uniqueIndex:ux_notifications_nid" json:"notification_id"`
	UserID         string         `gorm:"size:32;index" json:"user_id"`
	Title          string         `gorm:"size:255" json:"title"`
	Message        string         `gorm:"type:text" json:"message"`
	Type           string         `gorm:"size:32" json:"type"`
	RelatedID      string         `gorm:"size:36" json:"related_id"`
	Read           bool           `gorm:"default:false" json:"read"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
