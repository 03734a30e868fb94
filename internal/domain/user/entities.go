package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID    string         `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Username  string         `gorm:"size:64" json:"username"`
	Email     string         `gorm:"size:255" json:"email"`
	Telephone string         `gorm:"size:32" json:"telephone"`
	IsAdmin   bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
