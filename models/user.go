package models

import "time"

// User 对应数据库中的 users 表
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex:idx_email;not null;column:email" json:"email"`
	Username  string    `gorm:"size:64;not null;column:username" json:"username"`
	Password  string    `gorm:"size:255;not null;column:password" json:"-"` // Password: bcrypt 哈希，永不下发
	IsAdmin   bool      `gorm:"default:false;not null;column:is_admin" json:"is_admin"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
