package model

import "time"

// User 是映射 users 表的结构体，密码只以 bcrypt 哈希形式保存
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName 强制指定表名
func (User) TableName() string {
	return "users"
}

// PublicUser 是唯一允许返回给客户端的用户视图 (不含密码哈希)
type PublicUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Public 只保留 id 和 email
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Email: u.Email}
}
