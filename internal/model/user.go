package model

import "time"

// User is an account identity. The credential hash lives in Password (1:1),
// never on this struct.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex:ux_user_email;not null"`
	ImageURL  string    `json:"image_url" gorm:"type:varchar(512)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Password holds a user's bcrypt hash, owned 1:1 by the user row.
type Password struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"type:varchar(36);uniqueIndex:ux_password_user;not null"`
	Hash      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Password) TableName() string { return "passwords" }
