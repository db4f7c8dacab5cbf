package models

import "time"

type AdminUser struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	LastPasswordChange *time.Time `json:"last_password_change,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// AdminUserPublic — то, что уходит клиенту в login/verify (без хеша и служебных полей)
type AdminUserPublic struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u *AdminUser) Public() AdminUserPublic {
	return AdminUserPublic{ID: u.ID, Email: u.Email}
}
