package entity

import "time"

type Role string

const (
	RoleViewer  Role = "viewer"
	RoleCreator Role = "creator"
)

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	FullName   string    `json:"full_name"`
	Avatar     string    `json:"avatar,omitempty"`
	CoverImage string    `json:"cover_image,omitempty"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
