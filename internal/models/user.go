package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleDispatcher UserRole = "dispatcher"
	RoleViewer     UserRole = "viewer"
)

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
}

// может ли пользователь создавать/удалять назначения в графике
func (u User) CanManageSchedule() bool {
	return u.Role == RoleAdmin || u.Role == RoleDispatcher
}
