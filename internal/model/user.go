package model

import (
	"time"

	"gorm.io/datatypes"
)

// User types.
const (
	UserTypeAdmin      = "admin"
	UserTypeInstructor = "instructor"
	UserTypeStudent    = "student"
)

// Roles.
const (
	RoleUser       = "ROLE_USER"
	RoleAdmin      = "ROLE_ADMIN"
	RoleInstructor = "ROLE_INSTRUCTOR"
)

// User represents a registered platform user.
type User struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Email        string                      `json:"email" gorm:"uniqueIndex;size:180;not null"`
	Roles        datatypes.JSONSlice[string] `json:"roles" gorm:"not null"`
	PasswordHash string                      `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	FirstName    string                      `json:"firstName" gorm:"size:100;not null"`
	LastName     string                      `json:"lastName" gorm:"size:100;not null"`
	Avatar       *string                     `json:"avatar,omitempty" gorm:"size:255"`
	Bio          *string                     `json:"bio,omitempty" gorm:"type:text"`
	Phone        *string                     `json:"phone,omitempty" gorm:"size:20"`
	Country      *string                     `json:"country,omitempty" gorm:"size:100;index"`
	City         *string                     `json:"city,omitempty" gorm:"size:100"`
	Language     string                      `json:"language" gorm:"size:10;not null;default:'en'"`
	IsActive     bool                        `json:"isActive" gorm:"not null;index"`
	IsVerified   bool                        `json:"isVerified" gorm:"not null"`
	LastLoginAt  *time.Time                  `json:"lastLoginAt,omitempty"`
	UserType     string                      `json:"userType" gorm:"size:50;not null;index"`
	Preferences  datatypes.JSONMap           `json:"preferences,omitempty"`
	SocialLinks  datatypes.JSONMap           `json:"socialLinks,omitempty"`
	CreatedAt    time.Time                   `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time                   `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// TableName overrides the table name used by GORM.
func (User) TableName() string {
	return "users"
}

// NewUser returns an active, unverified student.
func NewUser(email string) *User {
	return &User{
		Email:    email,
		Roles:    datatypes.JSONSlice[string]{},
		Language: "en",
		IsActive: true,
		UserType: UserTypeStudent,
	}
}

// EffectiveRoles returns the stored roles plus ROLE_USER, without duplicates.
func (u *User) EffectiveRoles() []string {
	roles := make([]string, 0, len(u.Roles)+1)
	seen := make(map[string]struct{}, len(u.Roles)+1)
	for _, r := range append([]string(u.Roles), RoleUser) {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}
	return roles
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Stamp sets both timestamps for a row about to be inserted.
func (u *User) Stamp(now time.Time) {
	u.CreatedAt = now
	u.UpdatedAt = now
}

// Touch refreshes the update timestamp. Every mutation path calls it.
func (u *User) Touch(now time.Time) {
	u.UpdatedAt = now
}

// UserStats is the aggregate row over active users.
type UserStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalStudents    int64 `json:"totalStudents"`
	TotalInstructors int64 `json:"totalInstructors"`
	VerifiedUsers    int64 `json:"verifiedUsers"`
}
