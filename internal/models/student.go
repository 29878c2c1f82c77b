package models

import (
	"time"
)

type Student struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	Username               string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email                  string     `gorm:"uniqueIndex;not null" json:"email"`
	Password               string     `gorm:"not null" json:"-"` // bcrypt hash
	Name                   string     `gorm:"size:100" json:"name"`
	GradYear               int        `json:"grad_year"`
	Admin                  bool       `gorm:"default:false" json:"admin"`
	BannedFromPostingUntil *time.Time `json:"banned_from_posting_until"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// Suspended reports whether the student is currently blocked from posting.
func (s *Student) Suspended() bool {
	return s.BannedFromPostingUntil != nil && s.BannedFromPostingUntil.After(time.Now())
}
