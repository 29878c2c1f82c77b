package models

import (
	"time"
)

type ContentKind string

const (
	KindReview       ContentKind = "review"
	KindQuestion     ContentKind = "question"
	KindAnswer       ContentKind = "answer"
	KindAnnouncement ContentKind = "announcement"
)

// ContentItem is the single table behind every author-attributed piece of
// text content. Kind decides which of the optional columns are meaningful:
// reviews carry a dorm reference, questions an optional one (NULL means the
// question is general), answers point at their question, announcements can
// be pinned.
//
// Editing never mutates a row. A successor row is created with
// PredecessorID pointing at the edited row, which is flagged Retired.
// Retired rows are excluded from listings and only reachable by walking
// the predecessor chain of the current head.
type ContentItem struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Kind          ContentKind  `gorm:"size:20;not null;index" json:"kind"`
	AuthorID      uint         `gorm:"not null;index" json:"author_id"`
	Author        Student      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title         string       `gorm:"size:120" json:"title"`
	Body          string       `gorm:"size:2000" json:"body"` // Markdown supported
	DormID        *uint        `gorm:"index" json:"dorm_id"`
	QuestionID    *uint        `gorm:"index" json:"question_id"`
	IsAnonymous   bool         `gorm:"default:false" json:"is_anonymous"`
	IsPinned      bool         `gorm:"default:false" json:"is_pinned"`
	Retired       bool         `gorm:"not null;default:false;index" json:"retired"`
	PredecessorID *uint        `gorm:"index" json:"predecessor_id"`
	Predecessor   *ContentItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
