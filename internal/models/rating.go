package models

import (
	"time"
)

type RatingTargetKind string

const (
	TargetDorm     RatingTargetKind = "dorm"
	TargetReview   RatingTargetKind = "review"
	TargetQuestion RatingTargetKind = "question"
	TargetAnswer   RatingTargetKind = "answer"
)

// Rating is one student's vote on one target. The composite unique index
// makes the storage layer the arbiter when two votes from the same student
// race: the upsert collapses them to a single row.
type Rating struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	StudentID  uint             `gorm:"not null;uniqueIndex:idx_rating_target" json:"student_id"`
	TargetKind RatingTargetKind `gorm:"size:20;not null;uniqueIndex:idx_rating_target" json:"target_kind"`
	TargetID   uint             `gorm:"not null;uniqueIndex:idx_rating_target;index" json:"target_id"`
	Value      int              `gorm:"not null" json:"value"` // +1, 0 or -1
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
