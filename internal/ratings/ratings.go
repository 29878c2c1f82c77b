// Package ratings is the store for directional votes. A student has at
// most one rating per target; the aggregate score of a target is always
// the sum of its rating values, computed at read time.
package ratings

import (
	"time"

	"dormlife/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Direction string

const (
	Positive Direction = "POSITIVE"
	Neutral  Direction = "NEUTRAL"
	Negative Direction = "NEGATIVE"
)

// Value maps a direction onto the signed unit stored in the database.
// Anything that is not positive or neutral counts as negative, matching
// the permissive handling of the voting endpoints.
func (d Direction) Value() int {
	switch d {
	case Positive:
		return 1
	case Neutral, "":
		return 0
	default:
		return -1
	}
}

// Upsert records a student's vote on a target. The conflict target is the
// composite unique index on (student, target kind, target id), so two
// concurrent votes from the same student collapse to one row with
// last-write-wins semantics.
func Upsert(db *gorm.DB, studentID uint, kind models.RatingTargetKind, targetID uint, d Direction) error {
	rating := models.Rating{
		StudentID:  studentID,
		TargetKind: kind,
		TargetID:   targetID,
		Value:      d.Value(),
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_id"},
			{Name: "target_kind"},
			{Name: "target_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rating).Error
}

// Sum returns the aggregate score of a single target.
func Sum(db *gorm.DB, kind models.RatingTargetKind, targetID uint) (int, error) {
	var score int
	err := db.Model(&models.Rating{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&score).Error
	return score, err
}

// SumAll returns aggregate scores for many targets of one kind in a
// single grouped query. Targets without ratings are absent from the map.
func SumAll(db *gorm.DB, kind models.RatingTargetKind, targetIDs []uint) (map[uint]int, error) {
	scores := make(map[uint]int, len(targetIDs))
	if len(targetIDs) == 0 {
		return scores, nil
	}

	type row struct {
		TargetID uint
		Score    int
	}
	var rows []row
	err := db.Model(&models.Rating{}).
		Select("target_id, COALESCE(SUM(value), 0) AS score").
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		scores[r.TargetID] = r.Score
	}
	return scores, nil
}

// Repoint moves every rating on one target to another. Used when an edit
// supersedes an item so each voter's standing vote survives the edit.
func Repoint(db *gorm.DB, kind models.RatingTargetKind, fromID, toID uint) error {
	return db.Model(&models.Rating{}).
		Where("target_kind = ? AND target_id = ?", kind, fromID).
		Update("target_id", toID).Error
}

// CountRecentNonNeutral counts a student's non-neutral votes on a kind
// cast since the given time. Backs the dorm vote limit.
func CountRecentNonNeutral(db *gorm.DB, studentID uint, kind models.RatingTargetKind, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Rating{}).
		Where("student_id = ? AND target_kind = ? AND value <> 0 AND created_at > ?", studentID, kind, since).
		Count(&count).Error
	return count, err
}
