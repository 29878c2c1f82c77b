// Package content implements the versioned content model shared by dorm
// reviews, dorm questions, question answers and campus announcements.
//
// Items are never edited in place. An edit creates a successor row and
// retires the original, forming a predecessor chain that listings resolve
// into the item's edit history. Ratings follow the head of the chain.
package content

import (
	"errors"

	"dormlife/internal/apperr"
	"dormlife/internal/models"
	"dormlife/internal/ratings"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create validates and stores a new, non-retired content item authored
// by actor.
func (s *Service) Create(actor *models.Student, kind models.ContentKind, f Fields) (*models.ContentItem, error) {
	rules, ok := rulesByKind[kind]
	if !ok {
		return nil, apperr.NewValidationError("kind", "unknown content kind")
	}
	if rules.adminOnly && !actor.Admin {
		return nil, apperr.ErrUnauthorized
	}
	if rules.suspendable && actor.Suspended() {
		return nil, apperr.ErrUnauthorized
	}
	if err := rules.validate(f, true); err != nil {
		return nil, err
	}

	// Referenced dorms and questions must exist. A question with no dorm
	// is a general question.
	if f.DormID != nil {
		var count int64
		s.db.Model(&models.Dorm{}).Where("id = ?", *f.DormID).Count(&count)
		if count == 0 {
			return nil, apperr.ErrNotFound
		}
	}
	if f.QuestionID != nil {
		var count int64
		s.db.Model(&models.ContentItem{}).
			Where("id = ? AND kind = ? AND retired = ?", *f.QuestionID, models.KindQuestion, false).
			Count(&count)
		if count == 0 {
			return nil, apperr.ErrNotFound
		}
	}

	item := models.ContentItem{
		Kind:        kind,
		AuthorID:    actor.ID,
		IsAnonymous: rules.anonymousDefault,
	}
	applyFields(&item, f)

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Edit supersedes a non-retired item with a new version. The successor
// carries forward every field not present in f, the original is retired
// and its ratings are re-pointed so each voter's standing vote survives.
// Non-admins can only edit their own items and see "not found" otherwise.
func (s *Service) Edit(actor *models.Student, kind models.ContentKind, id uint, f Fields) (*models.ContentItem, error) {
	rules, ok := rulesByKind[kind]
	if !ok {
		return nil, apperr.NewValidationError("kind", "unknown content kind")
	}
	if rules.adminOnly && !actor.Admin {
		return nil, apperr.ErrUnauthorized
	}
	if rules.suspendable && actor.Suspended() {
		return nil, apperr.ErrUnauthorized
	}
	if err := rules.validate(f, false); err != nil {
		return nil, err
	}

	original, err := s.lookup(actor, kind, id)
	if err != nil {
		return nil, err
	}
	if original.Retired {
		return nil, apperr.ErrConflict
	}

	successor := models.ContentItem{
		Kind:          original.Kind,
		AuthorID:      original.AuthorID,
		Title:         original.Title,
		Body:          original.Body,
		DormID:        original.DormID,
		QuestionID:    original.QuestionID,
		IsAnonymous:   original.IsAnonymous,
		IsPinned:      original.IsPinned,
		PredecessorID: &original.ID,
	}
	applyFields(&successor, f)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ContentItem{}).Where("id = ?", original.ID).
			Update("retired", true).Error; err != nil {
			return err
		}
		if err := tx.Create(&successor).Error; err != nil {
			return err
		}
		if rules.ratingKind != "" {
			return ratings.Repoint(tx, rules.ratingKind, original.ID, successor.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &successor, nil
}

// Remove deletes a non-retired item together with its whole edit history
// chain. Ratings are left behind; the targets they reference are gone and
// they no longer contribute to any score.
func (s *Service) Remove(actor *models.Student, kind models.ContentKind, id uint) error {
	item, err := s.lookup(actor, kind, id)
	if err != nil {
		return err
	}
	if item.Retired {
		return apperr.ErrConflict
	}

	ids, err := s.chainIDs(item)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("id IN ?", ids).Delete(&models.ContentItem{}).Error
	})
}

// Vote records actor's vote on an item of the given kind. Voting twice
// replaces the previous vote instead of stacking.
func (s *Service) Vote(actor *models.Student, kind models.ContentKind, id uint, d ratings.Direction) error {
	rules, ok := rulesByKind[kind]
	if !ok || rules.ratingKind == "" {
		return apperr.NewValidationError("kind", "cannot be voted on")
	}

	var count int64
	s.db.Model(&models.ContentItem{}).Where("id = ? AND kind = ?", id, kind).Count(&count)
	if count == 0 {
		return apperr.ErrNotFound
	}

	return ratings.Upsert(s.db, actor.ID, rules.ratingKind, id, d)
}

// lookup scopes the query to the actor's own items unless they are an
// admin, so non-owners cannot distinguish "absent" from "not yours".
func (s *Service) lookup(actor *models.Student, kind models.ContentKind, id uint) (*models.ContentItem, error) {
	q := s.db.Where("id = ? AND kind = ?", id, kind)
	if !actor.Admin {
		q = q.Where("author_id = ?", actor.ID)
	}

	var item models.ContentItem
	if err := q.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// chainIDs collects the item's id plus every id reachable through the
// predecessor chain. The visited set guards against a corrupted cycle.
func (s *Service) chainIDs(item *models.ContentItem) ([]uint, error) {
	ids := []uint{item.ID}
	visited := map[uint]bool{item.ID: true}

	next := item.PredecessorID
	for next != nil && !visited[*next] {
		visited[*next] = true
		ids = append(ids, *next)

		var prev models.ContentItem
		err := s.db.Select("id, predecessor_id").First(&prev, *next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break // dangling pointer, delete what we found
		}
		if err != nil {
			return nil, err
		}
		next = prev.PredecessorID
	}
	return ids, nil
}

func applyFields(item *models.ContentItem, f Fields) {
	if f.Title != nil {
		item.Title = *f.Title
	}
	if f.Body != nil {
		item.Body = *f.Body
	}
	if f.DormID != nil {
		item.DormID = f.DormID
	}
	if f.QuestionID != nil {
		item.QuestionID = f.QuestionID
	}
	if f.IsAnonymous != nil {
		item.IsAnonymous = *f.IsAnonymous
	}
	if f.IsPinned != nil {
		item.IsPinned = *f.IsPinned
	}
}
