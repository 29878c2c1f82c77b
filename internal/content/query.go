package content

import (
	"strings"
	"time"

	"dormlife/internal/models"
	"dormlife/internal/ratings"
	"dormlife/internal/utils"
)

// ListFilter narrows a listing. DormID and GeneralOnly are mutually
// exclusive; GeneralOnly selects questions that belong to no dorm.
type ListFilter struct {
	DormID      *uint
	GeneralOnly bool
	QuestionID  *uint
	Search      string
}

// AuthorView is the author identity attached to a listing entry. It is
// omitted entirely for anonymous items.
type AuthorView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	GradYear int    `json:"grad_year"`
}

// HistoryEntry is a prior version of an item. It intentionally carries no
// author: history entries always share the current item's author.
type HistoryEntry struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type ItemView struct {
	ID            uint               `json:"id"`
	Kind          models.ContentKind `json:"kind"`
	Title         string             `json:"title,omitempty"`
	Body          string             `json:"body"`
	BodyHTML      string             `json:"body_html"`
	DormID        *uint              `json:"dorm_id,omitempty"`
	QuestionID    *uint              `json:"question_id,omitempty"`
	IsAnonymous   bool               `json:"is_anonymous"`
	IsPinned      bool               `json:"is_pinned,omitempty"`
	Author        *AuthorView        `json:"author,omitempty"`
	Score         int                `json:"score"`
	PreviousEdits []HistoryEntry     `json:"previous_edits"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// List returns the current (non-retired) items of one kind with author
// info, aggregate score and resolved edit history attached. Ordering is
// stable: insertion order, pinned announcements first.
func (s *Service) List(kind models.ContentKind, f ListFilter) ([]ItemView, error) {
	q := s.db.Where("kind = ? AND retired = ?", kind, false)

	if f.DormID != nil {
		q = q.Where("dorm_id = ?", *f.DormID)
	} else if f.GeneralOnly {
		q = q.Where("dorm_id IS NULL")
	}
	if f.QuestionID != nil {
		q = q.Where("question_id = ?", *f.QuestionID)
	}
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(body) LIKE ?", needle, needle)
	}

	order := "created_at ASC, id ASC"
	if kind == models.KindAnnouncement {
		order = "is_pinned DESC, " + order
	}

	var items []models.ContentItem
	if err := q.Preload("Author").Order(order).Find(&items).Error; err != nil {
		return nil, err
	}

	scores, err := s.scoresFor(kind, items)
	if err != nil {
		return nil, err
	}
	histories, err := s.resolveHistories(items)
	if err != nil {
		return nil, err
	}

	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		v := ItemView{
			ID:            it.ID,
			Kind:          it.Kind,
			Title:         it.Title,
			Body:          it.Body,
			BodyHTML:      utils.RenderMarkdown(it.Body),
			DormID:        it.DormID,
			QuestionID:    it.QuestionID,
			IsAnonymous:   it.IsAnonymous,
			IsPinned:      it.IsPinned,
			Score:         scores[it.ID],
			PreviousEdits: histories[it.ID],
			CreatedAt:     it.CreatedAt,
			UpdatedAt:     it.UpdatedAt,
		}
		if v.PreviousEdits == nil {
			v.PreviousEdits = []HistoryEntry{}
		}
		if !it.IsAnonymous {
			v.Author = &AuthorView{
				ID:       it.Author.ID,
				Username: it.Author.Username,
				Name:     it.Author.Name,
				GradYear: it.Author.GradYear,
			}
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *Service) scoresFor(kind models.ContentKind, items []models.ContentItem) (map[uint]int, error) {
	rk := rulesByKind[kind].ratingKind
	if rk == "" || len(items) == 0 {
		return map[uint]int{}, nil
	}
	ids := make([]uint, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ratings.SumAll(s.db, rk, ids)
}

// resolveHistories walks the predecessor chains of all listed items in
// batched rounds, one query per chain depth level rather than one per
// item. Entries come back oldest first.
func (s *Service) resolveHistories(items []models.ContentItem) (map[uint][]HistoryEntry, error) {
	out := make(map[uint][]HistoryEntry)

	frontier := make(map[uint]uint) // predecessor id -> head id
	visited := make(map[uint]bool)
	for _, it := range items {
		if it.PredecessorID != nil {
			frontier[*it.PredecessorID] = it.ID
			visited[*it.PredecessorID] = true
		}
	}

	for len(frontier) > 0 {
		ids := make([]uint, 0, len(frontier))
		for id := range frontier {
			ids = append(ids, id)
		}

		var prev []models.ContentItem
		if err := s.db.Where("id IN ?", ids).Find(&prev).Error; err != nil {
			return nil, err
		}
		byID := make(map[uint]models.ContentItem, len(prev))
		for _, p := range prev {
			byID[p.ID] = p
		}

		next := make(map[uint]uint)
		for predID, headID := range frontier {
			p, ok := byID[predID]
			if !ok {
				continue // dangling pointer, chain ends here
			}
			out[headID] = append(out[headID], HistoryEntry{
				ID:        p.ID,
				Title:     p.Title,
				Body:      p.Body,
				CreatedAt: p.CreatedAt,
			})
			if p.PredecessorID != nil && !visited[*p.PredecessorID] {
				visited[*p.PredecessorID] = true
				next[*p.PredecessorID] = headID
			}
		}
		frontier = next
	}

	// The walk collects newest first; listings show oldest first.
	for id, entries := range out {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		out[id] = entries
	}
	return out, nil
}
