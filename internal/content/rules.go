package content

import (
	"fmt"

	"dormlife/internal/apperr"
	"dormlife/internal/models"
)

// kindRules is the per-kind dispatch table: minimum lengths, required
// references and which policies apply.
type kindRules struct {
	titleMin         int
	bodyMin          int
	requiresDorm     bool
	requiresQuestion bool
	anonymousDefault bool
	adminOnly        bool
	suspendable      bool // posting bans apply to this kind
	ratingKind       models.RatingTargetKind
}

var rulesByKind = map[models.ContentKind]kindRules{
	models.KindReview: {
		titleMin:     5,
		bodyMin:      20,
		requiresDorm: true,
		ratingKind:   models.TargetReview,
	},
	models.KindQuestion: {
		titleMin:         5,
		anonymousDefault: true,
		ratingKind:       models.TargetQuestion,
	},
	models.KindAnswer: {
		bodyMin:          2,
		requiresQuestion: true,
		suspendable:      true,
		ratingKind:       models.TargetAnswer,
	},
	models.KindAnnouncement: {
		titleMin:  1,
		bodyMin:   1,
		adminOnly: true,
	},
}

const bodyMax = 2000

// Fields carries the caller-supplied attributes of a content item. Nil
// means "not provided": required on create for mandatory fields, carried
// forward from the original on edit.
type Fields struct {
	Title       *string
	Body        *string
	DormID      *uint
	QuestionID  *uint
	IsAnonymous *bool
	IsPinned    *bool
}

func (r kindRules) validate(f Fields, creating bool) error {
	if f.Title != nil || (creating && r.titleMin > 0) {
		title := ""
		if f.Title != nil {
			title = *f.Title
		}
		if len(title) < r.titleMin {
			return apperr.NewValidationError("title",
				fmt.Sprintf("must be at least %d characters", r.titleMin))
		}
	}
	if f.Body != nil || (creating && r.bodyMin > 0) {
		body := ""
		if f.Body != nil {
			body = *f.Body
		}
		if len(body) < r.bodyMin {
			return apperr.NewValidationError("body",
				fmt.Sprintf("must be at least %d characters", r.bodyMin))
		}
		if len(body) > bodyMax {
			return apperr.NewValidationError("body",
				fmt.Sprintf("must be at most %d characters", bodyMax))
		}
	}
	if creating && r.requiresDorm && f.DormID == nil {
		return apperr.NewValidationError("dorm", "is required")
	}
	if creating && r.requiresQuestion && f.QuestionID == nil {
		return apperr.NewValidationError("question", "is required")
	}
	return nil
}
