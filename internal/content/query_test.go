package content

import (
	"fmt"
	"strings"
	"testing"

	"dormlife/internal/models"
	"dormlife/internal/ratings"
)

func TestAnonymousItemsHideTheAuthor(t *testing.T) {
	svc, gdb := setupService(t)
	author := newStudent(t, gdb, "alice", false)

	if _, err := svc.Create(author, models.KindQuestion, Fields{
		Title:       strPtr("Is the dining hall open on weekends?"),
		IsAnonymous: boolPtr(true),
	}); err != nil {
		t.Fatalf("create question: %v", err)
	}
	if _, err := svc.Create(author, models.KindQuestion, Fields{
		Title:       strPtr("Where do packages get delivered?"),
		IsAnonymous: boolPtr(false),
	}); err != nil {
		t.Fatalf("create question: %v", err)
	}

	views, err := svc.List(models.KindQuestion, ListFilter{GeneralOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(views))
	}

	for _, v := range views {
		if v.IsAnonymous && v.Author != nil {
			t.Errorf("anonymous item %d leaked author %+v", v.ID, v.Author)
		}
		if !v.IsAnonymous {
			if v.Author == nil || v.Author.Username != "alice" {
				t.Errorf("named item %d should carry the author, got %+v", v.ID, v.Author)
			}
		}
	}
}

func TestQuestionDefaultsToAnonymous(t *testing.T) {
	svc, gdb := setupService(t)
	author := newStudent(t, gdb, "alice", false)

	q, err := svc.Create(author, models.KindQuestion, Fields{
		Title: strPtr("Is there air conditioning?"),
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if !q.IsAnonymous {
		t.Error("questions should be anonymous unless the author opts out")
	}
}

func TestScoreAggregationSumsAllVotes(t *testing.T) {
	svc, gdb := setupService(t)
	author := newStudent(t, gdb, "alice", false)
	dorm := newDorm(t, gdb, "North Hall")

	item := createReview(t, svc, author, dorm.ID, "Nice dorm", "I lived here for two years and loved it")

	for i, d := range []ratings.Direction{ratings.Positive, ratings.Positive, ratings.Negative} {
		voter := newStudent(t, gdb, fmt.Sprintf("voter%d", i), false)
		if err := svc.Vote(voter, models.KindReview, item.ID, d); err != nil {
			t.Fatalf("vote %d: %v", i, err)
		}
	}

	views, err := svc.List(models.KindReview, ListFilter{DormID: &dorm.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if views[0].Score != 1 {
		t.Errorf("expected +1+1-1 = 1, got %d", views[0].Score)
	}
}

func TestGeneralQuestionsExcludeDormQuestions(t *testing.T) {
	svc, gdb := setupService(t)
	author := newStudent(t, gdb, "alice", false)
	dorm := newDorm(t, gdb, "North Hall")

	if _, err := svc.Create(author, models.KindQuestion, Fields{
		Title: strPtr("General campus question here"),
	}); err != nil {
		t.Fatalf("create general question: %v", err)
	}
	if _, err := svc.Create(author, models.KindQuestion, Fields{
		Title:  strPtr("Dorm-specific question here"),
		DormID: &dorm.ID,
	}); err != nil {
		t.Fatalf("create dorm question: %v", err)
	}

	general, err := svc.List(models.KindQuestion, ListFilter{GeneralOnly: true})
	if err != nil {
		t.Fatalf("list general: %v", err)
	}
	if len(general) != 1 || general[0].Title != "General campus question here" {
		t.Fatalf("expected only the general question, got %+v", general)
	}

	byDorm, err := svc.List(models.KindQuestion, ListFilter{DormID: &dorm.ID})
	if err != nil {
		t.Fatalf("list by dorm: %v", err)
	}
	if len(byDorm) != 1 || byDorm[0].Title != "Dorm-specific question here" {
		t.Fatalf("expected only the dorm question, got %+v", byDorm)
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc, gdb := setupService(t)
	author := newStudent(t, gdb, "alice", false)
	dorm := newDorm(t, gdb, "North Hall")

	createReview(t, svc, author, dorm.ID, "Nice dorm", "The radiators CLANK all night long here")
	createReview(t, svc, author, dorm.ID, "Quiet floor", "Perfectly peaceful, never heard a thing")

	views, err := svc.List(models.KindReview, ListFilter{DormID: &dorm.ID, Search: "clank"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 || views[0].Title != "Nice dorm" {
		t.Fatalf("expected the clanking review only, got %+v", views)
	}
}

func TestHistoryResolvesWholeChainOldestFirst(t *testing.T) {
	svc, gdb := setupService(t)
	author := newStudent(t, gdb, "alice", false)
	dorm := newDorm(t, gdb, "North Hall")

	v1 := createReview(t, svc, author, dorm.ID, "First title", "I lived here for two years and loved it")
	v2, err := svc.Edit(author, models.KindReview, v1.ID, Fields{Title: strPtr("Second title")})
	if err != nil {
		t.Fatalf("edit v1: %v", err)
	}
	if _, err := svc.Edit(author, models.KindReview, v2.ID, Fields{Title: strPtr("Third title")}); err != nil {
		t.Fatalf("edit v2: %v", err)
	}

	views, err := svc.List(models.KindReview, ListFilter{DormID: &dorm.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected a single current head, got %d", len(views))
	}

	edits := views[0].PreviousEdits
	if len(edits) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(edits))
	}
	if edits[0].Title != "First title" || edits[1].Title != "Second title" {
		t.Errorf("history must be oldest first, got %q then %q", edits[0].Title, edits[1].Title)
	}
}

func TestPinnedAnnouncementsComeFirst(t *testing.T) {
	svc, gdb := setupService(t)
	admin := newStudent(t, gdb, "root", true)

	if _, err := svc.Create(admin, models.KindAnnouncement, Fields{
		Title: strPtr("Ordinary notice"),
		Body:  strPtr("Nothing urgent."),
	}); err != nil {
		t.Fatalf("create announcement: %v", err)
	}
	if _, err := svc.Create(admin, models.KindAnnouncement, Fields{
		Title:    strPtr("Fire drill"),
		Body:     strPtr("Tomorrow at nine."),
		IsPinned: boolPtr(true),
	}); err != nil {
		t.Fatalf("create pinned announcement: %v", err)
	}

	views, err := svc.List(models.KindAnnouncement, ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 || views[0].Title != "Fire drill" {
		t.Fatalf("expected the pinned announcement first, got %+v", views)
	}
}

func TestListRendersMarkdownBodies(t *testing.T) {
	svc, gdb := setupService(t)
	author := newStudent(t, gdb, "alice", false)
	dorm := newDorm(t, gdb, "North Hall")

	createReview(t, svc, author, dorm.ID, "Nice dorm", "The **radiators** clank all night long")

	views, err := svc.List(models.KindReview, ListFilter{DormID: &dorm.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(views[0].BodyHTML, "<strong>radiators</strong>") {
		t.Errorf("expected rendered markdown, got %q", views[0].BodyHTML)
	}
}
