// Package courses imports course sections from the registrar's HTML
// timetable and serves them for schedule building.
package courses

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"dormlife/internal/apperr"
	"dormlife/internal/models"

	"github.com/PuerkitoBio/goquery"
	"gorm.io/gorm"
)

var termPattern = regexp.MustCompile(`^\d{6}$`)

// Timetable day letters to ISO-ish weekday numbers (Monday = 1).
var dayNumbers = map[rune]int{'M': 1, 'T': 2, 'W': 3, 'R': 4, 'F': 5}

type Service struct {
	db      *gorm.DB
	baseURL string
	http    *http.Client
}

func NewService(db *gorm.DB, baseURL string) *Service {
	return &Service{
		db:      db,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Import fetches the timetable page for a term code (e.g. 202509),
// replaces the term's stored sections with the parsed rows and returns
// how many rows were imported.
func (s *Service) Import(ctx context.Context, termCode string) (int, error) {
	if !termPattern.MatchString(termCode) {
		return 0, apperr.NewValidationError("termCode", "must be a 6-digit term code")
	}

	url := fmt.Sprintf("%szs%s.htm", s.baseURL, termCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: fetch timetable: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: timetable returned %s", apperr.ErrUpstream, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: parse timetable: %v", apperr.ErrUpstream, err)
	}

	sections := ParseSections(doc, termCode)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("term_code = ?", termCode).Delete(&models.CourseSection{}).Error; err != nil {
			return err
		}
		if len(sections) == 0 {
			return nil
		}
		return tx.Create(&sections).Error
	})
	if err != nil {
		return 0, err
	}
	return len(sections), nil
}

// List returns stored sections for a term, optionally narrowed to one
// subject code and course number.
func (s *Service) List(termCode, subject, courseNum string) ([]models.CourseSection, error) {
	q := s.db.Where("term_code = ?", termCode).
		Order("subject_code ASC, course_num ASC, crn ASC, id ASC")
	if subject != "" {
		q = q.Where("subject_code = ?", strings.ToUpper(subject))
	}
	if courseNum != "" {
		q = q.Where("course_num = ?", courseNum)
	}

	var sections []models.CourseSection
	err := q.Find(&sections).Error
	return sections, err
}

// ParseSections extracts meeting periods from the timetable document.
// Continuation rows (extra meeting times of the same section) have an
// empty first column and inherit the CRN and course of the row above.
func ParseSections(doc *goquery.Document, termCode string) []models.CourseSection {
	var sections []models.CourseSection
	var lastCRN, lastSubject, lastCourseNum string

	doc.Find("div > div > center table > tbody > tr").Each(func(_ int, row *goquery.Selection) {
		var pieces []string
		row.Find("td").Each(func(_ int, td *goquery.Selection) {
			pieces = append(pieces, strings.TrimSpace(td.Text()))
		})
		// Rows without a days column are notes or headers.
		if len(pieces) < 10 || pieces[5] == "" {
			return
		}

		crn, summary, _ := strings.Cut(pieces[0], " ")
		var subject, courseNum, sectionID string
		if crn == "" || summary == "" {
			crn = lastCRN
			subject = lastSubject
			courseNum = lastCourseNum
		} else {
			parts := strings.SplitN(summary, "-", 3)
			subject = parts[0]
			if len(parts) > 1 {
				courseNum = parts[1]
			}
			if len(parts) > 2 {
				sectionID = parts[2]
			}
		}

		var days []int
		for _, letter := range strings.ReplaceAll(pieces[5], " ", "") {
			if n, ok := dayNumbers[letter]; ok {
				days = append(days, n)
			}
		}

		sections = append(sections, models.CourseSection{
			TermCode:    termCode,
			CRN:         crn,
			SubjectCode: subject,
			CourseNum:   courseNum,
			SectionID:   sectionID,
			PeriodType:  pieces[2],
			Credits:     pieces[3],
			Days:        days,
			StartTime:   pieces[6],
			EndTime:     pieces[7],
			Instructors: strings.Split(pieces[8], "/"),
			Location:    pieces[9],
		})

		lastCRN = crn
		lastSubject = subject
		lastCourseNum = courseNum
	})

	return sections
}
