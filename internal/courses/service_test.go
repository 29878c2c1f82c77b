package courses

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dormlife/internal/apperr"
	"dormlife/internal/db"

	"github.com/PuerkitoBio/goquery"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const timetablePage = `
<html><body><div><div><center>
<table><tbody>
<tr><td colspan="10">NOTE** Schedule subject to change</td></tr>
<tr>
  <td>CRN</td><td>Course</td><td>Type</td><td>Cred</td><td>GrTp</td>
  <td></td><td>Start</td><td>End</td><td>Instructor</td><td>Location</td>
</tr>
<tr>
  <td>12345 CSCI-1100-01</td><td>COMPUTER SCIENCE I</td><td>LEC</td><td>4</td><td></td>
  <td>MR</td><td>10:00</td><td>11:50</td><td>Turing/Hopper</td><td>DCC 308</td>
</tr>
<tr>
  <td></td><td></td><td>LAB</td><td>0</td><td></td>
  <td>W</td><td>14:00</td><td>15:50</td><td>Hopper</td><td>AE 217</td>
</tr>
<tr>
  <td>20001 MATH-1010-02</td><td>CALCULUS I</td><td>LEC</td><td>4</td><td></td>
  <td>TF</td><td>08:00</td><td>09:50</td><td>Noether</td><td>Ricketts 203</td>
</tr>
</tbody></table>
</center></div></div></body></html>`

func setupService(t *testing.T, baseURL string) (*Service, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return NewService(gdb, baseURL), gdb
}

func TestParseSections(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(timetablePage))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	sections := ParseSections(doc, "202509")
	if len(sections) != 3 {
		t.Fatalf("expected 3 meeting rows, got %d", len(sections))
	}

	lec := sections[0]
	if lec.CRN != "12345" || lec.SubjectCode != "CSCI" || lec.CourseNum != "1100" || lec.SectionID != "01" {
		t.Errorf("lecture identity = %+v", lec)
	}
	if lec.PeriodType != "LEC" || lec.Credits != "4" {
		t.Errorf("lecture meta = %q %q", lec.PeriodType, lec.Credits)
	}
	if len(lec.Days) != 2 || lec.Days[0] != 1 || lec.Days[1] != 4 {
		t.Errorf("MR should map to Monday and Thursday, got %v", lec.Days)
	}
	if lec.StartTime != "10:00" || lec.EndTime != "11:50" || lec.Location != "DCC 308" {
		t.Errorf("lecture time/place = %q-%q %q", lec.StartTime, lec.EndTime, lec.Location)
	}
	if len(lec.Instructors) != 2 || lec.Instructors[0] != "Turing" || lec.Instructors[1] != "Hopper" {
		t.Errorf("instructors = %v", lec.Instructors)
	}

	// The lab row has an empty first column and inherits the lecture's CRN.
	lab := sections[1]
	if lab.CRN != "12345" || lab.SubjectCode != "CSCI" || lab.CourseNum != "1100" {
		t.Errorf("continuation row should inherit the course, got %+v", lab)
	}
	if lab.PeriodType != "LAB" || len(lab.Days) != 1 || lab.Days[0] != 3 {
		t.Errorf("lab meta = %q %v", lab.PeriodType, lab.Days)
	}

	if sections[2].CRN != "20001" || sections[2].SubjectCode != "MATH" {
		t.Errorf("third row = %+v", sections[2])
	}
}

func TestImportReplacesTerm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/zs202509.htm" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(timetablePage))
	}))
	defer srv.Close()

	svc, _ := setupService(t, srv.URL+"/")

	n, err := svc.Import(context.Background(), "202509")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 imported rows, got %d", n)
	}

	// A second import replaces rather than duplicates.
	if _, err := svc.Import(context.Background(), "202509"); err != nil {
		t.Fatalf("reimport: %v", err)
	}
	all, err := svc.List("202509", "", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 rows after reimport, got %d", len(all))
	}

	csci, err := svc.List("202509", "csci", "1100")
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(csci) != 2 {
		t.Errorf("expected lecture and lab, got %d rows", len(csci))
	}

	if _, err := svc.Import(context.Background(), "202599"); !errors.Is(err, apperr.ErrUpstream) {
		t.Errorf("missing term page should be an upstream error, got %v", err)
	}
	if _, err := svc.Import(context.Background(), "fall25"); !apperr.IsValidation(err) {
		t.Errorf("malformed term code should fail validation, got %v", err)
	}
}
