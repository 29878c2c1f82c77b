package models

import (
	"time"
)

// CourseSection is one meeting period of a course section for a term,
// imported from the registrar timetable.
type CourseSection struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TermCode    string    `gorm:"size:10;not null;index:idx_section_term" json:"term_code"`
	CRN         string    `gorm:"size:10;not null;index:idx_section_term" json:"crn"`
	SubjectCode string    `gorm:"size:10;index" json:"subject_code"`
	CourseNum   string    `gorm:"size:10;index" json:"course_num"`
	SectionID   string    `gorm:"size:10" json:"section_id"`
	PeriodType  string    `gorm:"size:10" json:"period_type"` // LEC, LAB, REC, ...
	Credits     string    `gorm:"size:10" json:"credits"`
	Days        []int     `gorm:"serializer:json" json:"days"` // 1=Mon .. 5=Fri
	StartTime   string    `gorm:"size:10" json:"start_time"`
	EndTime     string    `gorm:"size:10" json:"end_time"`
	Instructors []string  `gorm:"serializer:json" json:"instructors"`
	Location    string    `gorm:"size:100" json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
