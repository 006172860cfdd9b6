package scorer

import (
	"github.com/bigredeye/transcripts/internal/models"
)

const (
	CourseStatusPassed = "passed"
	CourseStatusFailed = "failed"
)

type CourseStatus = string

type ScoredCourse struct {
	Course string
	Grade  int
	Status CourseStatus
}

type User struct {
	ID     models.StudentID
	Name   string
	Handle string
}

type StudentScores struct {
	User    User
	Courses []ScoredCourse

	Total   int
	Average float64
	Passed  int
}

type Standings struct {
	Students []*StudentScores
}
