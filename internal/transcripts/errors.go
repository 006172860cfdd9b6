package transcripts

import (
	"errors"
	"fmt"

	"github.com/bigredeye/transcripts/internal/models"
)

const (
	MissingStudent = "student"
	MissingGrade   = "grade"
)

type NotFound struct {
	Missing string
	Student models.StudentID
	Course  string
}

func (e *NotFound) Error() string {
	if e.Missing == MissingGrade {
		return fmt.Sprintf("student %s has no grade for course %q", e.Student, e.Course)
	}
	return fmt.Sprintf("unknown student %s", e.Student)
}

func IsNotFound(err error) bool {
	notFound := &NotFound{}
	return errors.As(err, &notFound)
}

type Conflict struct {
	Student  models.StudentID
	Course   string
	Existing int
}

func (e *Conflict) Error() string {
	return fmt.Sprintf("student %s already has grade %d for course %q", e.Student, e.Existing, e.Course)
}

func IsConflict(err error) bool {
	conflict := &Conflict{}
	return errors.As(err, &conflict)
}
