package lf

import (
	"go.uber.org/zap"

	"github.com/bigredeye/transcripts/internal/models"
)

const (
	FieldModule      = "module"
	FieldStudentID   = "student_id"
	FieldStudentName = "student_name"
	FieldCourse      = "course"
	FieldGrade       = "grade"
	FieldCommand     = "command"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func StudentID(id models.StudentID) zap.Field {
	return zap.String(FieldStudentID, string(id))
}

func StudentName(name string) zap.Field {
	return zap.String(FieldStudentName, name)
}

func Course(course string) zap.Field {
	return zap.String(FieldCourse, course)
}

func Grade(grade int) zap.Field {
	return zap.Int(FieldGrade, grade)
}

func Command(command string) zap.Field {
	return zap.String(FieldCommand, command)
}
