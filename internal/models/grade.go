package models

type CourseGrade struct {
	Course string `json:"course" yaml:"course"`
	Grade  int    `json:"grade" yaml:"grade"`
}
