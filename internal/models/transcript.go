package models

// Transcript lists grades in the order they were recorded.
type Transcript struct {
	Student Student       `json:"student" yaml:"student"`
	Grades  []CourseGrade `json:"grades" yaml:"grades"`
}
