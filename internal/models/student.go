package models

type StudentID string

func (id StudentID) String() string {
	return string(id)
}

type Student struct {
	ID   StudentID `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
}
