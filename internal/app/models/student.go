package models

import (
	"fmt"

	"github.com/yigit/studentrecords/internal/pkg/textcase"
)

// Student is a person enrolled (or enrollable) in courses
type Student struct {
	Person
	Major string `json:"major" example:"Mathematics"` // Title-cased major
}

// NewStudent builds a Student, title-casing both name and major
func NewStudent(name string, idNumber int64, major string) *Student {
	return &Student{
		Person: NewPerson(name, idNumber),
		Major:  textcase.Title(major),
	}
}

// Matches reports whether the student carries the given identifier
func (s *Student) Matches(idNumber int64) bool {
	return s.IDNumber == idNumber
}

func (s *Student) String() string {
	return fmt.Sprintf("\nName: %s,\nRole: Student \nID: %d, \nMajor: %s", s.Name, s.IDNumber, s.Major)
}
