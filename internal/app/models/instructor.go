package models

import "fmt"

// Instructor is a person teaching for a department.
// Department is stored exactly as given.
type Instructor struct {
	Person
	Department string `json:"department" example:"biology"`
}

// NewInstructor builds an Instructor with a title-cased name
func NewInstructor(name string, idNumber int64, department string) *Instructor {
	return &Instructor{
		Person:     NewPerson(name, idNumber),
		Department: department,
	}
}

// Matches reports whether the instructor carries the given identifier
func (i *Instructor) Matches(idNumber int64) bool {
	return i.IDNumber == idNumber
}

func (i *Instructor) String() string {
	return fmt.Sprintf("\nName: %s,\nRole: Instructor \nID: %d, \nDepartment: %s", i.Name, i.IDNumber, i.Department)
}
