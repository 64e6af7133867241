package models

import (
	"fmt"

	"github.com/yigit/studentrecords/internal/pkg/textcase"
)

// Person is the field set shared by students and instructors
type Person struct {
	Name     string `json:"name" example:"Imma"`     // Title-cased full name
	IDNumber int64  `json:"idNumber" example:"5443"` // Identifier, unique within its collection
}

// NewPerson builds a Person with its name normalized to title case
func NewPerson(name string, idNumber int64) Person {
	return Person{
		Name:     textcase.Title(name),
		IDNumber: idNumber,
	}
}

// Identity returns the person itself so that Person satisfies Named
func (p Person) Identity() Person {
	return p
}

func (p Person) String() string {
	return fmt.Sprintf("\nName: %s, \nID: %d", p.Name, p.IDNumber)
}

// Named is implemented by anything that has a name and an identifier
type Named interface {
	Identity() Person
}

// Member is a person known to the system: either a *Student or an *Instructor
type Member interface {
	Named
	fmt.Stringer
	member()
}

func (*Student) member()    {}
func (*Instructor) member() {}

// RoleOf reports the role of a member
func RoleOf(m Member) RoleType {
	switch m.(type) {
	case *Student:
		return RoleStudent
	case *Instructor:
		return RoleInstructor
	default:
		return ""
	}
}

// Describe renders a member using the format of its concrete variant
func Describe(m Member) string {
	switch v := m.(type) {
	case *Student:
		return v.String()
	case *Instructor:
		return v.String()
	default:
		return m.Identity().String()
	}
}
