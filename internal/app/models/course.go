package models

import (
	"fmt"
	"slices"
)

// Course is a course offering together with the identifiers of the
// students enrolled in it.
type Course struct {
	Name string   `json:"name" example:"biology"`
	ID   CourseID `json:"id" example:"103"`

	enrolled map[int64]struct{}
}

// NewCourse builds a course with its own empty membership set
func NewCourse(name string, id CourseID) *Course {
	return &Course{
		Name:     name,
		ID:       id,
		enrolled: make(map[int64]struct{}),
	}
}

// Matches reports whether the course carries the given identifier
func (c *Course) Matches(id CourseID) bool {
	return c.ID == id
}

// AddStudent records a student identifier as enrolled. Adding twice is a no-op.
func (c *Course) AddStudent(studentID int64) {
	if c.enrolled == nil {
		c.enrolled = make(map[int64]struct{})
	}
	c.enrolled[studentID] = struct{}{}
}

// RemoveStudent drops a student identifier; unknown identifiers are ignored
func (c *Course) RemoveStudent(studentID int64) {
	delete(c.enrolled, studentID)
}

// HasStudent reports whether the identifier is in the membership set
func (c *Course) HasStudent(studentID int64) bool {
	_, ok := c.enrolled[studentID]
	return ok
}

// StudentIDs returns the enrolled identifiers in ascending order
func (c *Course) StudentIDs() []int64 {
	ids := make([]int64, 0, len(c.enrolled))
	for id := range c.enrolled {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// EnrolledCount returns the size of the membership set
func (c *Course) EnrolledCount() int {
	return len(c.enrolled)
}

// ReplaceMembership overwrites the membership set with a copy of ids
func (c *Course) ReplaceMembership(ids []int64) {
	c.enrolled = make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		c.enrolled[id] = struct{}{}
	}
}

func (c *Course) String() string {
	return fmt.Sprintf("\nCourse Name: %s \nCourse ID: %s\n%s", c.Name, c.ID, separator)
}
