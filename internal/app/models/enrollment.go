package models

import (
	"fmt"
	"strings"

	"github.com/yigit/studentrecords/internal/pkg/textcase"
)

// Enrollment links one student to one course. It references both, it does
// not own them. The grade is absent until AssignGrade is called.
type Enrollment struct {
	Student *Student
	Course  *Course

	grade *string
}

// NewEnrollment creates a gradeless enrollment
func NewEnrollment(student *Student, course *Course) *Enrollment {
	return &Enrollment{
		Student: student,
		Course:  course,
	}
}

// Matches reports whether the enrollment links the given student and course
func (e *Enrollment) Matches(studentID int64, courseID CourseID) bool {
	return e.Student.Matches(studentID) && e.Course.Matches(courseID)
}

// AssignGrade stores the grade with its first letter capitalized
func (e *Enrollment) AssignGrade(grade string) {
	g := textcase.Capitalize(grade)
	e.grade = &g
}

// Grade returns the assigned grade and whether one has been assigned
func (e *Enrollment) Grade() (string, bool) {
	if e.grade == nil {
		return "", false
	}
	return *e.grade, true
}

// HasGrade reports whether a grade has been assigned
func (e *Enrollment) HasGrade() bool {
	return e.grade != nil
}

func (e *Enrollment) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nStudent\n%s \nName: %s\nID: %d\nMajor: %s", separator, e.Student.Name, e.Student.IDNumber, e.Student.Major)
	fmt.Fprintf(&b, "\n\nStudent's Course\n%s\nName: %s\nID: %s", separator, e.Course.Name, e.Course.ID)
	if g, ok := e.Grade(); ok && g != "" {
		fmt.Fprintf(&b, "\nGrade: %s", g)
	}
	return b.String()
}
