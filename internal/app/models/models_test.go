package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent_TitleCasesNameAndMajor(t *testing.T) {
	s := NewStudent("imma okafor", 5443, "applied mathematics")

	assert.Equal(t, "Imma Okafor", s.Name)
	assert.Equal(t, int64(5443), s.IDNumber)
	assert.Equal(t, "Applied Mathematics", s.Major)
	assert.Equal(t, "\nName: Imma Okafor,\nRole: Student \nID: 5443, \nMajor: Applied Mathematics", s.String())
}

func TestNewInstructor_KeepsDepartmentCase(t *testing.T) {
	i := NewInstructor("james", 3782, "biology")

	assert.Equal(t, "James", i.Name)
	assert.Equal(t, "biology", i.Department)
	assert.Equal(t, "\nName: James,\nRole: Instructor \nID: 3782, \nDepartment: biology", i.String())
}

func TestMember_RoleAndDescribe(t *testing.T) {
	members := []Member{
		NewStudent("ian", 6444, "english"),
		NewInstructor("jane", 8255, "business"),
	}

	assert.Equal(t, RoleStudent, RoleOf(members[0]))
	assert.Equal(t, RoleInstructor, RoleOf(members[1]))
	assert.Contains(t, Describe(members[0]), "Major: English")
	assert.Contains(t, Describe(members[1]), "Department: business")
	assert.Equal(t, Person{Name: "Jane", IDNumber: 8255}, members[1].Identity())
}

func TestCourse_Membership(t *testing.T) {
	c := NewCourse("biology", "103")

	c.AddStudent(6444)
	c.AddStudent(5443)
	c.AddStudent(6444)

	assert.Equal(t, 2, c.EnrolledCount())
	assert.Equal(t, []int64{5443, 6444}, c.StudentIDs())
	assert.True(t, c.HasStudent(6444))

	c.RemoveStudent(6444)
	c.RemoveStudent(9999)

	assert.False(t, c.HasStudent(6444))
	assert.Equal(t, []int64{5443}, c.StudentIDs())
}

func TestCourse_FreshMembershipPerInstance(t *testing.T) {
	a := NewCourse("biology", "103")
	b := NewCourse("geography", "107")

	a.AddStudent(1)

	assert.False(t, b.HasStudent(1))
	assert.Zero(t, b.EnrolledCount())
}

func TestCourse_ZeroValueAcceptsStudents(t *testing.T) {
	var c Course
	c.RemoveStudent(1)
	c.AddStudent(1)
	assert.True(t, c.HasStudent(1))
}

func TestCourse_ReplaceMembershipCopies(t *testing.T) {
	c := NewCourse("biology", "103")
	ids := []int64{1, 2}

	c.ReplaceMembership(ids)
	ids[0] = 42

	assert.Equal(t, []int64{1, 2}, c.StudentIDs())
}

func TestCourse_String(t *testing.T) {
	c := NewCourse("geography", "107")
	assert.Equal(t, "\nCourse Name: geography \nCourse ID: 107\n--------------------", c.String())
}

func TestEnrollment_Grade(t *testing.T) {
	s := NewStudent("ian", 6444, "english")
	c := NewCourse("mathematics", "100")
	e := NewEnrollment(s, c)

	_, ok := e.Grade()
	require.False(t, ok)
	assert.False(t, e.HasGrade())
	assert.NotContains(t, e.String(), "Grade:")

	e.AssignGrade("b")

	g, ok := e.Grade()
	require.True(t, ok)
	assert.Equal(t, "B", g)
	assert.Contains(t, e.String(), "\nGrade: B")
	assert.True(t, e.Matches(6444, "100"))
	assert.False(t, e.Matches(6444, "103"))
}

func TestEnrollment_String(t *testing.T) {
	e := NewEnrollment(NewStudent("ian", 6444, "english"), NewCourse("mathematics", "100"))

	want := "\nStudent\n-------------------- \nName: Ian\nID: 6444\nMajor: English" +
		"\n\nStudent's Course\n--------------------\nName: mathematics\nID: 100"
	assert.Equal(t, want, e.String())
}
