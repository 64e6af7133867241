package seed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appModels "github.com/yigit/studentrecords/internal/app/models"
	appServices "github.com/yigit/studentrecords/internal/app/services"
)

func loadedService(t *testing.T) *appServices.ManagementService {
	t.Helper()
	svc := appServices.NewManagementService(nil, zerolog.Nop())
	LoadSampleData(svc, zerolog.Nop())
	return svc
}

func TestSampleData_CoursesForIan(t *testing.T) {
	svc := loadedService(t)

	courses := svc.GetCoursesForStudent(6444)

	require.Len(t, courses, 3)
	ids := []appModels.CourseID{courses[0].ID, courses[1].ID, courses[2].ID}
	// course insertion order, not enrollment order
	assert.Equal(t, []appModels.CourseID{"103", "100", "107"}, ids)
}

func TestSampleData_GradesForIan(t *testing.T) {
	svc := loadedService(t)

	want := map[appModels.CourseID]string{"100": "A", "103": "B", "107": "D"}
	for courseID, grade := range want {
		e, ok := svc.GetEnrollment(6444, courseID)
		require.True(t, ok, "course %s", courseID)
		g, ok := e.Grade()
		require.True(t, ok, "course %s", courseID)
		assert.Equal(t, grade, g, "course %s", courseID)
	}
}

func TestSampleData_StudentsInMathematics(t *testing.T) {
	svc := loadedService(t)

	students, err := svc.GetStudentsInCourse("100")
	require.NoError(t, err)

	ids := make([]int64, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.IDNumber)
	}
	assert.ElementsMatch(t, []int64{5443, 6444, 5493}, ids)
}

func TestSampleData_NoPhantomEnrollment(t *testing.T) {
	svc := loadedService(t)

	assert.Len(t, svc.Enrollments(), 9)
	_, ok := svc.GetEnrollment(5453, "100")
	assert.False(t, ok)

	// imma was enrolled but never graded
	e, ok := svc.GetEnrollment(5443, "100")
	require.True(t, ok)
	assert.False(t, e.HasGrade())
}

func TestSampleData_Instructors(t *testing.T) {
	svc := loadedService(t)

	instructors := svc.Instructors()
	require.Len(t, instructors, 3)
	assert.Equal(t, "James", instructors[0].Name)
	assert.Equal(t, "physics", instructors[1].Department)
}
