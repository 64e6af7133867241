package seed

import (
	"github.com/rs/zerolog"

	appModels "github.com/yigit/studentrecords/internal/app/models"
	appServices "github.com/yigit/studentrecords/internal/app/services"
)

// GradeEntry is one grade assignment of the sample data
type GradeEntry struct {
	Grade     string
	StudentID int64
	CourseID  appModels.CourseID
}

// SampleGrades lists the grades assigned by LoadSampleData. Student 5453 is
// never enrolled, so its three entries are ignored by the service.
var SampleGrades = []GradeEntry{
	{"a", 6444, "100"},
	{"b", 5493, "100"},
	{"d", 5453, "100"},
	{"b", 6444, "103"},
	{"c", 5493, "103"},
	{"a", 5453, "103"},
	{"d", 6444, "107"},
	{"b", 5493, "107"},
	{"c", 5453, "107"},
}

// LoadSampleData fills svc with three students, three courses, nine
// enrollments, the grades in SampleGrades and three instructors.
func LoadSampleData(svc *appServices.ManagementService, lgr zerolog.Logger) {
	lgr.Info().Msg("Loading sample data...")

	svc.AddStudent(appModels.NewStudent("imma", 5443, "mathematics"))
	svc.AddStudent(appModels.NewStudent("ian", 6444, "english"))
	svc.AddStudent(appModels.NewStudent("lucky", 5493, "chemistry"))

	svc.AddCourse(appModels.NewCourse("biology", "103"))
	svc.AddCourse(appModels.NewCourse("mathematics", "100"))
	svc.AddCourse(appModels.NewCourse("geography", "107"))

	for _, studentID := range []int64{6444, 5493, 5443} {
		for _, courseID := range []appModels.CourseID{"100", "103", "107"} {
			svc.EnrollStudent(studentID, courseID)
		}
	}

	for _, g := range SampleGrades {
		svc.AssignGrade(g.Grade, g.StudentID, g.CourseID)
	}

	svc.AddInstructor(appModels.NewInstructor("james", 3782, "biology"))
	svc.AddInstructor(appModels.NewInstructor("alfred", 7352, "physics"))
	svc.AddInstructor(appModels.NewInstructor("jane", 8255, "business"))

	lgr.Info().
		Int("students", len(svc.Students())).
		Int("courses", len(svc.Courses())).
		Int("enrollments", len(svc.Enrollments())).
		Int("instructors", len(svc.Instructors())).
		Msg("Sample data loaded")
}
