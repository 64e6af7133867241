package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentrecords/internal/app/models"
)

func TestNewRepositories_FreshCollections(t *testing.T) {
	a := NewRepositories()
	b := NewRepositories()

	a.StudentRepository.Add(models.NewStudent("imma", 5443, "mathematics"))

	assert.Equal(t, 1, a.StudentRepository.Count())
	assert.Zero(t, b.StudentRepository.Count())
}

func TestStudentRepository_CRUD(t *testing.T) {
	repo := NewStudentRepository()
	repo.Add(models.NewStudent("imma", 5443, "mathematics"))
	repo.Add(models.NewStudent("ian", 6444, "english"))

	got := repo.GetByID(6444)
	require.NotNil(t, got)
	assert.Equal(t, "Ian", got.Name)
	assert.Nil(t, repo.GetByID(1))

	assert.True(t, repo.Update(models.NewStudent("ian smith", 6444, "history")))
	assert.Equal(t, "Ian Smith", got.Name)
	assert.Equal(t, "History", got.Major)
	assert.False(t, repo.Update(models.NewStudent("ghost", 1, "none")))

	assert.True(t, repo.Delete(5443))
	assert.False(t, repo.Delete(5443))
	assert.Equal(t, 1, repo.Count())
}

func TestStudentRepository_DeleteAdjacentDuplicates(t *testing.T) {
	repo := NewStudentRepository()
	repo.Add(models.NewStudent("a", 1, "x"))
	repo.Add(models.NewStudent("b", 1, "x"))
	repo.Add(models.NewStudent("c", 2, "x"))

	require.True(t, repo.Delete(1))

	all := repo.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Name)
	assert.Equal(t, "C", all[1].Name)
}

func TestStudentRepository_GetAllIsCopy(t *testing.T) {
	repo := NewStudentRepository()
	repo.Add(models.NewStudent("imma", 5443, "mathematics"))

	all := repo.GetAll()
	all[0] = nil

	assert.NotNil(t, repo.GetByID(5443))
}

func TestInstructorRepository_CRUD(t *testing.T) {
	repo := NewInstructorRepository()
	repo.Add(models.NewInstructor("james", 3782, "biology"))

	require.NotNil(t, repo.GetByID(3782))
	assert.True(t, repo.Update(models.NewInstructor("james", 3782, "Botany")))
	assert.Equal(t, "Botany", repo.GetByID(3782).Department)
	assert.True(t, repo.Delete(3782))
	assert.Nil(t, repo.GetByID(3782))
	assert.Zero(t, repo.Count())
}

func TestCourseRepository_UpdateReplacesMembership(t *testing.T) {
	repo := NewCourseRepository()
	stored := models.NewCourse("biology", "103")
	stored.AddStudent(6444)
	repo.Add(stored)

	updated := models.NewCourse("advanced biology", "103")
	updated.AddStudent(5443)
	require.True(t, repo.Update(updated))

	assert.Equal(t, "advanced biology", stored.Name)
	assert.Equal(t, []int64{5443}, stored.StudentIDs())

	updated.AddStudent(1)
	assert.False(t, stored.HasStudent(1))
}

func TestCourseRepository_ContainingStudentKeepsOrder(t *testing.T) {
	repo := NewCourseRepository()
	for _, c := range []*models.Course{
		models.NewCourse("biology", "103"),
		models.NewCourse("mathematics", "100"),
		models.NewCourse("geography", "107"),
	} {
		c.AddStudent(6444)
		repo.Add(c)
	}
	repo.GetByID("100").RemoveStudent(6444)

	got := repo.ContainingStudent(6444)
	require.Len(t, got, 2)
	assert.Equal(t, models.CourseID("103"), got[0].ID)
	assert.Equal(t, models.CourseID("107"), got[1].ID)
	assert.Empty(t, repo.ContainingStudent(1))
}

func TestEnrollmentRepository_Queries(t *testing.T) {
	ian := models.NewStudent("ian", 6444, "english")
	lucky := models.NewStudent("lucky", 5493, "chemistry")
	bio := models.NewCourse("biology", "103")
	math := models.NewCourse("mathematics", "100")

	repo := NewEnrollmentRepository()
	repo.Add(models.NewEnrollment(ian, bio))
	repo.Add(models.NewEnrollment(ian, math))
	repo.Add(models.NewEnrollment(lucky, math))

	assert.Len(t, repo.Find(6444, "100"), 1)
	assert.Empty(t, repo.Find(5493, "103"))
	assert.Len(t, repo.ByStudent(6444), 2)
	assert.Len(t, repo.ByCourse("100"), 2)

	removed := repo.DeleteWhere(func(e *models.Enrollment) bool { return e.Course.Matches("100") })
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, repo.Count())
}
