package repositories

import (
	"slices"

	"github.com/yigit/studentrecords/internal/app/models"
)

// CourseRepository keeps courses in insertion order
type CourseRepository struct {
	courses []*models.Course
}

// NewCourseRepository creates an empty course repository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses: make([]*models.Course, 0),
	}
}

// Add appends a course
func (r *CourseRepository) Add(course *models.Course) {
	r.courses = append(r.courses, course)
}

// GetByID returns the first course with the identifier, or nil
func (r *CourseRepository) GetByID(id models.CourseID) *models.Course {
	i := indexOf(r.courses, func(c *models.Course) bool { return c.Matches(id) })
	if i < 0 {
		return nil
	}
	return r.courses[i]
}

// GetAll returns a copy of the collection in insertion order
func (r *CourseRepository) GetAll() []*models.Course {
	return slices.Clone(r.courses)
}

// ContainingStudent returns, in insertion order, the courses whose
// membership set holds the student identifier
func (r *CourseRepository) ContainingStudent(studentID int64) []*models.Course {
	result := make([]*models.Course, 0)
	for _, c := range r.courses {
		if c.HasStudent(studentID) {
			result = append(result, c)
		}
	}
	return result
}

// Update overwrites the name and membership set of the stored course.
// The membership is copied, so the two courses never share a set.
func (r *CourseRepository) Update(updated *models.Course) bool {
	existing := r.GetByID(updated.ID)
	if existing == nil {
		return false
	}
	existing.Name = updated.Name
	existing.ReplaceMembership(updated.StudentIDs())
	return true
}

// Delete removes the first course with the identifier
func (r *CourseRepository) Delete(id models.CourseID) bool {
	i := indexOf(r.courses, func(c *models.Course) bool { return c.Matches(id) })
	if i < 0 {
		return false
	}
	r.courses = removeAt(r.courses, i)
	return true
}

// Count returns the number of stored courses
func (r *CourseRepository) Count() int {
	return len(r.courses)
}
