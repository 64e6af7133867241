package repositories

import (
	"slices"

	"github.com/yigit/studentrecords/internal/app/models"
)

// EnrollmentRepository keeps enrollment records in insertion order
type EnrollmentRepository struct {
	enrollments []*models.Enrollment
}

// NewEnrollmentRepository creates an empty enrollment repository
func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{
		enrollments: make([]*models.Enrollment, 0),
	}
}

// Add appends an enrollment. The (student, course) pair is not checked for uniqueness.
func (r *EnrollmentRepository) Add(enrollment *models.Enrollment) {
	r.enrollments = append(r.enrollments, enrollment)
}

// GetAll returns a copy of the collection
func (r *EnrollmentRepository) GetAll() []*models.Enrollment {
	return slices.Clone(r.enrollments)
}

// Find returns every enrollment linking the student to the course
func (r *EnrollmentRepository) Find(studentID int64, courseID models.CourseID) []*models.Enrollment {
	return r.filter(func(e *models.Enrollment) bool { return e.Matches(studentID, courseID) })
}

// ByStudent returns the enrollments of one student
func (r *EnrollmentRepository) ByStudent(studentID int64) []*models.Enrollment {
	return r.filter(func(e *models.Enrollment) bool { return e.Student.Matches(studentID) })
}

// ByCourse returns the enrollments of one course
func (r *EnrollmentRepository) ByCourse(courseID models.CourseID) []*models.Enrollment {
	return r.filter(func(e *models.Enrollment) bool { return e.Course.Matches(courseID) })
}

// DeleteWhere removes every enrollment matching pred and returns how many were removed
func (r *EnrollmentRepository) DeleteWhere(pred func(*models.Enrollment) bool) int {
	kept := make([]*models.Enrollment, 0, len(r.enrollments))
	for _, e := range r.enrollments {
		if !pred(e) {
			kept = append(kept, e)
		}
	}
	removed := len(r.enrollments) - len(kept)
	r.enrollments = kept
	return removed
}

// Count returns the number of stored enrollments
func (r *EnrollmentRepository) Count() int {
	return len(r.enrollments)
}

func (r *EnrollmentRepository) filter(pred func(*models.Enrollment) bool) []*models.Enrollment {
	result := make([]*models.Enrollment, 0)
	for _, e := range r.enrollments {
		if pred(e) {
			result = append(result, e)
		}
	}
	return result
}
