package repositories

import (
	"slices"

	"github.com/yigit/studentrecords/internal/app/models"
)

// StudentRepository keeps students in insertion order
type StudentRepository struct {
	students []*models.Student
}

// NewStudentRepository creates an empty student repository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		students: make([]*models.Student, 0),
	}
}

// Add appends a student. Duplicate identifiers are not checked.
func (r *StudentRepository) Add(student *models.Student) {
	r.students = append(r.students, student)
}

// GetByID returns the first student with the identifier, or nil
func (r *StudentRepository) GetByID(idNumber int64) *models.Student {
	i := indexOf(r.students, func(s *models.Student) bool { return s.Matches(idNumber) })
	if i < 0 {
		return nil
	}
	return r.students[i]
}

// GetAll returns a copy of the collection
func (r *StudentRepository) GetAll() []*models.Student {
	return slices.Clone(r.students)
}

// Update copies name and major onto the stored student with the same
// identifier. It reports whether such a student existed.
func (r *StudentRepository) Update(updated *models.Student) bool {
	existing := r.GetByID(updated.IDNumber)
	if existing == nil {
		return false
	}
	existing.Name = updated.Name
	existing.Major = updated.Major
	return true
}

// Delete removes the first student with the identifier
func (r *StudentRepository) Delete(idNumber int64) bool {
	i := indexOf(r.students, func(s *models.Student) bool { return s.Matches(idNumber) })
	if i < 0 {
		return false
	}
	r.students = removeAt(r.students, i)
	return true
}

// Count returns the number of stored students
func (r *StudentRepository) Count() int {
	return len(r.students)
}
