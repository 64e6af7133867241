package repositories

import (
	"slices"

	"github.com/yigit/studentrecords/internal/app/models"
)

// InstructorRepository keeps instructors in insertion order
type InstructorRepository struct {
	instructors []*models.Instructor
}

// NewInstructorRepository creates an empty instructor repository
func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{
		instructors: make([]*models.Instructor, 0),
	}
}

// Add appends an instructor
func (r *InstructorRepository) Add(instructor *models.Instructor) {
	r.instructors = append(r.instructors, instructor)
}

// GetByID returns the first instructor with the identifier, or nil
func (r *InstructorRepository) GetByID(idNumber int64) *models.Instructor {
	i := indexOf(r.instructors, func(in *models.Instructor) bool { return in.Matches(idNumber) })
	if i < 0 {
		return nil
	}
	return r.instructors[i]
}

// GetAll returns a copy of the collection
func (r *InstructorRepository) GetAll() []*models.Instructor {
	return slices.Clone(r.instructors)
}

// Update copies name and department onto the stored instructor
func (r *InstructorRepository) Update(updated *models.Instructor) bool {
	existing := r.GetByID(updated.IDNumber)
	if existing == nil {
		return false
	}
	existing.Name = updated.Name
	existing.Department = updated.Department
	return true
}

// Delete removes the first instructor with the identifier
func (r *InstructorRepository) Delete(idNumber int64) bool {
	i := indexOf(r.instructors, func(in *models.Instructor) bool { return in.Matches(idNumber) })
	if i < 0 {
		return false
	}
	r.instructors = removeAt(r.instructors, i)
	return true
}

// Count returns the number of stored instructors
func (r *InstructorRepository) Count() int {
	return len(r.instructors)
}
