package repositories

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	InstructorRepository *InstructorRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories, each with its own empty collection
func NewRepositories() *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(),
		InstructorRepository: NewInstructorRepository(),
		CourseRepository:     NewCourseRepository(),
		EnrollmentRepository: NewEnrollmentRepository(),
	}
}

// indexOf returns the position of the first item satisfying match, or -1
func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

// removeAt deletes items[i] keeping the order of the rest
func removeAt[T any](items []T, i int) []T {
	copy(items[i:], items[i+1:])
	var zero T
	items[len(items)-1] = zero
	return items[:len(items)-1]
}
