package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// ManagementService is the single entry point owning the student,
// instructor, course and enrollment collections.
//
// Lookups report absence with a false flag. Mutations on unknown
// identifiers are silent no-ops. Only the course membership query
// returns an error, when the course itself does not exist.
//
// The service is not safe for concurrent use; see Guarded.
type ManagementService struct {
	students    *repositories.StudentRepository
	instructors *repositories.InstructorRepository
	courses     *repositories.CourseRepository
	enrollments *repositories.EnrollmentRepository
	logger      zerolog.Logger
}

// NewManagementService creates a service over the given repositories.
// A nil repos allocates a fresh, empty set.
func NewManagementService(repos *repositories.Repositories, logger zerolog.Logger) *ManagementService {
	if repos == nil {
		repos = repositories.NewRepositories()
	}
	return &ManagementService{
		students:    repos.StudentRepository,
		instructors: repos.InstructorRepository,
		courses:     repos.CourseRepository,
		enrollments: repos.EnrollmentRepository,
		logger:      logger.With().Str("component", "management").Logger(),
	}
}

// --- Students ---

// AddStudent appends a student to the collection
func (s *ManagementService) AddStudent(student *models.Student) {
	s.students.Add(student)
}

// GetStudent returns the first student with the identifier
func (s *ManagementService) GetStudent(idNumber int64) (*models.Student, bool) {
	student := s.students.GetByID(idNumber)
	return student, student != nil
}

// Students returns every student in insertion order
func (s *ManagementService) Students() []*models.Student {
	return s.students.GetAll()
}

// UpdateStudent overwrites name and major of the student sharing the
// updated identifier. The identifier itself never changes.
func (s *ManagementService) UpdateStudent(updated *models.Student) {
	if !s.students.Update(updated) {
		s.logger.Debug().Int64("studentID", updated.IDNumber).Msg("Update skipped, student not found")
	}
}

// RemoveStudent removes the first student with the identifier. Enrollment
// records and course membership are left untouched; use PurgeStudent to
// clean those up as well.
func (s *ManagementService) RemoveStudent(idNumber int64) {
	if !s.students.Delete(idNumber) {
		s.logger.Debug().Int64("studentID", idNumber).Msg("Remove skipped, student not found")
	}
}

// --- Instructors ---

// AddInstructor appends an instructor to the collection
func (s *ManagementService) AddInstructor(instructor *models.Instructor) {
	s.instructors.Add(instructor)
}

// GetInstructor returns the first instructor with the identifier
func (s *ManagementService) GetInstructor(idNumber int64) (*models.Instructor, bool) {
	instructor := s.instructors.GetByID(idNumber)
	return instructor, instructor != nil
}

// Instructors returns every instructor in insertion order
func (s *ManagementService) Instructors() []*models.Instructor {
	return s.instructors.GetAll()
}

// UpdateInstructor overwrites name and department of the matching instructor
func (s *ManagementService) UpdateInstructor(updated *models.Instructor) {
	if !s.instructors.Update(updated) {
		s.logger.Debug().Int64("instructorID", updated.IDNumber).Msg("Update skipped, instructor not found")
	}
}

// RemoveInstructor removes the first instructor with the identifier
func (s *ManagementService) RemoveInstructor(idNumber int64) {
	if !s.instructors.Delete(idNumber) {
		s.logger.Debug().Int64("instructorID", idNumber).Msg("Remove skipped, instructor not found")
	}
}

// --- Courses ---

// AddCourse appends a course to the collection
func (s *ManagementService) AddCourse(course *models.Course) {
	s.courses.Add(course)
}

// GetCourse returns the first course with the identifier
func (s *ManagementService) GetCourse(courseID models.CourseID) (*models.Course, bool) {
	course := s.courses.GetByID(courseID)
	return course, course != nil
}

// Courses returns every course in insertion order
func (s *ManagementService) Courses() []*models.Course {
	return s.courses.GetAll()
}

// UpdateCourse overwrites the name and membership set of the matching course
func (s *ManagementService) UpdateCourse(updated *models.Course) {
	if !s.courses.Update(updated) {
		s.logger.Debug().Str("courseID", string(updated.ID)).Msg("Update skipped, course not found")
	}
}

// RemoveCourse removes the first course with the identifier without
// touching its enrollment records; see PurgeCourse.
func (s *ManagementService) RemoveCourse(courseID models.CourseID) {
	if !s.courses.Delete(courseID) {
		s.logger.Debug().Str("courseID", string(courseID)).Msg("Remove skipped, course not found")
	}
}

// --- Enrollments ---

// EnrollStudent links a student to a course. If either identifier is
// unknown nothing happens.
func (s *ManagementService) EnrollStudent(studentID int64, courseID models.CourseID) {
	student, ok := s.GetStudent(studentID)
	if !ok {
		s.logger.Debug().Int64("studentID", studentID).Str("courseID", string(courseID)).Msg("Enroll skipped, student not found")
		return
	}
	course, ok := s.GetCourse(courseID)
	if !ok {
		s.logger.Debug().Int64("studentID", studentID).Str("courseID", string(courseID)).Msg("Enroll skipped, course not found")
		return
	}

	s.enrollments.Add(models.NewEnrollment(student, course))
	course.AddStudent(studentID)
}

// AssignGrade sets the grade, first letter capitalized, on the enrollment
// linking the student to the course. Unknown pairs are ignored.
func (s *ManagementService) AssignGrade(grade string, studentID int64, courseID models.CourseID) {
	matches := s.enrollments.Find(studentID, courseID)
	if len(matches) == 0 {
		s.logger.Debug().Int64("studentID", studentID).Str("courseID", string(courseID)).Msg("Grade skipped, enrollment not found")
		return
	}
	for _, e := range matches {
		e.AssignGrade(grade)
	}
}

// Enrollments returns every enrollment record in insertion order
func (s *ManagementService) Enrollments() []*models.Enrollment {
	return s.enrollments.GetAll()
}

// GetEnrollment returns the first enrollment linking the student to the course
func (s *ManagementService) GetEnrollment(studentID int64, courseID models.CourseID) (*models.Enrollment, bool) {
	matches := s.enrollments.Find(studentID, courseID)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// EnrollmentsForStudent returns the enrollment records of one student in
// insertion order
func (s *ManagementService) EnrollmentsForStudent(studentID int64) []*models.Enrollment {
	return s.enrollments.ByStudent(studentID)
}

// EnrollmentsForCourse returns the enrollment records of one course
func (s *ManagementService) EnrollmentsForCourse(courseID models.CourseID) []*models.Enrollment {
	return s.enrollments.ByCourse(courseID)
}

// --- Cross-reference queries ---

// GetStudentsInCourse resolves the membership set of a course to student
// records, ordered by identifier. Identifiers that no longer resolve to a
// student are skipped. An unknown course yields ErrCourseNotFound.
func (s *ManagementService) GetStudentsInCourse(courseID models.CourseID) ([]*models.Student, error) {
	course, ok := s.GetCourse(courseID)
	if !ok {
		return nil, apperrors.NewNotFoundError(apperrors.ErrCourseNotFound, fmt.Sprintf("course %s not found", courseID))
	}

	ids := course.StudentIDs()
	students := make([]*models.Student, 0, len(ids))
	for _, id := range ids {
		student, ok := s.GetStudent(id)
		if !ok {
			s.logger.Warn().Int64("studentID", id).Str("courseID", string(courseID)).Msg("Enrolled student no longer exists")
			continue
		}
		students = append(students, student)
	}
	return students, nil
}

// GetCoursesForStudent returns, in course insertion order, the courses
// whose membership set contains the student identifier
func (s *ManagementService) GetCoursesForStudent(studentID int64) []*models.Course {
	return s.courses.ContainingStudent(studentID)
}

// --- Cascading cleanup ---

// PurgeResult counts what a purge removed
type PurgeResult struct {
	Removed     bool `json:"removed"`
	Enrollments int  `json:"enrollments"`
	Memberships int  `json:"memberships"`
}

// PurgeStudent removes a student together with its enrollment records and
// its identifier in every course membership set.
func (s *ManagementService) PurgeStudent(idNumber int64) PurgeResult {
	var result PurgeResult
	result.Removed = s.students.Delete(idNumber)
	result.Enrollments = s.enrollments.DeleteWhere(func(e *models.Enrollment) bool {
		return e.Student.Matches(idNumber)
	})
	for _, c := range s.courses.ContainingStudent(idNumber) {
		c.RemoveStudent(idNumber)
		result.Memberships++
	}

	s.logger.Info().
		Int64("studentID", idNumber).
		Bool("removed", result.Removed).
		Int("enrollments", result.Enrollments).
		Int("memberships", result.Memberships).
		Msg("Student purged")
	return result
}

// PurgeCourse removes a course together with its enrollment records
func (s *ManagementService) PurgeCourse(courseID models.CourseID) PurgeResult {
	var result PurgeResult
	if course, ok := s.GetCourse(courseID); ok {
		result.Memberships = course.EnrolledCount()
	}
	result.Removed = s.courses.Delete(courseID)
	result.Enrollments = s.enrollments.DeleteWhere(func(e *models.Enrollment) bool {
		return e.Course.Matches(courseID)
	})

	s.logger.Info().
		Str("courseID", string(courseID)).
		Bool("removed", result.Removed).
		Int("enrollments", result.Enrollments).
		Msg("Course purged")
	return result
}
