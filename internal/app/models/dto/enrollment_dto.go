package dto

import "github.com/yigit/studentrecords/internal/app/models"

// EnrollRequest links a student to a course
type EnrollRequest struct {
	StudentID int64  `json:"studentId" binding:"required,gt=0" example:"6444"`
	CourseID  string `json:"courseId" binding:"required" example:"100"`
}

// AssignGradeRequest sets the grade of an enrollment
type AssignGradeRequest struct {
	Grade     string `json:"grade" binding:"required" example:"b"`
	StudentID int64  `json:"studentId" binding:"required,gt=0" example:"6444"`
	CourseID  string `json:"courseId" binding:"required" example:"100"`
}

// EnrollmentResponse represents an enrollment record
type EnrollmentResponse struct {
	StudentID   int64   `json:"studentId" example:"6444"`
	StudentName string  `json:"studentName" example:"Ian"`
	CourseID    string  `json:"courseId" example:"100"`
	CourseName  string  `json:"courseName" example:"mathematics"`
	Grade       *string `json:"grade,omitempty" example:"B"`
}

// NewEnrollmentResponse maps an enrollment model to its response
func NewEnrollmentResponse(e *models.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		StudentID:   e.Student.IDNumber,
		StudentName: e.Student.Name,
		CourseID:    string(e.Course.ID),
		CourseName:  e.Course.Name,
	}
	if g, ok := e.Grade(); ok {
		resp.Grade = &g
	}
	return resp
}

// NewEnrollmentListResponse maps a list of enrollments
func NewEnrollmentListResponse(enrollments []*models.Enrollment) []EnrollmentResponse {
	result := make([]EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		result = append(result, NewEnrollmentResponse(e))
	}
	return result
}
