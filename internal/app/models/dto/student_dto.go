package dto

import "github.com/yigit/studentrecords/internal/app/models"

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	IDNumber int64  `json:"idNumber" binding:"required,gt=0" example:"5443"`
	Name     string `json:"name" binding:"required" example:"imma"`
	Major    string `json:"major" binding:"required" example:"mathematics"`
}

// UpdateStudentRequest represents student update data; the id comes from the path
type UpdateStudentRequest struct {
	Name  string `json:"name" binding:"required"`
	Major string `json:"major" binding:"required"`
}

// StudentResponse represents a student
type StudentResponse struct {
	IDNumber int64  `json:"idNumber" example:"5443"`
	Name     string `json:"name" example:"Imma"`
	Major    string `json:"major" example:"Mathematics"`
	Role     string `json:"role" example:"STUDENT"`
}

// NewStudentResponse maps a student model to its response
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		IDNumber: s.IDNumber,
		Name:     s.Name,
		Major:    s.Major,
		Role:     string(models.RoleOf(s)),
	}
}

// NewStudentListResponse maps a list of students
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	result := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		result = append(result, NewStudentResponse(s))
	}
	return result
}

// ImportStudentsResponse reports the outcome of a roster upload
type ImportStudentsResponse struct {
	Imported    int   `json:"imported" example:"2"`
	SkippedRows []int `json:"skippedRows,omitempty"`
}
