package dto

import "github.com/yigit/studentrecords/internal/app/models"

// CreateInstructorRequest represents instructor creation data
type CreateInstructorRequest struct {
	IDNumber   int64  `json:"idNumber" binding:"required,gt=0" example:"3782"`
	Name       string `json:"name" binding:"required" example:"james"`
	Department string `json:"department" binding:"required" example:"biology"`
}

// UpdateInstructorRequest represents instructor update data
type UpdateInstructorRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// InstructorResponse represents an instructor
type InstructorResponse struct {
	IDNumber   int64  `json:"idNumber" example:"3782"`
	Name       string `json:"name" example:"James"`
	Department string `json:"department" example:"biology"`
	Role       string `json:"role" example:"INSTRUCTOR"`
}

// NewInstructorResponse maps an instructor model to its response
func NewInstructorResponse(i *models.Instructor) InstructorResponse {
	return InstructorResponse{
		IDNumber:   i.IDNumber,
		Name:       i.Name,
		Department: i.Department,
		Role:       string(models.RoleOf(i)),
	}
}

// NewInstructorListResponse maps a list of instructors
func NewInstructorListResponse(instructors []*models.Instructor) []InstructorResponse {
	result := make([]InstructorResponse, 0, len(instructors))
	for _, i := range instructors {
		result = append(result, NewInstructorResponse(i))
	}
	return result
}
