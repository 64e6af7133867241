package dto

import "github.com/yigit/studentrecords/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	ID   string `json:"id" binding:"required" example:"103"`
	Name string `json:"name" binding:"required" example:"biology"`
}

// UpdateCourseRequest represents course update data. When StudentIDs is
// omitted the current membership is kept.
type UpdateCourseRequest struct {
	Name       string  `json:"name" binding:"required"`
	StudentIDs []int64 `json:"studentIds"`
}

// CourseResponse represents a course and its membership set
type CourseResponse struct {
	ID         string  `json:"id" example:"103"`
	Name       string  `json:"name" example:"biology"`
	StudentIDs []int64 `json:"studentIds"`
}

// NewCourseResponse maps a course model to its response
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:         string(c.ID),
		Name:       c.Name,
		StudentIDs: c.StudentIDs(),
	}
}

// NewCourseListResponse maps a list of courses
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	result := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		result = append(result, NewCourseResponse(c))
	}
	return result
}
