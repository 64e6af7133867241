package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// EnrollmentController handles enrollment and grading
type EnrollmentController struct {
	registry *services.Guarded
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(registry *services.Guarded) *EnrollmentController {
	return &EnrollmentController{
		registry: registry,
	}
}

// GetAllEnrollments lists enrollment records
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse}
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	var resp []dto.EnrollmentResponse
	c.registry.Do(func(svc *services.ManagementService) {
		resp = dto.NewEnrollmentListResponse(svc.Enrollments())
	})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetEnrollment retrieves the enrollment linking a student to a course
// @Summary Get an enrollment
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /enrollments/{studentId}/{courseId} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "Student")
	if !ok {
		return
	}
	courseID := models.CourseID(ctx.Param("courseId"))

	var resp dto.EnrollmentResponse
	var found bool
	c.registry.Do(func(svc *services.ManagementService) {
		var enrollment *models.Enrollment
		if enrollment, found = svc.GetEnrollment(studentID, courseID); found {
			resp = dto.NewEnrollmentResponse(enrollment)
		}
	})
	if !found {
		err := apperrors.NewNotFoundError(apperrors.ErrEnrollmentNotFound,
			fmt.Sprintf("student %d is not enrolled in course %s", studentID, courseID)).
			WithDetails(map[string]interface{}{"studentId": studentID, "courseId": string(courseID)})
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// EnrollStudent links a student to a course. Unknown ids are ignored, so
// the response is always 204.
// @Summary Enroll a student
// @Tags enrollments
// @Accept json
// @Param request body dto.EnrollRequest true "Enrollment"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Router /enrollments [post]
func (c *EnrollmentController) EnrollStudent(ctx *gin.Context) {
	var req dto.EnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	c.registry.Do(func(svc *services.ManagementService) {
		svc.EnrollStudent(req.StudentID, models.CourseID(req.CourseID))
	})
	ctx.Status(http.StatusNoContent)
}

// AssignGrade grades an enrollment. Unknown pairs are ignored.
// @Summary Assign a grade
// @Tags enrollments
// @Accept json
// @Param request body dto.AssignGradeRequest true "Grade"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Router /enrollments/grade [put]
func (c *EnrollmentController) AssignGrade(ctx *gin.Context) {
	var req dto.AssignGradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	c.registry.Do(func(svc *services.ManagementService) {
		svc.AssignGrade(req.Grade, req.StudentID, models.CourseID(req.CourseID))
	})
	ctx.Status(http.StatusNoContent)
}
