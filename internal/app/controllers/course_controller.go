package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/roster"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CourseController handles course-related operations
type CourseController struct {
	registry *services.Guarded
	exporter *roster.Exporter
}

// NewCourseController creates a new CourseController
func NewCourseController(registry *services.Guarded, exporter *roster.Exporter) *CourseController {
	return &CourseController{
		registry: registry,
		exporter: exporter,
	}
}

func courseNotFound(id models.CourseID) error {
	return apperrors.NewNotFoundError(apperrors.ErrCourseNotFound, fmt.Sprintf("course %s not found", id))
}

// CreateCourse adds a course
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course := models.NewCourse(req.Name, models.CourseID(req.ID))
	var resp dto.CourseResponse
	c.registry.Do(func(svc *services.ManagementService) {
		svc.AddCourse(course)
		resp = dto.NewCourseResponse(course)
	})

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Course created"))
}

// GetAllCourses lists courses in insertion order
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	var resp []dto.CourseResponse
	c.registry.Do(func(svc *services.ManagementService) {
		resp = dto.NewCourseListResponse(svc.Courses())
	})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetCourseByID retrieves a course
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id := courseIDParam(ctx)

	var resp dto.CourseResponse
	var found bool
	c.registry.Do(func(svc *services.ManagementService) {
		var course *models.Course
		if course, found = svc.GetCourse(id); found {
			resp = dto.NewCourseResponse(course)
		}
	})
	if !found {
		middleware.HandleAPIError(ctx, courseNotFound(id))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// UpdateCourse overwrites the name and, when given, the membership set
// @Summary Update a course
// @Tags courses
// @Accept json
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course information"
// @Success 204
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id := courseIDParam(ctx)
	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	c.registry.Do(func(svc *services.ManagementService) {
		updated := models.NewCourse(req.Name, id)
		if req.StudentIDs != nil {
			updated.ReplaceMembership(req.StudentIDs)
		} else if current, ok := svc.GetCourse(id); ok {
			updated.ReplaceMembership(current.StudentIDs())
		}
		svc.UpdateCourse(updated)
	})
	ctx.Status(http.StatusNoContent)
}

// DeleteCourse removes a course without cascading
// @Summary Remove a course
// @Tags courses
// @Param id path string true "Course ID"
// @Success 204
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id := courseIDParam(ctx)
	c.registry.Do(func(svc *services.ManagementService) {
		svc.RemoveCourse(id)
	})
	ctx.Status(http.StatusNoContent)
}

// PurgeCourse removes a course with its enrollments
// @Summary Purge a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=services.PurgeResult}
// @Router /courses/{id}/purge [delete]
func (c *CourseController) PurgeCourse(ctx *gin.Context) {
	id := courseIDParam(ctx)

	var result services.PurgeResult
	c.registry.Do(func(svc *services.ManagementService) {
		result = svc.PurgeCourse(id)
	})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Course purged"))
}

// GetCourseStudents lists the students enrolled in a course
// @Summary List a course's students
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/students [get]
func (c *CourseController) GetCourseStudents(ctx *gin.Context) {
	id := courseIDParam(ctx)

	var resp []dto.StudentResponse
	err := c.registry.DoE(func(svc *services.ManagementService) error {
		students, err := svc.GetStudentsInCourse(id)
		if err != nil {
			return err
		}
		resp = dto.NewStudentListResponse(students)
		return nil
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// ExportRoster downloads the course roster as an xlsx workbook
// @Summary Export a course roster
// @Tags courses
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Course ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/roster.xlsx [get]
func (c *CourseController) ExportRoster(ctx *gin.Context) {
	id := courseIDParam(ctx)

	var buf bytes.Buffer
	err := c.registry.DoE(func(svc *services.ManagementService) error {
		course, ok := svc.GetCourse(id)
		if !ok {
			return courseNotFound(id)
		}
		return c.exporter.ExportCourse(&buf, course, svc.EnrollmentsForCourse(id))
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="course-%s-roster.xlsx"`, id))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
