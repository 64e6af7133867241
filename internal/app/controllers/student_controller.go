package controllers

import (
	"errors"
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

// StudentController handles student-related operations
type StudentController struct {
	registry      *services.Guarded
	maxUploadSize int64
}

// NewStudentController creates a new StudentController
func NewStudentController(registry *services.Guarded, maxUploadSize int64) *StudentController {
	return &StudentController{
		registry:      registry,
		maxUploadSize: maxUploadSize,
	}
}

// CreateStudent adds a student
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student := models.NewStudent(req.Name, req.IDNumber, req.Major)
	var resp dto.StudentResponse
	c.registry.Do(func(svc *services.ManagementService) {
		svc.AddStudent(student)
		resp = dto.NewStudentResponse(student)
	})

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Student created"))
}

// GetAllStudents lists students in insertion order
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	var resp []dto.StudentResponse
	c.registry.Do(func(svc *services.ManagementService) {
		resp = dto.NewStudentListResponse(svc.Students())
	})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetStudentByID retrieves a student
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student")
	if !ok {
		return
	}

	var resp dto.StudentResponse
	var found bool
	c.registry.Do(func(svc *services.ManagementService) {
		var student *models.Student
		if student, found = svc.GetStudent(id); found {
			resp = dto.NewStudentResponse(student)
		}
	})
	if !found {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(apperrors.ErrStudentNotFound, fmt.Sprintf("student %d not found", id)))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// UpdateStudent overwrites name and major. Unknown ids are ignored.
// @Summary Update a student
// @Tags students
// @Accept json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student information"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student")
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	c.registry.Do(func(svc *services.ManagementService) {
		svc.UpdateStudent(models.NewStudent(req.Name, id, req.Major))
	})
	ctx.Status(http.StatusNoContent)
}

// DeleteStudent removes a student without cascading
// @Summary Remove a student
// @Tags students
// @Param id path int true "Student ID"
// @Success 204
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student")
	if !ok {
		return
	}

	c.registry.Do(func(svc *services.ManagementService) {
		svc.RemoveStudent(id)
	})
	ctx.Status(http.StatusNoContent)
}

// PurgeStudent removes a student with its enrollments and memberships
// @Summary Purge a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=services.PurgeResult}
// @Router /students/{id}/purge [delete]
func (c *StudentController) PurgeStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student")
	if !ok {
		return
	}

	var result services.PurgeResult
	c.registry.Do(func(svc *services.ManagementService) {
		result = svc.PurgeStudent(id)
	})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Student purged"))
}

// GetStudentCourses lists the courses a student is enrolled in
// @Summary List a student's courses
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Router /students/{id}/courses [get]
func (c *StudentController) GetStudentCourses(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student")
	if !ok {
		return
	}

	var resp []dto.CourseResponse
	c.registry.Do(func(svc *services.ManagementService) {
		resp = dto.NewCourseListResponse(svc.GetCoursesForStudent(id))
	})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetStudentEnrollments lists a student's enrollments with their grades
// @Summary List a student's enrollments
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse}
// @Router /students/{id}/enrollments [get]
func (c *StudentController) GetStudentEnrollments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student")
	if !ok {
		return
	}

	var resp []dto.EnrollmentResponse
	c.registry.Do(func(svc *services.ManagementService) {
		resp = dto.NewEnrollmentListResponse(svc.EnrollmentsForStudent(id))
	})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// ImportStudents adds every student listed in an uploaded xlsx roster
// @Summary Import students from a spreadsheet
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx roster with ID, Name, Major columns"
// @Success 201 {object} dto.APIResponse{data=dto.ImportStudentsResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/import [post]
func (c *StudentController) ImportStudents(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadSize)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.HandleAPIError(ctx, &apperrors.CustomError{
				Err:     apperrors.ErrRosterTooLarge,
				Message: fmt.Sprintf("roster exceeds %d bytes", tooLarge.Limit),
				Details: map[string]interface{}{"limit": tooLarge.Limit},
			})
			return
		}
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("a roster file is required in the 'file' field"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("failed to open uploaded roster: %w", err))
		return
	}
	defer file.Close()

	result, err := roster.ImportStudents(file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.registry.Do(func(svc *services.ManagementService) {
		for _, s := range result.Students {
			svc.AddStudent(s)
		}
	})

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ImportStudentsResponse{
		Imported:    len(result.Students),
		SkippedRows: result.SkippedRows,
	}, "Students imported"))
}
