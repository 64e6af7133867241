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

// InstructorController handles instructor-related operations
type InstructorController struct {
	registry *services.Guarded
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(registry *services.Guarded) *InstructorController {
	return &InstructorController{
		registry: registry,
	}
}

// CreateInstructor adds an instructor
// @Summary Create an instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body dto.CreateInstructorRequest true "Instructor information"
// @Success 201 {object} dto.APIResponse{data=dto.InstructorResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	instructor := models.NewInstructor(req.Name, req.IDNumber, req.Department)
	var resp dto.InstructorResponse
	c.registry.Do(func(svc *services.ManagementService) {
		svc.AddInstructor(instructor)
		resp = dto.NewInstructorResponse(instructor)
	})

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Instructor created"))
}

// GetAllInstructors lists instructors
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse}
// @Router /instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	var resp []dto.InstructorResponse
	c.registry.Do(func(svc *services.ManagementService) {
		resp = dto.NewInstructorListResponse(svc.Instructors())
	})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetInstructorByID retrieves an instructor
// @Summary Get instructor by ID
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors/{id} [get]
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	var resp dto.InstructorResponse
	var found bool
	c.registry.Do(func(svc *services.ManagementService) {
		var instructor *models.Instructor
		if instructor, found = svc.GetInstructor(id); found {
			resp = dto.NewInstructorResponse(instructor)
		}
	})
	if !found {
		middleware.HandleAPIError(ctx, apperrors.NewNotFoundError(apperrors.ErrInstructorNotFound, fmt.Sprintf("instructor %d not found", id)))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// UpdateInstructor overwrites name and department. Unknown ids are ignored.
// @Summary Update an instructor
// @Tags instructors
// @Accept json
// @Param id path int true "Instructor ID"
// @Param request body dto.UpdateInstructorRequest true "Instructor information"
// @Success 204
// @Router /instructors/{id} [put]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}
	var req dto.UpdateInstructorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	c.registry.Do(func(svc *services.ManagementService) {
		svc.UpdateInstructor(models.NewInstructor(req.Name, id, req.Department))
	})
	ctx.Status(http.StatusNoContent)
}

// DeleteInstructor removes an instructor
// @Summary Remove an instructor
// @Tags instructors
// @Param id path int true "Instructor ID"
// @Success 204
// @Router /instructors/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	c.registry.Do(func(svc *services.ManagementService) {
		svc.RemoveInstructor(id)
	})
	ctx.Status(http.StatusNoContent)
}
