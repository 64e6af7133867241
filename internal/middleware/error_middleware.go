package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	var status int
	var detail *dto.ErrorDetail

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrRosterTooLarge):
		status = http.StatusRequestEntityTooLarge
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, err.Error())
	case errors.Is(err, apperrors.ErrRosterInvalid), errors.Is(err, apperrors.ErrRosterEmpty):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, err.Error())
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	default:
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		_ = c.Error(err)
	}

	var custom *apperrors.CustomError
	if status != http.StatusInternalServerError && errors.As(err, &custom) && custom.Details != nil {
		detail.WithDetails(custom.Details)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}
