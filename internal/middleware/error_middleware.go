package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/campusreg/internal/app/models/dto"
	"github.com/deniz/campusreg/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Handlers call it
// with whatever the service returned; enrollment handlers override the
// mapping for the cases where the enrollment contract differs.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrStudentNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrEnrollmentNotFound,
		apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrStudentIDAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrCourseCodeAlreadyExists,
		apperrors.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrStudentHasEnrollments,
		apperrors.ErrCourseHasEnrollments):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceInUse, err.Error()),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
