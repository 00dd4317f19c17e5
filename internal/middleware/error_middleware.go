package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to coded API responses. Custom errors
// carry their own message; sentinel errors map to stable codes and standard
// messages.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		status, code := statusAndCode(err)
		detail := dto.NewErrorDetail(code, customErr.Message)
		if customErr.Details != nil {
			detail = detail.WithDetails(customErr.Details)
		}
		c.JSON(status, dto.APIResponse{Error: detail})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrAccountBlocked):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeAccountBlocked, "Account blocked"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		})
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"),
		})

	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found"),
		})
	case errors.Is(err, apperrors.ErrClubNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Club not found"),
		})
	case errors.Is(err, apperrors.ErrEventNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Event not found"),
		})
	case errors.Is(err, apperrors.ErrClubRequestNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Club request not found"),
		})
	case errors.Is(err, apperrors.ErrAnnouncementNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Announcement not found"),
		})
	case errors.Is(err, apperrors.ErrRecruitmentPostNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Recruitment post not found"),
		})
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Application not found"),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})

	case errors.Is(err, apperrors.ErrAlreadyMember):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "You are already a member of this club"),
		})
	case errors.Is(err, apperrors.ErrNotMember):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "You are not a member of this club"),
		})
	case errors.Is(err, apperrors.ErrWrongUniversity):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeActionNotAllowed, "This is restricted to members of its university"),
		})
	case errors.Is(err, apperrors.ErrClubPrivate):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeActionNotAllowed, "This club is invitation only"),
		})
	case errors.Is(err, apperrors.ErrPresidentCantLeave):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "The president cannot leave the club"),
		})

	case errors.Is(err, apperrors.ErrEventFull):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeActionNotAllowed, "Event has reached capacity"),
		})
	case errors.Is(err, apperrors.ErrRegistrationClosed):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeActionNotAllowed, "Registration is closed"),
		})
	case errors.Is(err, apperrors.ErrEventEnded):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeActionNotAllowed, "Event has already ended"),
		})
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "You are already registered for this event"),
		})
	case errors.Is(err, apperrors.ErrNotRegistered):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "You are not registered for this event"),
		})

	case errors.Is(err, apperrors.ErrRequestNotPending):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "This request has already been reviewed"),
		})

	case errors.Is(err, apperrors.ErrOwnPost):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "You cannot apply to your own post"),
		})
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "You have already applied to this post"),
		})

	case errors.Is(err, apperrors.ErrInvalidPassword):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidPassword, "Current password is incorrect"),
		})
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"),
		})

	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

// statusAndCode resolves the HTTP status and error code for a wrapped
// custom error from its underlying sentinel
func statusAndCode(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return 400, dto.ErrorCodeValidationFailed
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return 403, dto.ErrorCodeForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return 404, dto.ErrorCodeResourceNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return 409, dto.ErrorCodeResourceConflict
	}
	return 500, dto.ErrorCodeInternalServer
}
