package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "wanderly.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error to its HTTP shape. Sentinel errors carry
// their status via the mapping below; AppError carries its own.
func Error(c *gin.Context, err error) {
	var ife *domainerrors.InsufficientFundsError
	if errors.As(err, &ife) {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":    "Insufficient token balance",
			"required": ife.Required,
			"balance":  ife.Balance,
		})
		return
	}

	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"error":   appErr.Message, // Backward compatibility
		})
		return
	}

	status, code := statusFor(err)
	c.JSON(status, gin.H{
		"code":    code,
		"message": err.Error(),
		"error":   err.Error(),
	})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound, "ERR_NOT_FOUND"
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return http.StatusConflict, "ERR_CONFLICT"
	case errors.Is(err, domainerrors.ErrAlreadyFinalized):
		return http.StatusConflict, "ERR_ALREADY_FINALIZED"
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return http.StatusBadRequest, "ERR_BAD_REQUEST"
	case errors.Is(err, domainerrors.ErrInvalidState), errors.Is(err, domainerrors.ErrProfileRequired):
		return http.StatusBadRequest, "ERR_INVALID_STATE"
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized, "ERR_UNAUTHORIZED"
	case errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden, "ERR_FORBIDDEN"
	case errors.Is(err, domainerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "ERR_INSUFFICIENT_FUNDS"
	default:
		return http.StatusInternalServerError, "ERR_INTERNAL"
	}
}
