package handlers

import (
	"errors"
	"net/http"

	"budget_tracker/internal/adapter/http/middleware"
	"budget_tracker/internal/usecase"
	"budget_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errAuthenticationRequired = pkg.NewDomainErrorSimple("AUTHENTICATION_REQUIRED", "请先登录", http.StatusUnauthorized)
	errForbidden              = pkg.NewDomainErrorSimple("FORBIDDEN", "权限不足", http.StatusForbidden)
	errInvalidPayload         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "请求格式错误", http.StatusBadRequest)
)

// mapAccessError translates access policy failures. It returns nil for any
// other error.
func mapAccessError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAuthenticationRequired):
		return errAuthenticationRequired
	case errors.Is(err, usecase.ErrForbidden):
		return errForbidden
	default:
		return nil
	}
}

// authorize answers 401/403 before the request body is read. It reports
// whether the handler may continue.
func authorize(c *gin.Context, action usecase.Action) bool {
	if err := usecase.Authorize(middleware.IdentityFrom(c), action); err != nil {
		writeError(c, mapAccessError(err))
		return false
	}
	return true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "服务器内部错误", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
