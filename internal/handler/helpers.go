package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"mblog/internal/middleware"
	"mblog/internal/model"
	appErr "mblog/internal/pkg/errors"
	"mblog/internal/pkg/response"
)

func currentUser(c *gin.Context) *model.User {
	value, _ := c.Get(middleware.ContextUserKey)
	user, _ := value.(*model.User)
	return user
}

func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case err == appErr.ErrBadCredentials:
		response.Error(c, http.StatusForbidden, "bad_credentials", "incorrect email or password")
	case err == appErr.ErrUnauthorized:
		response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case err == appErr.ErrForbidden:
		response.Error(c, http.StatusForbidden, "forbidden", "forbidden")
	case err == appErr.ErrNotFound:
		response.Error(c, http.StatusNotFound, "not_found", "not found")
	case err == appErr.ErrInvalid:
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
	case err == appErr.ErrConflict:
		response.Error(c, http.StatusConflict, "conflict", "conflict")
	default:
		logutil.GetLogger(c.Request.Context()).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}
