package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mblog/internal/pkg/response"
	"mblog/internal/service"
)

type UserHandler struct {
	auth *service.AuthService
}

func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "a valid email and a password are required")
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid user id")
		return
	}
	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}
