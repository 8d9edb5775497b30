package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mblog/internal/pkg/response"
	"mblog/internal/service"
)

type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type postRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
}

func (r postRequest) toInput() service.PostInput {
	published := true
	if r.Published != nil {
		published = *r.Published
	}
	return service.PostInput{Title: r.Title, Content: r.Content, Published: published}
}

func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "title and content are required")
		return
	}
	post, err := h.posts.Create(c.Request.Context(), currentUser(c).ID, req.toInput())
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, post)
}

func (h *PostHandler) List(c *gin.Context) {
	search := c.Query("search")
	limit := parseUintQuery(c, "limit")
	skip := parseUintQuery(c, "skip")
	posts, err := h.posts.List(c.Request.Context(), currentUser(c).ID, search, limit, skip)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(c.Request.Context(), currentUser(c).ID, postID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "title and content are required")
		return
	}
	post, err := h.posts.Update(c.Request.Context(), currentUser(c).ID, postID, req.toInput())
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	if err := h.posts.Delete(c.Request.Context(), currentUser(c).ID, postID); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func postIDParam(c *gin.Context) (int64, bool) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid post id")
		return 0, false
	}
	return postID, true
}

func parseUintQuery(c *gin.Context, name string) uint {
	value := c.Query(name)
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0
	}
	return uint(parsed)
}
