package handler

import (
	"github.com/gin-gonic/gin"

	"mblog/internal/middleware"
)

type RouterDeps struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Posts         *PostHandler
	Authenticator middleware.Authenticator
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/login", deps.Auth.Login)
	api.POST("/user", deps.Users.Create)
	api.GET("/user/:id", deps.Users.Get)

	authGroup := api.Group("")
	authGroup.Use(middleware.Auth(deps.Authenticator))
	authGroup.POST("/posts", deps.Posts.Create)
	authGroup.GET("/posts", deps.Posts.List)
	authGroup.GET("/posts/:id", deps.Posts.Get)
	authGroup.PUT("/posts/:id", deps.Posts.Update)
	authGroup.DELETE("/posts/:id", deps.Posts.Delete)
}
