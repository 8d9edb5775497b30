package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"mblog/internal/handler"
	"mblog/internal/middleware"
	"mblog/internal/pkg/jwt"
	"mblog/internal/repo"
	"mblog/internal/service"
	"mblog/internal/testutil"
)

func setupRouter(t *testing.T) (http.Handler, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, cleanup := testutil.OpenTestDB(t)

	signer, err := jwt.NewSigner([]byte("test-secret"), "HS256", time.Hour)
	require.NoError(t, err)

	userRepo := repo.NewUserRepo(conn)
	postRepo := repo.NewPostRepo(conn)
	authService := service.NewAuthService(userRepo, signer)
	postService := service.NewPostService(postRepo)

	deps := handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService),
		Users:         handler.NewUserHandler(authService),
		Posts:         handler.NewPostHandler(postService),
		Authenticator: authService,
	}

	engine, err := webapi.NewEngine(
		"/",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)

	return engine, cleanup
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createTestUser(t *testing.T, router http.Handler, email, pass string) int64 {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/user", "", map[string]string{"email": email, "password": pass})
	require.Equal(t, http.StatusCreated, resp.Code)
	var user struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))
	return user.ID
}

func loginTestUser(t *testing.T, router http.Handler, email, pass string) string {
	t.Helper()
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", pass)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}
