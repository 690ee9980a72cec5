// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fairgadi/internal/auth"
	"fairgadi/internal/http/handlers"
	"fairgadi/internal/http/middleware"
	"fairgadi/internal/modules/fare"
	"fairgadi/internal/modules/user"
)

type RouterDeps struct {
	Fare   *fare.Service
	User   *user.Service
	Tokens *auth.Manager
	Logger *zap.Logger
	// RequireEstimateAuth gates the fare estimation route behind the bearer
	// token. Off by default, matching the original deployment.
	RequireEstimateAuth bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(deps.Logger), middleware.Recovery(deps.Logger))

	v1 := r.Group("/api/v1")

	userHandler := handlers.NewUserHandler(deps.User, deps.Tokens)
	v1.POST("/user/signup", userHandler.SignUp)
	v1.POST("/user/signin", userHandler.SignIn)

	authed := v1.Group("", middleware.Auth(deps.Tokens))
	authed.PUT("/user", userHandler.Update)
	authed.POST("/user/signout", userHandler.SignOut)

	fareHandler := handlers.NewFareHandler(deps.Fare, deps.Logger)
	fareGroup := v1.Group("/fare")
	if deps.RequireEstimateAuth {
		fareGroup.Use(middleware.Auth(deps.Tokens))
	}
	fareGroup.POST("/estimate", fareHandler.Estimate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
