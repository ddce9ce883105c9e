package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/smart-home-service/pkg/auth"
	"liyu1981.xyz/smart-home-service/pkg/home"
)

const (
	ctxKeyUserID   = "user_id"
	ctxKeyUsername = "username"
)

type RestfulServer struct {
	Server           *gin.Engine
	Home             *home.Home
	RateLimiterStore *home.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(userID uint) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(userID)
	}
}

func (rs *RestfulServer) CheckUserLimiter(userID uint) bool {
	limiter := rs.GetLimiter(userID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// RequireAuth validates the Bearer access token and stashes the user
// identity on the request context. Every device and assistant route sits
// behind this.
func (rs *RestfulServer) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	claims, err := auth.ValidateToken(tokenString, auth.TokenTypeAccess)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	c.Set(ctxKeyUserID, claims.UserID)
	c.Set(ctxKeyUsername, claims.Username)
	c.Next()
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(ctxKeyUserID)
}

func currentUsername(c *gin.Context) string {
	return c.GetString(ctxKeyUsername)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	authGroup := rs.Server.Group("/auth")
	{
		authGroup.POST("/register", rs.Register)
		authGroup.POST("/login", rs.Login)
		authGroup.POST("/refresh", rs.Refresh)
		authGroup.POST("/logout", rs.RequireAuth, rs.Logout)
	}

	api := rs.Server.Group("/", rs.RequireAuth)
	{
		api.GET("/devices", rs.ListDevices)
		api.POST("/devices", rs.CreateDevice)
		api.GET("/devices/:device_id", rs.GetDevice)
		api.PUT("/devices/:device_id", rs.UpdateDevice)
		api.DELETE("/devices/:device_id", rs.DeleteDevice)
		api.POST("/devices/:device_id/control", rs.ControlDevice)
		api.GET("/devices/:device_id/logs", rs.GetDeviceLogs)
		api.GET("/logs", rs.GetLogs)
		api.POST("/assistant/command", rs.AssistantCommand)
	}
}
