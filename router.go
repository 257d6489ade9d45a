package main

import (
	"crypto/subtle"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"net/http"
	"time"
)

const ApiVersion = "v1"

const AdminPasswordHeader = "X-Admin-Password"

func SetupRouter(controller contracts.ApiController, adminPassword string, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.GET("/options", controller.OptionsAction)
	apiRouterGroup.GET("/reviewers/:name/items", controller.ReviewerItemsAction)
	apiRouterGroup.POST("/reviewers/:name/evaluations", controller.SubmitEvaluationsAction)

	adminRouterGroup := apiRouterGroup.Group("/admin", adminGate(adminPassword))
	adminRouterGroup.GET("/items", controller.ListItemsAction)
	adminRouterGroup.POST("/assignments", controller.AssignItemsAction)
	adminRouterGroup.POST("/assignments/rule", controller.AssignByRuleAction)
	adminRouterGroup.GET("/summary", controller.SummaryAction)
	adminRouterGroup.GET("/export", controller.ExportAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// adminGate lets a request through only when it carries the admin password.
// An empty password closes the admin routes.
func adminGate(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := c.GetHeader(AdminPasswordHeader)
		if password == "" || subtle.ConstantTimeCompare([]byte(given), []byte(password)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin password required"})
			return
		}
		c.Next()
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
