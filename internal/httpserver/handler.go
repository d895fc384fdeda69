package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	leaveHTTP "leave-calendar-sync/internal/leave/delivery/http"
)

// EnvironmentProduction is the environment name that hides the swagger UI.
const EnvironmentProduction = "production"

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestID(), srv.mw.Logging())

	ctx := context.Background()
	if srv.environment == EnvironmentProduction {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.environment == EnvironmentProduction {
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	leaveHTTP.RegisterRoutes(api.Group("/leave"), srv.leaveHandler, srv.mw)
	srv.l.Infof(ctx, "Leave routes registered under /api/v1/leave")

	if srv.slackHandler != nil {
		srv.gin.POST("/webhook/slack", srv.slackHandler.HandleEvents)
		srv.l.Infof(ctx, "Slack events route registered at POST /webhook/slack")
	} else {
		srv.l.Infof(ctx, "Slack handler not configured, skipping webhook route")
	}

	return nil
}
