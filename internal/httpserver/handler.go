package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ai-therapist/internal/model"
	sessionHTTP "ai-therapist/internal/session/delivery/http"
	"ai-therapist/pkg/response"
)

var errRouteNotFound = response.Resp{ErrorCode: http.StatusNotFound, Message: "Route not found"}

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.gin.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, errRouteNotFound)
	})
	return nil
}

// registerMiddlewares installs the chain every request passes through.
// Order matters: the request id must exist before anything logs.
func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID(), srv.mw.CORS(), srv.mw.Logging())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Middlewares registered (production)")
	} else {
		srv.l.Infof(ctx, "Middlewares registered (%s)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.environment == string(model.EnvironmentProduction) {
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts the session, chat and RAG API under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	sessionHTTP.RegisterRoutes(srv.gin.Group("/api"), srv.sessionHandler, srv.mw)
	srv.l.Infof(ctx, "Session, chat and RAG routes registered under /api")

	return nil
}
