package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trackfit-companion/internal/middleware"
	"trackfit-companion/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	api := srv.gin.Group("/api/v1", mw.RateLimit())
	if err := srv.registerDomainRoutes(api); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID())
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, allowed origins %v", srv.allowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
	srv.gin.Use(mw.CORS(srv.allowedOrigins))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
