package bootstrap

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetGinMode maps APP_ENV to a gin mode and sends gin's route debug lines
// to the application logger.
func SetGinMode(env string, log *zap.SugaredLogger) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	gin.DebugPrintRouteFunc = func(method, path, handler string, handlers int) {
		log.Debugw("route registered", "method", method, "path", path, "handler", handler, "middleware", handlers-1)
	}
}
