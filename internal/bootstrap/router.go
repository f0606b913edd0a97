package bootstrap

import (
	"fmt"
	"time"

	httpapi "github.com/GoSim-25-26J-441/c4model-api/internal/api/http"
	"github.com/GoSim-25-26J-441/c4model-api/internal/api/http/middleware"
	c4http "github.com/GoSim-25-26J-441/c4model-api/internal/c4model/http"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName      string
	Version          string
	Diagrams         *service.DiagramService
	Dependencies     map[string]httpapi.Pinger
	Logger           *zap.SugaredLogger
	CORSAllowOrigins []string
	TrustedProxies   []string
	RateLimitRPS     float64
	RateLimitBurst   int
}

// BuildRouter wires middleware and routes. Forwarded client addresses are
// only honoured from TrustedProxies, so rate limiting keys on the peer
// address otherwise.
func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(cors.New(corsConfig(dep.CORSAllowOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Diagrams, dep.Dependencies)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))

	c4Handler := c4http.New(dep.Diagrams, dep.Logger)
	c4Handler.Register(api)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
