package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cylindertrack/internal/config"
)

// CORS returns a middleware that handles Cross-Origin Resource Sharing.
// A "*" entry or an empty list allows every origin.
func CORS(corsCfg config.CORSConfig) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = corsCfg.AllowAll()
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = corsCfg.AllowedOrigins
		cfg.AllowCredentials = true
	}
	cfg.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	cfg.AddAllowHeaders("Origin", "Content-Type", "Accept", "X-Request-ID")
	cfg.AddExposeHeaders("Content-Disposition", "Content-Length", "X-Request-ID")
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

