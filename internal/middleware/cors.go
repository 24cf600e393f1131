package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// credentialedHeaders are the request headers allowed when CORS is limited
// to named origins. Browsers ignore a "*" header list on credentialed
// requests.
var credentialedHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader}

// CORS middleware to handle cross-origin requests. A "*" entry opens the API
// to every origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:        24 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
		cfg.AllowHeaders = credentialedHeaders
	}

	return cors.New(cfg)
}
