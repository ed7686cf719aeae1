package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request, skipping health checks
func Logger() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health"},
		Formatter: func(p gin.LogFormatterParams) string {
			return fmt.Sprintf("[mcfolio] %s | %3d | %12v | %-7s %s %s\n",
				p.TimeStamp.Format(time.RFC3339),
				p.StatusCode,
				p.Latency,
				p.Method,
				p.Path,
				p.ErrorMessage,
			)
		},
	})
}
