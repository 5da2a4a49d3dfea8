package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ParseURL  = "/parse"
	EscapeURL = "/escape"
	StripURL  = "/strip"
	RenderURL = "/render"
)

// Establishes HTTP router.
func (s *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(s.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.POST(ParseURL, s.parse)
	router.POST(EscapeURL, s.escape)
	router.POST(StripURL, s.strip)
	router.POST(RenderURL, s.render)

	server.Handler = router
	s.router = router
}

// handling CORS
func (s *Service) corsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// the service is a stateless REST API, connections from every origin are fine
		ctx.Header("Access-Control-Allow-Origin", "*")

		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		allowedHeaders := []string{
			"Content-Type",
		}
		ctx.Header("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ","))

		// If someone sends preflight (OPTIONS), respond 204 and return
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
