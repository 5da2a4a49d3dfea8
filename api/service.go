package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Drolfothesgnir/tagmark/markup"
	"github.com/Drolfothesgnir/tagmark/util"
)

// Service exposes the markup interpreter over HTTP.
type Service struct {
	config util.Config
	server *http.Server
	router *gin.Engine

	// one interpreter per mode, both immutable and shared across requests
	lenient *markup.Markup
	strict  *markup.Markup
}

// NewService returns a new service instance with the provided config.
func NewService(config util.Config) (*Service, error) {
	service := &Service{
		config:  config,
		lenient: markup.New(),
		strict:  markup.New(markup.Strict()),
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you'll spend writing the response (no "forever hanging" clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// interpreter picks the parse mode for one request: the per-request flag
// wins, otherwise the configured default applies.
func (s *Service) interpreter(strict bool) *markup.Markup {
	if strict || s.config.StrictParsing {
		return s.strict
	}
	return s.lenient
}

// Start runs the HTTP server
func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
