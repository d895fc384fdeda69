package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	leaveHTTP "leave-calendar-sync/internal/leave/delivery/http"
	slackDelivery "leave-calendar-sync/internal/leave/delivery/slack"
	"leave-calendar-sync/internal/middleware"
	"leave-calendar-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Leave domain
	storeBackend string
	leaveHandler leaveHTTP.Handler

	// Slack Events API
	slackHandler slackDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// InternalKey is required on the routes that write to the store.
	InternalKey string

	// Leave domain
	StoreBackend string
	LeaveHandler leaveHTTP.Handler

	// Slack Events API. Nil disables POST /webhook/slack.
	SlackHandler slackDelivery.Handler
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           middleware.New(logger, cfg.InternalKey),
		storeBackend: cfg.StoreBackend,
		leaveHandler: cfg.LeaveHandler,
		slackHandler: cfg.SlackHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.leaveHandler == nil {
		return errors.New("leave handler is required")
	}
	return nil
}
