package httpserver

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"emotion-assistant/internal/assistant"
	convUC "emotion-assistant/internal/conversation/usecase"
	"emotion-assistant/internal/middleware"
	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/scope"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage & auth
	postgresDB *sql.DB
	jwtManager scope.Manager
	cookie     middleware.CookieConfig
	mwConfig   middleware.Config

	// Assistant pipeline
	assistant    *assistant.Assistant
	conversation convUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	JWTManager scope.Manager
	Cookie     middleware.CookieConfig
	Middleware middleware.Config

	Assistant    *assistant.Assistant
	Conversation convUC.Config
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		postgresDB:   cfg.PostgresDB,
		jwtManager:   cfg.JWTManager,
		cookie:       cfg.Cookie,
		mwConfig:     cfg.Middleware,
		assistant:    cfg.Assistant,
		conversation: cfg.Conversation,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.assistant == nil {
		return errors.New("assistant is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
