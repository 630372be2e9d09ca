package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Option func(*Options)

type Options struct {
	port          int
	mode          string
	logger        *zap.Logger
	readTimeout   time.Duration
	writeTimeout  time.Duration
	enableLogging bool
}

func WithPort(port int) Option {
	return func(o *Options) {
		o.port = port
	}
}

// WithMode sets the gin mode (debug, release, test).
func WithMode(mode string) Option {
	return func(o *Options) {
		o.mode = mode
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.readTimeout = d
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.writeTimeout = d
	}
}

func WithLogging(enabled bool) Option {
	return func(o *Options) {
		o.enableLogging = enabled
	}
}

type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// New creates an HTTP server using the builder options. The engine comes
// with panic recovery, optional request logging and a /health route.
func New(opts ...Option) (*Server, error) {
	options := &Options{
		port:         8000,
		mode:         gin.ReleaseMode,
		logger:       zap.NewNop(),
		readTimeout:  15 * time.Second,
		writeTimeout: 60 * time.Second,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.port < 1 || options.port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 1 and 65535", options.port)
	}

	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(options.mode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	if options.enableLogging {
		engine.Use(RequestLogger(logger))
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", options.port),
			Handler:      engine,
			ReadTimeout:  options.readTimeout,
			WriteTimeout: options.writeTimeout,
		},
		logger: logger.Named("http-server"),
	}, nil
}

// RegisterRoutes allows the main application to register its route groups.
func (s *Server) RegisterRoutes(registerFunc func(e *gin.Engine)) {
	registerFunc(s.engine)
}

// Engine exposes the underlying gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start runs the server in a goroutine and returns immediately.
func (s *Server) Start() {
	s.logger.Info("http server starting", zap.String("addr", s.httpServer.Addr))

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server failed", zap.Error(err))
		}
	}()
}

// Shutdown drains in-flight requests until the context deadline, then
// forces the listener closed.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn("forced shutdown due to timeout", zap.Error(err))
		return err
	}

	s.logger.Info("http server stopped")
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
