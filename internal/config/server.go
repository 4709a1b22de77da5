package config

import (
	"context"
	"edushelf/database/postgres"
	"edushelf/database/sqlite"
	bookHandler "edushelf/internal/api/book/handler"
	bookService "edushelf/internal/api/book/service"
	chatHandler "edushelf/internal/api/chat/handler"
	chatRepository "edushelf/internal/api/chat/repository"
	chatService "edushelf/internal/api/chat/service"
	"edushelf/internal/middleware"
	"edushelf/pkg/catalog"
	"edushelf/pkg/redis"
	"edushelf/pkg/responder"
	"edushelf/pkg/utils"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	env         *Env
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	catalog     catalog.ICatalog
	responder   responder.IResponder
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.env == nil {
		return nil, fmt.Errorf("env is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log, server.utils, middleware.Options{
			RateLimit: server.env.RateLimit,
			RateBurst: server.env.RateBurst,
		})
	}
	if server.catalog == nil {
		server.catalog = catalog.Default()
	}
	if server.responder == nil {
		server.responder = responder.New(server.catalog, responder.DefaultAliases)
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithEnv(env *Env) ServerOption {
	return func(s *Server) error {
		s.env = env
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		if db == nil {
			return fmt.Errorf("database handle is nil")
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.env == nil {
			return fmt.Errorf("env must be initialized before middleware")
		}
		if s.utils == nil {
			s.utils = utils.New()
		}
		s.middleware = middleware.New(s.log, s.utils, middleware.Options{
			RateLimit: s.env.RateLimit,
			RateBurst: s.env.RateBurst,
		})
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithCatalog(c catalog.ICatalog) ServerOption {
	return func(s *Server) error {
		s.catalog = c
		return nil
	}
}

func WithResponder(r responder.IResponder) ServerOption {
	return func(s *Server) error {
		s.responder = r
		return nil
	}
}

// OpenDatabase connects to the store selected by DB_DRIVER.
func OpenDatabase(env *Env) (*sqlx.DB, error) {
	switch env.DBDriver {
	case postgres.DriverName:
		return postgres.New(env.DatabaseURL)
	case sqlite.DriverName:
		path := env.DatabaseURL
		if path == "" {
			path = "edushelf.db"
		}
		return sqlite.New(path)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}

func (s *Server) RegisterHandler(ctx context.Context) error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware(), s.middleware.NewLoggingMiddleware())

	// Book Domain
	bookServices := bookService.NewBookService(s.log, s.catalog)
	bookHandlers := bookHandler.New(s.log, s.middleware, bookServices)

	// Chat Domain
	chatRepo := chatRepository.New(s.db, s.log)
	if err := chatRepo.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate chat history: %w", err)
	}
	chatServices := chatService.NewChatService(s.log, chatRepo, s.responder, s.redisServer, s.utils, chatService.Options{
		HistoryLimit:    s.env.HistoryLimit,
		HistoryCacheTTL: s.env.HistoryCacheTTL,
	})
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, bookHandlers, chatHandlers)

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}

	return nil
}

// App exposes the configured engine, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	return s.engine.Listen(fmt.Sprintf(":%s", s.env.AppPort))
}

// Shutdown stops accepting requests, then releases the cache and database.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if err := s.engine.ShutdownWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("fiber shutdown: %w", err))
	}
	if s.redisServer != nil {
		if err := s.redisServer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("database close: %w", err))
	}

	return errors.Join(errs...)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
