package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	barDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/bar"
	tickDomain "github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/domain/tick"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/config"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/logger"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/util"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server exposes the read side of the pipeline over HTTP.
type Server struct {
	cfg         config.AppConfig
	logger      logger.Interface
	tickUsecase tickDomain.Usecase
	barUsecase  barDomain.Usecase
	db          postgresql.PostgreSQLClient

	engine *gin.Engine
	http   *http.Server
}

// NewServer creates a new API server and registers its routes.
func NewServer(
	cfg config.AppConfig,
	logger logger.Interface,
	tickUsecase tickDomain.Usecase,
	barUsecase barDomain.Usecase,
	db postgresql.PostgreSQLClient,
) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:         cfg,
		logger:      logger,
		tickUsecase: tickUsecase,
		barUsecase:  barUsecase,
		db:          db,
		engine:      gin.New(),
	}

	s.engine.Use(gin.Recovery(), s.requestIDMiddleware())
	s.registerRoutes()

	return s
}

// Engine returns the underlying gin engine, used by handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/ready", s.handleReady)
	s.engine.GET("/version", s.handleVersion)
	s.engine.GET("/symbols", s.handleSymbols)
	s.engine.GET("/ticks/latest", s.handleLatestTicks)
	s.engine.GET("/ticks/summary", s.handleTickSummary)
	s.engine.GET("/bars/latest", s.handleLatestBars)
	s.engine.GET("/bars/summary", s.handleBarSummary)
	s.engine.GET("/movers", s.handleMovers)
}

// requestIDMiddleware threads a request id through the context so logs
// for one request can be correlated.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := util.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-ID"))
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", util.GetRequestID(ctx))
		c.Next()
	}
}

// Start serves HTTP until the context is cancelled, then drains
// in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.InfoContext(ctx, "api server started", logger.NewField("port", s.cfg.Port))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
