package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "svw.info/kakuro/internal/adapters/http"
	"svw.info/kakuro/internal/config"
	"svw.info/kakuro/internal/hint"
	"svw.info/kakuro/internal/infrastructure/storage"
	"svw.info/kakuro/internal/solver"
	"svw.info/kakuro/internal/usecase"
	"svw.info/kakuro/internal/validator"
)

// requestLogger logs method, path, status, bytes, and duration in a
// human-readable format.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	_ = os.MkdirAll(cfg.DataDir, 0o755)

	// Wire providers → use cases → HTTP adapter
	uc := usecase.NewService(
		solver.NewConstraintSolver(),
		hint.NewForced(),
		validator.New(),
		storage.NewFS(cfg.DataDir),
	)
	h := httpadapter.New(uc, cfg.SolveTimeout)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(logger), gin.Recovery())
	h.Register(engine)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "data", cfg.DataDir)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
