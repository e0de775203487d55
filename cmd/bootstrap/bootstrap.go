package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/infrastructure/metrics"
	"doctor-directory/internal/infrastructure/remote"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config     *config.Config
	Log        *logrus.Logger
	HTTPClient *http.Client
	Server     *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	log, err := setupLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	log.Info("Configuration loaded successfully")

	return newApp(context.Background(), cfg, log), nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
	return log, nil
}

// newApp wires every layer and loads the directory snapshot. The snapshot
// is in place before the server is built, so no request sees a partial list.
func newApp(ctx context.Context, cfg *config.Config, log *logrus.Logger) *App {
	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	httpClient := remote.NewHTTPClient(cfg.Source, log)
	doctorRepo := repository.NewDoctorRepository(httpClient, cfg.Source.URL, log, m)

	// Initialize usecases
	directoryUsecase := usecase.NewDirectoryUsecase(log, doctorRepo, m)
	directoryUsecase.Load(ctx)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, customValidator, cfg.App.PagePath)
	specialtyHandler := handler.NewSpecialtyHandler(directoryUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware(m)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, specialtyHandler, corsMiddleware, loggingMiddleware, metricsMiddleware, registry)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &App{
		Config:     cfg,
		Log:        log,
		HTTPClient: httpClient,
		Server: &http.Server{
			Addr:              serverAddr,
			Handler:           router.Setup(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", app.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.Server.Addr, err)
	}

	return app.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is done, then shuts the
// server down gracefully.
func (app *App) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on %s", listener.Addr())
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		app.Close()
		if err == nil {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	err := app.Server.Shutdown(shutdownCtx)
	<-errCh
	app.Close()
	if err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close releases idle connections held by the record source client
func (app *App) Close() {
	if app.HTTPClient != nil {
		app.HTTPClient.CloseIdleConnections()
	}
}
