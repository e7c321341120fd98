package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/datapull"
	"github.com/2beens/fitdash/internal/db"
	"github.com/2beens/fitdash/internal/lifting"
	"github.com/2beens/fitdash/internal/middleware"
	"github.com/2beens/fitdash/internal/misc"
	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/internal/web"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	admin             middleware.Admin

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	renderer    *web.Renderer

	liftingService *lifting.Service
	refresher      *datapull.Refresher
	statusRepo     *datapull.StatusRepo
	scheduler      *datapull.Scheduler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type staleRunsDeleter interface {
	DeleteProcessing(ctx context.Context) (int64, error)
}

type lockResetter interface {
	ResetLock(ctx context.Context) (bool, error)
}

// cleanupStaleRuns clears what a crashed previous process left behind.
// Failures are logged, startup goes on.
func cleanupStaleRuns(ctx context.Context, statuses staleRunsDeleter, lock lockResetter) {
	if deleted, err := statuses.DeleteProcessing(ctx); err != nil {
		log.Errorf("delete stale processing refresh runs: %s", err)
	} else if deleted > 0 {
		log.Warnf("deleted %d stale processing refresh runs", deleted)
	}

	if reset, err := lock.ResetLock(ctx); err != nil {
		log.Errorf("%s", err)
	} else if reset {
		log.Warnf("released stale refresh lock")
	}
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	OuraToken               string
	GDriveCredentials       []byte
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}
	if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	statusRepo := datapull.NewStatusRepo(dbPool)

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitdash", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := NewRedisClient(ctx, params.Config, params.RedisPassword, params.HoneycombTracingEnabled)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitdash")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Minute,
	}

	refresher, err := NewRefresher(ctx, RefresherSetupParams{
		Config:            params.Config,
		DBPool:            dbPool,
		RedisClient:       rdb,
		MetricsManager:    metricsManager,
		HTTPClient:        tracedHttpClient,
		OuraToken:         params.OuraToken,
		GDriveCredentials: params.GDriveCredentials,
	})
	if err != nil {
		return nil, fmt.Errorf("new refresher: %w", err)
	}
	cleanupStaleRuns(ctx, statusRepo, refresher)

	renderer, err := web.NewRenderer(params.Config.Layout)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	s := &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,
		admin: middleware.Admin{
			Username:     params.AdminUsername,
			PasswordHash: params.AdminPasswordHash,
		},
		dbPool:      dbPool,
		redisClient: rdb,
		renderer:    renderer,

		liftingService: lifting.NewService(lifting.NewRepo(dbPool), params.Config.Palette, nil),
		refresher:      refresher,
		statusRepo:     statusRepo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if params.Config.CronHourlyPull {
		scheduler, err := datapull.NewScheduler(params.Config.CronSpec, datapull.HourlyJob(refresher))
		var schedErr *datapull.SchedulerError
		if errors.As(err, &schedErr) {
			log.Errorf("periodic refresh disabled: %s", schedErr)
		} else if err != nil {
			return nil, fmt.Errorf("new scheduler: %w", err)
		}
		s.scheduler = scheduler
	} else {
		log.Infoln("periodic refresh disabled by config")
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitdash-router"))

	miscHandler := misc.NewHandler(s.versionInfo, "/lifting")
	miscHandler.AddHealthCheck("postgres", s.dbPool)
	miscHandler.AddHealthCheck("redis", misc.PingerFunc(func(ctx context.Context) error {
		return s.redisClient.Ping(ctx).Err()
	}))
	miscHandler.SetupRoutes(r)

	r.PathPrefix("/static/").Handler(web.StaticHandler("/static/")).Methods("GET").Name("static")

	liftingHandler := lifting.NewHandler(s.liftingService, s.renderer, s.metricsManager)
	liftingHandler.SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	refreshHandler := datapull.NewHandler(s.refresher, s.statusRepo)
	refreshHandler.SetupRoutes(
		r,
		middleware.AdminAuth(s.admin),
		middleware.RateLimit(reqRateLimiter, "refresh", s.config.RefreshRateLimitPerMinute, s.metricsManager),
	)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	if s.scheduler != nil {
		s.scheduler.Start()
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	// running jobs are not waited for; their lock expires on its own
	if s.scheduler != nil {
		s.scheduler.Stop()
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
