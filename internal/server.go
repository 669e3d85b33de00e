package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/fitadapt/internal/auth"
	"github.com/2beens/fitadapt/internal/coach"
	"github.com/2beens/fitadapt/internal/completion"
	"github.com/2beens/fitadapt/internal/config"
	"github.com/2beens/fitadapt/internal/db"
	"github.com/2beens/fitadapt/internal/fitness/challenges"
	"github.com/2beens/fitadapt/internal/fitness/dashboard"
	"github.com/2beens/fitadapt/internal/fitness/goals"
	"github.com/2beens/fitadapt/internal/fitness/groupchallenges"
	"github.com/2beens/fitadapt/internal/fitness/profile"
	"github.com/2beens/fitadapt/internal/fitness/workouts"
	"github.com/2beens/fitadapt/internal/middleware"
	"github.com/2beens/fitadapt/internal/misc"
	"github.com/2beens/fitadapt/internal/telemetry/metrics"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"
)

const serviceName = "fitadapt-backend"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	verifier    auth.Verifier
	completer   *completion.Client
	now         func() time.Time

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	Secrets                 config.Secrets
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DatabaseURL:    params.Secrets.DatabaseURL,
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.Secrets.DBPassword,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.Secrets.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Minute,
	}

	if params.Secrets.OpenAIKey == "" {
		log.Errorln("OpenAI API key not set, use OPENAI_API_KEY env var to set it")
	}

	return &Server{
		versionInfo: params.VersionInfo,
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		verifier:    newVerifier(cfg, params.Secrets, tracedHttpClient, rdb),
		completer: completion.NewClient(
			cfg.CompletionBaseURL,
			params.Secrets.OpenAIKey,
			cfg.CompletionModel,
			newCompletionHttpClient(),
		),
		now: time.Now,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func newVerifier(cfg *config.Config, secrets config.Secrets, httpClient *http.Client, rdb *redis.Client) auth.Verifier {
	var verifier auth.Verifier
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		if secrets.JWTSecret == "" {
			log.Errorln("jwt secret not set, use SUPABASE_JWT_SECRET env var to set it")
		}
		verifier = auth.NewJWTVerifier(secrets.JWTSecret, cfg.AuthAudience)
	default:
		if secrets.AuthURL == "" || secrets.ServiceRoleKey == "" {
			log.Errorln("auth provider not set, use SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY env vars to set it")
		}
		verifier = auth.NewRemoteVerifier(secrets.AuthURL, secrets.ServiceRoleKey, httpClient)
	}

	if cfg.AuthCacheTTLSeconds > 0 {
		verifier = auth.NewCachedVerifier(verifier, time.Duration(cfg.AuthCacheTTLSeconds)*time.Second, rdb)
	}
	return verifier
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	profileRepo := profile.NewRepo(s.dbPool)
	workoutsRepo := workouts.NewRepo(s.dbPool)
	goalsRepo := goals.NewRepo(s.dbPool)
	challengesRepo := challenges.NewRepo(s.dbPool)

	misc.NewHandler(s.versionInfo, map[string]misc.Pinger{
		"postgres": s.dbPool,
		"redis":    redisPinger{s.redisClient},
	}).SetupRoutes(r)

	// the AI functions authenticate inside the pipeline, so a rejected token
	// still gets the JSON error envelope
	aggregator := coach.NewAggregator(profileRepo, workoutsRepo, goalsRepo)
	coachHandler := coach.NewHandler(
		coach.NewChallengeGenerator(coach.ChallengeGeneratorParams{
			Verifier:   s.verifier,
			Aggregator: aggregator,
			Completer:  s.completer,
			Challenges: challengesRepo,
			Metrics:    s.metricsManager,
			Now:        s.now,
		}),
		coach.NewGroupTemplateGenerator(s.verifier, aggregator, s.completer, s.metricsManager),
		s.metricsManager,
	)
	rateLimiter := redis_rate.NewLimiter(s.redisClient)
	aiRateLimit := func(name string, h http.HandlerFunc) http.Handler {
		return middleware.RateLimit(rateLimiter, name, s.config.AIRequestsPerMin, s.metricsManager)(h)
	}
	functions := r.PathPrefix("/functions/v1").Subrouter()
	functions.Handle("/generate-challenge", aiRateLimit("generate-challenge", coachHandler.HandleGenerateChallenge)).
		Methods("POST", "OPTIONS").Name("generate-challenge")
	functions.Handle("/generate-group-challenge", aiRateLimit("generate-group-challenge", coachHandler.HandleGenerateGroupChallenge)).
		Methods("POST", "OPTIONS").Name("generate-group-challenge")

	api := r.NewRoute().Subrouter()
	api.Use(middleware.RequireUser(s.verifier))

	profileHandler := profile.NewHandler(profileRepo)
	api.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	api.HandleFunc("/profile", profileHandler.HandleUpsert).Methods("PUT", "OPTIONS").Name("upsert-profile")

	workoutsHandler := workouts.NewHandler(workoutsRepo)
	api.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	api.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	api.HandleFunc("/workouts/{id}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	api.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-workout")

	goalsHandler := goals.NewHandler(goalsRepo)
	api.HandleFunc("/goals", goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	api.HandleFunc("/goals", goalsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-goal")
	api.HandleFunc("/goals/{id}", goalsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-goal")
	api.HandleFunc("/goals/{id}/progress", goalsHandler.HandleUpdateProgress).Methods("PUT", "OPTIONS").Name("update-goal-progress")
	api.HandleFunc("/goals/{id}", goalsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-goal")

	challengesHandler := challenges.NewHandler(challengesRepo, s.now)
	api.HandleFunc("/challenges", challengesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-challenges")
	api.HandleFunc("/challenges/{id}/complete", challengesHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-challenge")
	api.HandleFunc("/challenges/{id}", challengesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-challenge")

	groupHandler := groupchallenges.NewHandler(groupchallenges.NewRepo(s.dbPool), s.now)
	api.HandleFunc("/group-challenges", groupHandler.HandleList).Methods("GET", "OPTIONS").Name("list-group-challenges")
	api.HandleFunc("/group-challenges", groupHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-group-challenge")
	api.HandleFunc("/group-challenges/{id}/join", groupHandler.HandleJoin).Methods("POST", "OPTIONS").Name("join-group-challenge")
	api.HandleFunc("/group-challenges/{id}/join", groupHandler.HandleLeave).Methods("DELETE", "OPTIONS").Name("leave-group-challenge")

	dashboardHandler := dashboard.NewHandler(workoutsRepo, goalsRepo, s.now)
	api.HandleFunc("/dashboard/summary", dashboardHandler.HandleSummary).Methods("GET", "OPTIONS").Name("dashboard-summary")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: s.routerSetup(),
		Addr:    ipAndPort,
		// no WriteTimeout, completions run as long as the upstream takes
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metrics.Handler(s.promRegistry))
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

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	// stop taking requests first, the rest is still needed by the in-flight ones
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
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

	return err
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// newCompletionHttpClient has no Timeout, a completion call is bounded only by the upstream.
func newCompletionHttpClient() *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
