// Package app wires configuration, storage, services, and transports into
// a running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/kampkelly/favourite-things/internal/adapter/postgres"
	auditrepo "github.com/kampkelly/favourite-things/internal/adapter/postgres/audit"
	categoryrepo "github.com/kampkelly/favourite-things/internal/adapter/postgres/category"
	favoriterepo "github.com/kampkelly/favourite-things/internal/adapter/postgres/favorite"
	userrepo "github.com/kampkelly/favourite-things/internal/adapter/postgres/user"
	"github.com/kampkelly/favourite-things/internal/auth"
	"github.com/kampkelly/favourite-things/internal/config"
	authsvc "github.com/kampkelly/favourite-things/internal/service/auth"
	categorysvc "github.com/kampkelly/favourite-things/internal/service/category"
	usersvc "github.com/kampkelly/favourite-things/internal/service/user"
	gql "github.com/kampkelly/favourite-things/internal/transport/graphql"
	"github.com/kampkelly/favourite-things/internal/transport/graphql/generated"
	"github.com/kampkelly/favourite-things/internal/transport/graphql/resolver"
	"github.com/kampkelly/favourite-things/internal/transport/middleware"
	"github.com/kampkelly/favourite-things/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the services and the GraphQL server, and serves
// HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	categories := categoryrepo.New(pool)
	favorites := favoriterepo.New(pool)
	users := userrepo.New(pool)
	auditLogs := auditrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	categoryService := categorysvc.NewService(logger, categories, favorites, auditLogs, txManager)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, auditLogs)

	res := resolver.NewResolver(logger, categoryService, authService, userService)
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})

	gqlSrv := gqlhandler.New(schema)
	gqlSrv.AddTransport(transport.Options{})
	gqlSrv.AddTransport(transport.POST{})
	gqlSrv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	gqlSrv.Use(extension.FixedComplexityLimit(cfg.GraphQL.ComplexityLimit))
	if cfg.GraphQL.IntrospectionEnabled {
		gqlSrv.Use(extension.Introspection{})
	}
	gqlSrv.SetErrorPresenter(gql.NewErrorPresenter(logger))

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	queryHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMinute),
		middleware.Auth(jwtManager),
	)(gqlSrv)

	health := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("POST /query", queryHandler)
	mux.Handle("OPTIONS /query", queryHandler)
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /", playground.Handler("GraphQL playground", "/query"))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
