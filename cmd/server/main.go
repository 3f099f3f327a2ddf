package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dnlmlszl/realtime-dms-backend/internal/auth"
	"github.com/dnlmlszl/realtime-dms-backend/internal/config"
	"github.com/dnlmlszl/realtime-dms-backend/internal/graph"
	"github.com/dnlmlszl/realtime-dms-backend/internal/middleware"
	"github.com/dnlmlszl/realtime-dms-backend/internal/service"
	"github.com/dnlmlszl/realtime-dms-backend/internal/storage/sqlite"
	"github.com/dnlmlszl/realtime-dms-backend/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	resolver := &graph.Resolver{
		Hierarchy:  service.NewHierarchyService(store),
		Users:      service.NewUserService(store, authenticator, jwtManager, slog.Default()),
		Teams:      service.NewTeamService(store),
		Visibility: service.NewVisibilityService(store),
		Shaper:     service.NewShaper(store),
	}

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		slog.Error("Failed to build schema", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", graph.NewHandler(schema))
	mux.Handle("/metrics", promhttp.Handler())

	handler := middleware.Logging(
		middleware.Metrics(
			middleware.WithIdentity(jwtManager)(mux),
		),
	)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("GraphQL server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s/graphql", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
