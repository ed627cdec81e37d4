package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/eon-online/eon-server/internal/catalog"
	"github.com/eon-online/eon-server/internal/database"
	"github.com/eon-online/eon-server/internal/economy"
	"github.com/eon-online/eon-server/internal/handler"
	"github.com/eon-online/eon-server/internal/instance"
	"github.com/eon-online/eon-server/internal/inventory"
	"github.com/eon-online/eon-server/internal/logger"
	"github.com/eon-online/eon-server/internal/metrics"
	"github.com/eon-online/eon-server/internal/middleware"
	"github.com/eon-online/eon-server/internal/player"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	catalogService   catalog.Service
	playerService    player.Service
	inventoryService inventory.Service
	economyService   economy.Service
	instanceService  instance.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey, adminAPIKey string, trustedProxies []string, dbPool database.Pool, catalogService catalog.Service, playerService player.Service, inventoryService inventory.Service, economyService economy.Service, instanceService instance.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Identity)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Catalog routes
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(catalogService))
			r.Get("/{itemID}", handler.HandleGetItem(catalogService))
		})

		// Player routes
		r.Route("/players", func(r chi.Router) {
			r.Post("/connect", handler.HandleConnect(playerService))
			r.Post("/disconnect", handler.HandleDisconnect(playerService))
			r.Get("/me", handler.HandleGetPlayer(playerService))
			r.Post("/name", handler.HandleSetName(playerService))
			r.Post("/transform", handler.HandleUpdateTransform(playerService))
			r.Post("/attacking", handler.HandleSetAttacking(playerService))
			r.Post("/damage", handler.HandleDamage(playerService))
			r.Post("/heal", handler.HandleHeal(playerService))
		})

		// Inventory routes
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(inventoryService))
			r.Post("/add", handler.HandleAddStack(inventoryService))
			r.Post("/remove", handler.HandleRemoveEntry(inventoryService))
			r.Post("/move", handler.HandleMoveSlot(inventoryService))
			r.Post("/use", handler.HandleUseItem(inventoryService))
		})

		// Economy routes
		r.Route("/economy", func(r chi.Router) {
			r.Post("/purchase", handler.HandlePurchase(economyService))
			r.Post("/gift", handler.HandleGift(economyService))
			r.Post("/reclaim", handler.HandleReclaim(economyService))
			r.Get("/wallet", handler.HandleGetWallet(economyService))
			r.Get("/ownerships", handler.HandleListOwnerships(economyService))
			r.Get("/transactions", handler.HandleListTransactions(economyService))
		})

		// Instance routes
		r.Route("/instances", func(r chi.Router) {
			r.Get("/", handler.HandleListInstances(instanceService))
			r.Post("/", handler.HandleCreateInstance(instanceService))
			r.Post("/leave", handler.HandleLeaveInstance(instanceService))
			r.Get("/{instanceID}", handler.HandleGetInstance(instanceService))
			r.Post("/{instanceID}/join", handler.HandleJoinInstance(instanceService))
			r.Post("/{instanceID}/state", handler.HandleSetInstanceState(instanceService))
			r.Get("/{instanceID}/items", handler.HandleListWorldItems(instanceService))
		})
		r.Post("/world-items/{worldItemID}/collect", handler.HandleCollectWorldItem(instanceService))

		// Admin routes behind the second key
		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminAPIKey))

			r.Route("/economy", func(r chi.Router) {
				r.Post("/grant", handler.HandleAdminGrant(economyService))
				r.Post("/currency", handler.HandleAdminTopUp(economyService))
			})
			r.Post("/instances/{instanceID}/items", handler.HandleSpawnWorldItem(instanceService))
			r.Post("/interactables/{interactableID}", handler.HandleToggleInteractable(instanceService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		catalogService:   catalogService,
		playerService:    playerService,
		inventoryService: inventoryService,
		economyService:   economyService,
		instanceService:  instanceService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAdminAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
