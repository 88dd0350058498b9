package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/ReelCasino_Go/docs"
	"github.com/osse101/ReelCasino_Go/internal/account"
	"github.com/osse101/ReelCasino_Go/internal/auth"
	"github.com/osse101/ReelCasino_Go/internal/database"
	"github.com/osse101/ReelCasino_Go/internal/handler"
	"github.com/osse101/ReelCasino_Go/internal/logger"
	"github.com/osse101/ReelCasino_Go/internal/metrics"
	"github.com/osse101/ReelCasino_Go/internal/slots"
	"github.com/osse101/ReelCasino_Go/internal/stats"
)

// Options carries the HTTP surface settings
type Options struct {
	Port           int
	CORSOrigins    []string
	TrustedProxies []string
}

// Services are the dependencies the routes call into
type Services struct {
	DBPool   database.Pool
	Tokens   *auth.TokenManager
	Accounts account.Service
	Slots    slots.Service
	Stats    stats.Service
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           CORSMaxAgeSeconds,
	}))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(CompressionMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	requireAuth := auth.RequireAuth(svc.Tokens)

	r.Route("/api/v1", func(r chi.Router) {
		authHandler := handler.NewAuthHandler(svc.Accounts, svc.Tokens)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/login", authHandler.HandleLogin)
			r.Post("/demo", authHandler.HandleDemo)
		})

		slotsHandler := handler.NewSlotsHandler(svc.Slots)
		r.Route("/machines", func(r chi.Router) {
			r.Get("/", slotsHandler.HandleListMachines)
			r.Route("/{"+handler.URLParamMachineID+"}", func(r chi.Router) {
				r.Get("/", slotsHandler.HandleGetMachine)
				r.With(requireAuth).Post("/spin", slotsHandler.HandleSpin)
			})
		})

		r.With(auth.OptionalAuth(svc.Tokens)).Get("/leaderboard", handler.HandleGetLeaderboard(svc.Stats))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/account", handler.HandleGetAccount(svc.Accounts))
			r.Get("/transactions", handler.HandleGetTransactions(svc.Stats))
			r.Get("/stats", handler.HandleGetStats(svc.Stats))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the routed middleware stack
func (s *Server) Handler() http.Handler {
	return s.router
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

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
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
