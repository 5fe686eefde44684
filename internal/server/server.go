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

	"github.com/gamevault/backend/internal/balance"
	"github.com/gamevault/backend/internal/database"
	"github.com/gamevault/backend/internal/gift"
	"github.com/gamevault/backend/internal/handler"
	"github.com/gamevault/backend/internal/logger"
	"github.com/gamevault/backend/internal/lootbox"
	"github.com/gamevault/backend/internal/metrics"
	"github.com/gamevault/backend/internal/notify"
	"github.com/gamevault/backend/internal/pricehistory"
	"github.com/gamevault/backend/internal/promo"
	"github.com/gamevault/backend/internal/wishlist"
)

// Services bundles everything the router depends on.
type Services struct {
	Lootbox      lootbox.Service
	Balance      balance.Service
	Promo        promo.Service
	Wishlist     wishlist.Service
	PriceHistory pricehistory.Service
	Gift         gift.Service
	Notifier     notify.Notifier
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewRateMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Lootbox routes
		lootboxHandler := handler.NewLootboxHandler(svcs.Lootbox)
		r.Route("/lootboxes", func(r chi.Router) {
			r.Get("/", lootboxHandler.HandleListLootboxes)
			r.Post("/open", lootboxHandler.HandleOpenLootbox)
		})

		// Balance routes
		balanceHandler := handler.NewBalanceHandler(svcs.Balance)
		r.Route("/balance", func(r chi.Router) {
			r.Get("/", balanceHandler.HandleGetBalance)
			r.Post("/", balanceHandler.HandleAdjustBalance)
		})

		// Promo code routes
		promoHandler := handler.NewPromoHandler(svcs.Promo)
		r.Route("/promo-codes", func(r chi.Router) {
			r.Get("/", promoHandler.HandleListPromos)
			r.Post("/apply", promoHandler.HandleApplyPromo)
		})

		// Wishlist routes
		wishlistHandler := handler.NewWishlistHandler(svcs.Wishlist)
		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistHandler.HandleGetWishlist)
			r.Post("/", wishlistHandler.HandleAddToWishlist)
			r.Delete("/", wishlistHandler.HandleRemoveFromWishlist)
		})

		// Price history routes
		priceHandler := handler.NewPriceHistoryHandler(svcs.PriceHistory)
		r.Get("/price-history", priceHandler.HandleGetPriceHistory)

		// Gift routes
		giftHandler := handler.NewGiftHandler(svcs.Gift)
		r.Route("/gifts", func(r chi.Router) {
			r.Get("/", giftHandler.HandleListGifts)
			r.Post("/", giftHandler.HandleCreateGift)
			r.Post("/redeem", giftHandler.HandleRedeemGift)
		})

		// Notification routes
		notifyHandler := handler.NewNotifyHandler(svcs.Notifier)
		r.Post("/notify", notifyHandler.HandleSendNotification)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
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
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
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
			if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
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
