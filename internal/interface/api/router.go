package api

import (
	"net/http"
	"time"

	"flightwatch-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every route of the service
func NewRouter(h *Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(chiMiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/flights", func(r chi.Router) {
		r.Get("/", h.ListFlights)
		r.Post("/", h.RegisterFlight)
		r.Get("/{airport}/{flightId}", h.GetFlight)
		r.Patch("/{airport}/{flightId}", h.UpdateFlight)
		r.Delete("/{airport}/{flightId}", h.CancelFlight)
		r.Post("/{airport}/{flightId}/resend", h.ResendNotifications)
	})

	r.Get("/notifications/{pnr}", h.ListNotifications)
	r.Post("/admin/notify", h.Notify)

	r.Route("/api", func(r chi.Router) {
		r.Get("/refund_requests/{airport}/{flightId}", h.ListRefundRequests)

		r.Route("/refunds", func(r chi.Router) {
			r.Post("/submit", h.SubmitRefund)
			r.Post("/finalize/{airport}/{flightId}/{passengerId}", h.FinalizeRefund)
			r.Post("/reject/{airport}/{flightId}/{passengerId}", h.RejectRefund)
			r.Post("/assign/{airport}/{flightId}/{passengerId}", h.AssignResource)
			r.Get("/{airport}", h.ImpactSummary)
			r.Get("/{airport}/{flightId}", h.AffectedManifest)
		})
	})

	return r
}

// requestLogger logs one structured line per request
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("HTTP request",
				"requestId", chiMiddleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).String())
		})
	}
}
