// Package httpapi serves stored petitions and signature records over the
// tracker JSON API.
package httpapi

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/bnema/petition-tracker/internal/adapters/apiwire"
	"github.com/bnema/petition-tracker/internal/ports"
)

type Options struct {
	// Token, when set, is required as a bearer token on every request.
	Token  string
	Clock  ports.Clock
	Logger *zap.Logger
}

type Server struct {
	store  ports.PetitionStore
	clock  ports.Clock
	logger *zap.Logger
}

func NewRouter(store ports.PetitionStore, opts Options) http.Handler {
	server := &Server{store: store, clock: opts.Clock, logger: opts.Logger}
	if server.clock == nil {
		server.clock = ports.SystemClock{}
	}
	if server.logger == nil {
		server.logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(server.logger))
	r.Use(middleware.Recoverer)
	if opts.Token != "" {
		r.Use(bearerAuth(opts.Token, server.logger))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint: "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/petitions", server.listPetitions)
	r.Route("/petition/{id}", func(pr chi.Router) {
		pr.Get("/", server.getPetition)
		pr.Get("/signatures", server.signatures)
		pr.Get("/signatures_by/{geography}", server.signaturesByGeography)
		pr.Get("/signatures_by/{geography}/{locale}", server.signaturesByLocale)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("api request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(started)),
			)
		})
	}
}

func bearerAuth(token string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, provided, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(provided)), []byte(token)) != 1 {
				logger.Warn("api request rejected: invalid token",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				writeError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiwire.ErrorResponse{Message: message})
}
