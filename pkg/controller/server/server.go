package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response is JSON encoded
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

type config struct {
	fetchTimeout time.Duration
}

type Option func(*config)

// WithFetchTimeout bounds the external fetches of one portfolio request. Zero means no bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.fetchTimeout = d
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/portfolio", func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if cfg.fetchTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.fetchTimeout)
				defer cancel()
			}
			writeJSON(w, http.StatusOK, uc.LoadPortfolio(ctx))
		})
		r.Get("/preference", getPreference(uc))
		r.Put("/preference", putPreference(uc))
		r.Post("/preference/toggle", togglePreference(uc))
		r.Post("/contact", postContact(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
