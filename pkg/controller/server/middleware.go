package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/utils/errutil"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", reqID.String()))
		ctx = logging.With(ctx, logger)

		w.Header().Set("X-Request-ID", reqID.String())

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		serveWithRecover(next, lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.wroteHeader = true
	x.ResponseWriter.WriteHeader(code)
}

func (x *statusCodeLogger) Write(b []byte) (int, error) {
	x.wroteHeader = true
	return x.ResponseWriter.Write(b)
}

// serveWithRecover turns a handler panic into a 500 response and an error report.
func serveWithRecover(next http.Handler, w *statusCodeLogger, r *http.Request) {
	defer func() {
		if v := recover(); v != nil {
			if v == http.ErrAbortHandler {
				panic(v)
			}
			err := goerr.New("panic in handler", goerr.V("panic", fmt.Sprint(v)), goerr.V("path", r.URL.Path))
			errutil.HandleError(r.Context(), "recovered from panic", err)
			if !w.wroteHeader {
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
			}
		}
	}()
	next.ServeHTTP(w, r)
}
