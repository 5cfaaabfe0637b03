package rest

import (
	"bytes"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"
	"github.com/vmsched/api/pkg/logger"
)

// PushAuthMiddleware verifies the bearer token Pub/Sub attaches to push
// deliveries. It is a passthrough when no verification key is configured.
func (h *Handler) PushAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.pushPublicKey == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Missing Authorization header", nil)
			return
		}

		// parse bearer token
		const bearerPrefix = "Bearer "
		if len(tokenString) <= len(bearerPrefix) || tokenString[:len(bearerPrefix)] != bearerPrefix {
			h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Invalid Authorization header format", nil)
			return
		}
		tokenString = tokenString[len(bearerPrefix):]

		parseOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256"})}
		if h.audience != "" {
			parseOpts = append(parseOpts, jwt.WithAudience(h.audience))
		}
		_, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			return h.pushPublicKey, nil
		}, parseOpts...)
		if err != nil {
			h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Invalid push token", err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = xid.New().String()
		}
		start := time.Now()
		log := logger.Logger(ctx).With().
			Str("method", r.Method).Str("req_id", reqID).
			Str("url", r.URL.String()).Logger()

		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("panic", err).Msgf("Recovered from panic, stack trace: %s", string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		ctx = log.WithContext(ctx)
		r = r.WithContext(ctx)
		responseWriter := NewResponseWriter(w)
		next.ServeHTTP(responseWriter, r)
		cost := time.Since(start)
		log = log.With().
			Int("cost_msec", int(cost.Milliseconds())).
			Logger()
		if responseWriter.statusCode >= 500 {
			log.Error().
				Int("status_code", responseWriter.statusCode).
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with server error")
		} else if responseWriter.statusCode >= 400 {
			log.Warn().
				Int("status_code", responseWriter.statusCode).
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with client error")
		} else {
			log.Info().
				Int("status_code", responseWriter.statusCode).
				Msg("Request completed successfully")
		}
	})
}

type responseWriter struct {
	http.ResponseWriter
	responseBody bytes.Buffer
	statusCode   int
}

func NewResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.responseBody.Write(b)
	return rw.ResponseWriter.Write(b)
}
