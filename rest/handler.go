package rest

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/vmsched/api/config"
	"github.com/vmsched/api/domain"
	"github.com/vmsched/api/errs"
	"github.com/vmsched/api/pkg/logger"
	"github.com/vmsched/api/pkg/util"
	"go.uber.org/fx"
)

const defaultDedupeTTL = 10 * time.Minute

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse represents the success response structure
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type Params struct {
	fx.In
	Svc        domain.Service
	PushConfig config.PushConfig
}

func NewHandler(params Params) (*Handler, error) {
	h := &Handler{
		Svc:       params.Svc,
		audience:  params.PushConfig.Audience,
		seen:      cache.New[string, struct{}](),
		dedupeTTL: defaultDedupeTTL,
	}
	if params.PushConfig.DedupeTTLSec > 0 {
		h.dedupeTTL = time.Duration(params.PushConfig.DedupeTTLSec) * time.Second
	}
	if pem := params.PushConfig.PublicKeyPem.Value(); pem != "" {
		key, err := util.PEMToRSAPublicKey(pem)
		if err != nil {
			return nil, fmt.Errorf("initialize push verification key: %w", err)
		}
		h.pushPublicKey = key
	}
	return h, nil
}

type Handler struct {
	Svc domain.Service

	pushPublicKey *rsa.PublicKey
	audience      string
	seen          *cache.Cache[string, struct{}]
	dedupeTTL     time.Duration
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}

func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg(errMsg)
	}
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
	}
	h.JSONResponse(ctx, w, status, resp)
}

func (h *Handler) SuccessResponse(ctx context.Context, w http.ResponseWriter, message string) {
	resp := SuccessResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	h.JSONResponse(ctx, w, http.StatusOK, resp)
}

func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Message, httpErr.OriginalErr)
		return
	}
	h.ErrorResponse(ctx, w, http.StatusInternalServerError, err.Error(), err)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "VM Scale Scheduler API Server",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "VM Scale Scheduler API Server",
		"version": "1.0.0",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
