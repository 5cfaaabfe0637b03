package rest

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/vmsched/api/domain"
	"github.com/vmsched/api/pkg/logger"
)

// PushEnvelope is the wrapper Pub/Sub wraps around a push delivery. Data is
// the base64-encoded event payload.
type PushEnvelope struct {
	Message struct {
		Data       string            `json:"data"`
		MessageID  string            `json:"messageId"`
		Attributes map[string]string `json:"attributes,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// ScaleResponse wraps a scale result for the invoking transport.
type ScaleResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message,omitempty"`
	Timestamp string              `json:"timestamp"`
	Result    *domain.ScaleResult `json:"result,omitempty"`
}

// PushEvent handles a Pub/Sub push delivery. Decoding is tolerant: a
// malformed envelope or payload degrades to an empty request (which defaults
// to scale_down) instead of a 4xx, because a non-2xx response would make
// Pub/Sub redeliver a message that can never parse.
func (h *Handler) PushEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var envelope PushEnvelope
	req := &domain.ScaleRequest{}
	if err := h.JSONBind(r, &envelope); err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("error decoding push envelope")
	} else if payload, err := base64.StdEncoding.DecodeString(envelope.Message.Data); err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("error decoding message data")
	} else if err := json.Unmarshal(payload, req); err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("error decoding scale request")
		req = &domain.ScaleRequest{}
	}

	if msgID := envelope.Message.MessageID; msgID != "" {
		if _, ok := h.seen.Get(msgID); ok {
			logger.Logger(ctx).Info().Msgf("duplicate delivery of message %s, ignoring", msgID)
			h.SuccessResponse(ctx, w, "duplicate delivery ignored")
			return
		}
		h.seen.Set(msgID, struct{}{}, cache.WithExpiration(h.dedupeTTL))
	}

	logger.Logger(ctx).Info().Msgf("processing action: %s", req.Action)
	result, err := h.Svc.RunScale(ctx, req)
	if err != nil {
		// Configuration errors are persistent; a retry of the same message
		// cannot succeed, so acknowledge the delivery and surface the error
		// in the response body.
		logger.Logger(ctx).Error().Err(err).Msg("scale run failed")
		h.JSONResponse(ctx, w, http.StatusOK, ScaleResponse{
			Success:   false,
			Message:   err.Error(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	h.JSONResponse(ctx, w, http.StatusOK, ScaleResponse{
		Success:   true,
		Message:   result.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Result:    result,
	})
}

// Scale handles a direct scale request carrying the event payload without the
// Pub/Sub envelope.
func (h *Handler) Scale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.ScaleRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "invalid JSON format: "+err.Error(), err)
		return
	}

	result, err := h.Svc.RunScale(ctx, &req)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotConfigured) {
			h.ErrorResponse(ctx, w, http.StatusInternalServerError, err.Error(), err)
			return
		}
		h.HandleError(ctx, w, err)
		return
	}

	h.JSONResponse(ctx, w, http.StatusOK, ScaleResponse{
		Success:   true,
		Message:   result.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Result:    result,
	})
}
