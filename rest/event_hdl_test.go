package rest_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vmsched/api/config"
	"github.com/vmsched/api/domain"
	"github.com/vmsched/api/rest"
)

func newTestEngine(t *testing.T, svc domain.Service, pushCfg config.PushConfig) *echo.Echo {
	t.Helper()
	handler, err := rest.NewHandler(rest.Params{Svc: svc, PushConfig: pushCfg})
	require.NoError(t, err)

	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	handler.SetupRoutes(engine)
	return engine
}

func pushEnvelope(t *testing.T, messageID string, payload any) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(data),
			"messageId": messageID,
		},
		"subscription": "projects/test-project/subscriptions/vm-scheduler",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHealthCheck(t *testing.T) {
	engine := newTestEngine(t, domain.NewMockService(t), config.PushConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestPushEventScaleDown(t *testing.T) {
	mockSvc := domain.NewMockService(t)
	mockSvc.EXPECT().
		RunScale(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *domain.ScaleRequest) {
			require.NotNil(t, req)
			assert.Equal(t, domain.ScaleDown, req.Action)
			assert.Equal(t, []string{"us-central1-a"}, req.Zones)
		}).
		Return(&domain.ScaleResult{
			ProcessedCount: 1,
			Outcomes: []domain.ActionOutcome{
				{Instance: "a", Zone: "us-central1-a", Intent: domain.ScaleDown, Status: domain.OutcomeSuccess, Detail: "op-1"},
			},
		}, nil).
		Once()

	engine := newTestEngine(t, mockSvc, config.PushConfig{})
	body := pushEnvelope(t, "msg-1", map[string]any{
		"action": "scale_down",
		"zones":  []string{"us-central1-a"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp rest.ScaleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 1, resp.Result.ProcessedCount)
}

func TestPushEventMalformedPayloadDegradesToEmptyRequest(t *testing.T) {
	mockSvc := domain.NewMockService(t)
	mockSvc.EXPECT().
		RunScale(mock.Anything, mock.MatchedBy(func(req *domain.ScaleRequest) bool {
			return req != nil && req.Action == "" && req.ProjectID == "" && len(req.Zones) == 0
		})).
		Return(&domain.ScaleResult{ProcessedCount: 0, Outcomes: []domain.ActionOutcome{}, Message: "no instances found"}, nil).
		Once()

	engine := newTestEngine(t, mockSvc, config.PushConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	// Tolerant decode still acknowledges the delivery.
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPushEventDuplicateDeliveryIgnored(t *testing.T) {
	mockSvc := domain.NewMockService(t)
	mockSvc.EXPECT().
		RunScale(mock.Anything, mock.Anything).
		Return(&domain.ScaleResult{ProcessedCount: 0, Outcomes: []domain.ActionOutcome{}, Message: "no instances found"}, nil).
		Once()

	engine := newTestEngine(t, mockSvc, config.PushConfig{DedupeTTLSec: 600})

	for i := 0; i < 2; i++ {
		body := pushEnvelope(t, "msg-dup", map[string]any{"action": "scale_down"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestPushEventConfigurationErrorStillAcks(t *testing.T) {
	mockSvc := domain.NewMockService(t)
	mockSvc.EXPECT().
		RunScale(mock.Anything, mock.Anything).
		Return(nil, domain.ErrProjectNotConfigured).
		Once()

	engine := newTestEngine(t, mockSvc, config.PushConfig{})
	body := pushEnvelope(t, "msg-2", map[string]any{"action": "scale_down"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp rest.ScaleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "project ID not configured")
}

func TestScaleRejectsMalformedBody(t *testing.T) {
	// Direct endpoint is strict: no service call on bad JSON.
	mockSvc := domain.NewMockService(t)
	engine := newTestEngine(t, mockSvc, config.PushConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scale", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScaleConfigurationError(t *testing.T) {
	mockSvc := domain.NewMockService(t)
	mockSvc.EXPECT().
		RunScale(mock.Anything, mock.Anything).
		Return(nil, domain.ErrProjectNotConfigured).
		Once()

	engine := newTestEngine(t, mockSvc, config.PushConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scale", bytes.NewBufferString(`{"action":"scale_up"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPushAuthMiddleware(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	pushCfg := config.PushConfig{
		Audience:     "https://vmsched.example.com/api/v1/events",
		PublicKeyPem: config.SecretValue(pubPEM),
	}

	mockSvc := domain.NewMockService(t)
	mockSvc.EXPECT().
		RunScale(mock.Anything, mock.Anything).
		Return(&domain.ScaleResult{ProcessedCount: 0, Outcomes: []domain.ActionOutcome{}, Message: "no instances found"}, nil).
		Once()

	engine := newTestEngine(t, mockSvc, pushCfg)

	// missing token
	body := pushEnvelope(t, "msg-3", map[string]any{"action": "scale_down"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// wrong audience
	badToken := signedPushToken(t, privateKey, "https://other.example.com")
	body = pushEnvelope(t, "msg-4", map[string]any{"action": "scale_down"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set("Authorization", "Bearer "+badToken)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token
	token := signedPushToken(t, privateKey, pushCfg.Audience)
	body = pushEnvelope(t, "msg-5", map[string]any{"action": "scale_down"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/events", body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func signedPushToken(t *testing.T, key *rsa.PrivateKey, audience string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "https://accounts.google.com",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}
