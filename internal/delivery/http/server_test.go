package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/config"
	httpDelivery "github.com/travel-agency/internal/delivery/http"
	"github.com/travel-agency/internal/delivery/http/handler"
	"github.com/travel-agency/internal/delivery/http/middleware"
	"github.com/travel-agency/internal/repository/snapshot"
	"github.com/travel-agency/internal/usecase"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *httpDelivery.Server {
	t.Helper()
	logger := zap.NewNop()
	repo := snapshot.NewFileRepository(filepath.Join(t.TempDir(), "agency.json"), logger)
	uc := usecase.NewAgencyUseCase(repo, logger)

	return httpDelivery.NewServer(
		&config.Config{},
		logger,
		handler.NewClientHandler(uc, logger),
		handler.NewTourHandler(uc, logger),
		handler.NewBookingHandler(uc, logger),
		handler.NewDocumentHandler(uc, logger),
		handler.NewSnapshotHandler(uc, logger),
	)
}

func doRequest(t *testing.T, s *httpDelivery.Server, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func clientBody() map[string]interface{} {
	return map[string]interface{}{
		"last_name":  "Сидоров",
		"first_name": "Олег",
		"phone":      "+7 901 222-33-44",
		"email":      "sidorov@mail.ru",
		"registration_address": map[string]interface{}{
			"region":      "Ленинградская",
			"city":        "Санкт-Петербург",
			"street":      "Невский проспект",
			"house":       "10",
			"postal_code": "191025",
		},
		"actual_same_as_registration": true,
	}
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-1", resp.Header.Get(middleware.RequestIDHeader))
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	status, env := doRequest(t, s, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)
}

func TestServer_BookingFlow(t *testing.T) {
	s := newTestServer(t)

	status, env := doRequest(t, s, http.MethodPost, "/api/v1/clients", clientBody())
	require.Equal(t, http.StatusCreated, status)
	var client struct {
		ID            int64                  `json:"id"`
		ActualAddress map[string]interface{} `json:"actual_address"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &client))
	assert.Equal(t, "Санкт-Петербург", client.ActualAddress["city"])

	status, env = doRequest(t, s, http.MethodPost, "/api/v1/tours", map[string]interface{}{
		"name":          "Стамбул",
		"country":       "Турция",
		"tour_type":     "Активный отдых",
		"duration_days": 5,
		"base_price":    50000,
		"visa_required": false,
	})
	require.Equal(t, http.StatusCreated, status)
	var tour struct {
		ID          int64    `json:"id"`
		TravelModes []string `json:"travel_modes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tour))
	assert.Equal(t, []string{"Plane", "Train"}, tour.TravelModes)

	status, env = doRequest(t, s, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"client_id": client.ID,
		"tour_id":   tour.ID,
	})
	require.Equal(t, http.StatusCreated, status)
	var booking struct {
		ID        int64 `json:"id"`
		Documents []struct {
			Type string `json:"type"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Len(t, booking.Documents, 3)

	base := fmt.Sprintf("/api/v1/bookings/%d", booking.ID)

	status, _ = doRequest(t, s, http.MethodPost, base+"/travelers", map[string]interface{}{
		"last_name":  "Сидоров",
		"first_name": "Олег",
	})
	require.Equal(t, http.StatusOK, status)

	t.Run("latin name is rejected by tags", func(t *testing.T) {
		status, env := doRequest(t, s, http.MethodPost, base+"/travelers", map[string]interface{}{
			"last_name":  "Sidorov",
			"first_name": "Олег",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("traveler document fields", func(t *testing.T) {
		status, env := doRequest(t, s, http.MethodPut, base+"/travelers/0/documents/0/fields", map[string]interface{}{
			"fields": map[string]string{"number": "123456789"},
		})
		require.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, env.Data)

		status, env = doRequest(t, s, http.MethodGet, base+"/travelers/0/documents/0", nil)
		require.Equal(t, http.StatusOK, status)
		var doc struct {
			Type   string                 `json:"type"`
			Status string                 `json:"status"`
			Fields map[string]interface{} `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &doc))
		assert.Equal(t, "International Passport", doc.Type)
		assert.Equal(t, "Available", doc.Status)
		assert.Equal(t, "123456789", doc.Fields["number"])
	})

	t.Run("booking document out of range", func(t *testing.T) {
		status, env := doRequest(t, s, http.MethodGet, base+"/documents/10", nil)
		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "DOCUMENT_NOT_FOUND", env.Error.Code)
	})

	t.Run("cost", func(t *testing.T) {
		status, env := doRequest(t, s, http.MethodGet, base+"/cost", nil)
		require.Equal(t, http.StatusOK, status)
		var cost struct {
			Total     float64 `json:"total"`
			Formatted string  `json:"formatted"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &cost))
		assert.Equal(t, "50000.00", cost.Formatted)
	})

	t.Run("submit without verified documents", func(t *testing.T) {
		status, env := doRequest(t, s, http.MethodPost, base+"/submit", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		require.NotNil(t, env.Error)
		assert.NotEmpty(t, env.Error.Details["missing"])
	})

	t.Run("referenced client", func(t *testing.T) {
		status, env := doRequest(t, s, http.MethodDelete, fmt.Sprintf("/api/v1/clients/%d", client.ID), nil)
		assert.Equal(t, http.StatusConflict, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "REFERENCED", env.Error.Code)
	})

	t.Run("save and load", func(t *testing.T) {
		status, _ := doRequest(t, s, http.MethodPost, "/api/v1/snapshot/save", nil)
		require.Equal(t, http.StatusOK, status)

		status, env := doRequest(t, s, http.MethodPost, "/api/v1/snapshot/load", nil)
		require.Equal(t, http.StatusOK, status)
		var snap struct {
			Bookings int `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &snap))
		assert.Equal(t, 1, snap.Bookings)
	})
}

func TestServer_ImportRejectsMalformed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/snapshot/import", bytes.NewBufferString(`{"tours": [{"id": "x"}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServer_BadID(t *testing.T) {
	s := newTestServer(t)

	status, env := doRequest(t, s, http.MethodGet, "/api/v1/bookings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
}
