package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canarias-tourism/backend/internal/domain"
	"github.com/canarias-tourism/backend/internal/service"
)

const testAPIKey = "test-master-key"

type staticGenerator struct {
	answer string
}

func (s staticGenerator) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return s.answer, nil
}

func fptr(v float64) *float64 {
	return &v
}

func newTestApp(records []domain.TourismRecord, answer string) *fiber.App {
	log := zerolog.Nop()
	retriever := service.NewRetriever(records, service.NewQueryInterpreter(), log)
	assistant := service.NewAssistant(service.NewDomainGate(), retriever, staticGenerator{answer: answer}, log)

	app := fiber.New()
	SetupRoutes(app, NewHandler(assistant, retriever), testAPIKey)
	return app
}

func testRecords() []domain.TourismRecord {
	return []domain.TourismRecord{
		{IslandCode: 1, Year: 2025, Month: 1, WeekStartDate: "2025-01-06", TotalTourists: fptr(100)},
		{IslandCode: 2, Year: 2025, Month: 1, WeekStartDate: "2025-01-06", TotalTourists: fptr(250)},
	}
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(testRecords(), "")

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "loaded", body["dataset"])
	assert.Equal(t, float64(2), body["data_records"])
}

func TestHealthCheck_EmptyDataset(t *testing.T) {
	app := newTestApp(nil, "")

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "empty", body["dataset"])
}

func TestChat_RequiresAPIKey(t *testing.T) {
	app := newTestApp(testRecords(), "hola")

	req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader(`{"message":"Turismo en Tenerife"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Invalid API Key", body["message"])
}

func TestChat_RejectsWrongAPIKey(t *testing.T) {
	app := newTestApp(testRecords(), "hola")

	req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader(`{"message":"Turismo en Tenerife"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "wrong")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestChat_ValidatesMessageLength(t *testing.T) {
	app := newTestApp(testRecords(), "hola")

	tests := []struct {
		name string
		body string
	}{
		{"empty message", `{"message":""}`},
		{"too long", `{"message":"` + strings.Repeat("a", 1001) + `"}`},
		{"not json", `message`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-API-Key", testAPIKey)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestChat_InDomainQuestion(t *testing.T) {
	app := newTestApp(testRecords(), "Según los datos disponibles, 100 turistas.")

	req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader(`{"message":"¿Cuántos turistas visitaron Tenerife en enero de 2025?"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Según los datos disponibles, 100 turistas.", body["response"])
}

func TestChat_OutOfDomainQuestion(t *testing.T) {
	app := newTestApp(testRecords(), "never used")

	req := httptest.NewRequest("POST", "/api/v1/chat", strings.NewReader(`{"message":"¿Cuál es la capital de Francia?"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, service.RejectionPrompt, body["response"])
}

func TestIslandSummary(t *testing.T) {
	app := newTestApp(testRecords(), "")

	req := httptest.NewRequest("GET", "/api/v1/islands/1/summary", nil)
	req.Header.Set("X-API-Key", testAPIKey)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tenerife", data["island"])
}

func TestIslandSummary_NoData(t *testing.T) {
	app := newTestApp(testRecords(), "")

	req := httptest.NewRequest("GET", "/api/v1/islands/7/summary", nil)
	req.Header.Set("X-API-Key", testAPIKey)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestIslandSummary_InvalidCode(t *testing.T) {
	app := newTestApp(testRecords(), "")

	for _, code := range []string{"abc", "0", "8"} {
		req := httptest.NewRequest("GET", "/api/v1/islands/"+code+"/summary", nil)
		req.Header.Set("X-API-Key", testAPIKey)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "code %s", code)
	}
}
