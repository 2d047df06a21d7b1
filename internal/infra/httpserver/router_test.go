package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/veiligonline/scamcheck/internal/application"
	appchecks "github.com/veiligonline/scamcheck/internal/application/checks"
	apphistory "github.com/veiligonline/scamcheck/internal/application/history"
	appreports "github.com/veiligonline/scamcheck/internal/application/reports"
	"github.com/veiligonline/scamcheck/internal/infra/reportintake"
)

const phishingJSON = `{"score":85,"riskLevel":"HOOG","summary":"Dit lijkt phishing.","checks":[],"brokenLinks":[],"tips":["Klik niet op onbekende links."]}`

type stubClassifier struct {
	response string
	err      error
}

func (s stubClassifier) Classify(context.Context, string) (string, error) {
	return s.response, s.err
}

type memSlotStore struct {
	slots map[string][]byte
}

func (m *memSlotStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	b, ok := m.slots[key]
	return b, ok, nil
}

func (m *memSlotStore) Save(_ context.Context, key string, value []byte) error {
	m.slots[key] = value
	return nil
}

func (m *memSlotStore) Clear(_ context.Context, key string) error {
	delete(m.slots, key)
	return nil
}

func newTestRouter(classifier stubClassifier) http.Handler {
	log := zap.NewNop()
	clock := application.SystemClock{}
	historySvc := apphistory.NewService(&memSlotStore{slots: map[string][]byte{}}, clock, log)
	checksSvc := &appchecks.Service{Classifier: classifier, History: historySvc, Log: log}

	stub := reportintake.NewStub(clock)
	stub.Delay = time.Millisecond
	reportsSvc := appreports.NewService(stub, clock)

	return NewRouter(checksSvc, historySvc, reportsSvc, nil, nil, log)
}

func TestCheckEndpointSuccess(t *testing.T) {
	router := newTestRouter(stubClassifier{response: phishingJSON})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(`{"input":"Win €1000 now, click: bit.ly/xyz"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result struct {
			Score     int    `json:"score"`
			RiskLevel string `json:"riskLevel"`
		} `json:"result"`
		Dashboard struct {
			RiskTier     string  `json:"riskTier"`
			RingFraction float64 `json:"ringFraction"`
		} `json:"dashboard"`
		HistoryItem struct {
			RiskLevel string `json:"riskLevel"`
		} `json:"historyItem"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 85, body.Result.Score)
	assert.Equal(t, "danger", body.Dashboard.RiskTier)
	assert.InDelta(t, 0.85, body.Dashboard.RingFraction, 1e-9)
	assert.Equal(t, "HOOG", body.HistoryItem.RiskLevel)
}

func TestCheckEndpointRejectsEmptyInput(t *testing.T) {
	router := newTestRouter(stubClassifier{response: phishingJSON})

	for _, payload := range []string{`{"input":""}`, `{"input":"   "}`, `{}`, `not json`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(payload))
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload %q", payload)
	}
}

func TestCheckEndpointHidesFailureDetail(t *testing.T) {
	router := newTestRouter(stubClassifier{response: "niet te parsen"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(`{"input":"verdacht"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, userFacingError, strings.TrimSpace(rec.Body.String()))
}

func TestHistoryEndpoints(t *testing.T) {
	router := newTestRouter(stubClassifier{response: phishingJSON})

	// empty history serializes as [], not null
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(`{"input":"verdacht bericht"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Geschiedenis gewist")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/history", nil))
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestReportEndpoint(t *testing.T) {
	router := newTestRouter(stubClassifier{response: phishingJSON})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/report", strings.NewReader(`{"score":85,"riskLevel":"HOOG","summary":"Dit lijkt phishing."}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var receipt struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, "Melding succesvol ontvangen!", receipt.Message)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(stubClassifier{response: phishingJSON})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
