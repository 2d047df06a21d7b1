package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	appchecks "github.com/veiligonline/scamcheck/internal/application/checks"
	apphistory "github.com/veiligonline/scamcheck/internal/application/history"
	appreports "github.com/veiligonline/scamcheck/internal/application/reports"
	"github.com/veiligonline/scamcheck/internal/domain/analysis"
	"github.com/veiligonline/scamcheck/internal/middleware"
)

// userFacingError is the single generic message shown for any failed
// check. Detailed error information goes to the logs only.
const userFacingError = "Er ging iets mis, probeer opnieuw."

type Router struct {
	checksSvc  *appchecks.Service
	historySvc *apphistory.Service
	reportsSvc *appreports.Service
	log        *zap.Logger
}

func NewRouter(checksSvc *appchecks.Service, historySvc *apphistory.Service, reportsSvc *appreports.Service, healthChecks map[string]middleware.HealthChecker, allowedOrigins []string, log *zap.Logger) http.Handler {
	r := &Router{checksSvc: checksSvc, historySvc: historySvc, reportsSvc: reportsSvc, log: log}
	mux := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.Logging(log))
	mux.Use(middleware.MetricsMiddleware)

	mux.Get("/health", middleware.HealthHandler(healthChecks))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/check", r.wrap(r.handleCheck))
		rt.Get("/history", r.wrap(r.handleHistory))
		rt.Delete("/history", r.wrap(r.handleClearHistory))
		rt.Post("/report", r.wrap(r.handleReport))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, appchecks.ErrEmptyInput):
				http.Error(w, "input is required", http.StatusBadRequest)
			case errors.Is(err, appchecks.ErrCheckInFlight):
				http.Error(w, "a check is already running", http.StatusConflict)
			case analysis.IsValidationError(err):
				// The model misbehaved, not us or the provider transport.
				r.log.Warn("classifier output rejected",
					zap.String("path", req.URL.Path),
					zap.Error(err),
				)
				http.Error(w, userFacingError, http.StatusBadGateway)
			default:
				// Every other failure collapses to one retry message;
				// provider detail stays in the diagnostic log.
				r.log.Error("request failed",
					zap.String("method", req.Method),
					zap.String("path", req.URL.Path),
					zap.Error(err),
				)
				http.Error(w, userFacingError, http.StatusBadGateway)
			}
		}
	}
}

// POST /v1/check
// Body: {"input": "<pasted text>"}
func (r *Router) handleCheck(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Input string `json:"input"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return appchecks.ErrEmptyInput
	}
	input := middleware.SanitizeString(body.Input)
	if err := middleware.ValidateInput(input); err != nil {
		return appchecks.ErrEmptyInput
	}

	outcome, err := r.checksSvc.Check(req.Context(), input)
	if err != nil {
		middleware.IncrementChecksFailed()
		return err
	}
	middleware.IncrementChecks()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(outcome)
}

// GET /v1/history
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	items := r.historySvc.Load(req.Context())
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(items)
}

// DELETE /v1/history
func (r *Router) handleClearHistory(w http.ResponseWriter, req *http.Request) error {
	if err := r.historySvc.Clear(req.Context()); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]string{
		"status":  "cleared",
		"message": "Geschiedenis gewist",
	})
}

// POST /v1/report
// Body: {"score": 85, "riskLevel": "HOOG", "summary": "..."}
func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Score     int    `json:"score"`
		RiskLevel string `json:"riskLevel"`
		Summary   string `json:"summary"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}

	receipt, err := r.reportsSvc.Submit(req.Context(), middleware.ClampScore(body.Score), body.RiskLevel, body.Summary)
	if err != nil {
		return err
	}
	middleware.IncrementReports()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(receipt)
}
