package lifting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=lifting_test

type liftingService interface {
	Callback(ctx context.Context, req CallbackRequest) (*CallbackResponse, error)
	ExerciseTrend(ctx context.Context, exercise string, muscles []string, window Window) (*ExerciseTrend, error)
	Muscles(ctx context.Context) ([]string, error)
	Palette() config.Palette
}

type pageRenderer interface {
	RenderLifting(w io.Writer, page PageData) error
}

const maxCallbackBodyBytes = 1 << 16

// PageData is everything the lifting page shell needs on first render.
type PageData struct {
	Muscles  []string
	Selected []string
	Initial  *CallbackResponse
	Palette  config.Palette
}

type Handler struct {
	service        liftingService
	renderer       pageRenderer
	metricsManager *metrics.Manager
}

func NewHandler(service liftingService, renderer pageRenderer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		renderer:       renderer,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/lifting", h.HandlePage).Methods("GET").Name("lifting-page")
	r.HandleFunc("/lifting/callback", h.HandleCallback).Methods("POST").Name("lifting-callback")
	r.HandleFunc("/lifting/muscles", h.HandleMuscles).Methods("GET").Name("lifting-muscles")
	r.HandleFunc("/lifting/exercise/{exercise}/trend.png", h.HandleTrendPNG).Methods("GET").Name("lifting-trend-png")
}

func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifting.page")
	defer span.End()

	muscles, err := h.service.Muscles(ctx)
	if err != nil {
		log.Errorf("lifting page, get muscles: %s", err)
		http.Error(w, "failed to get muscles", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	initial, err := h.service.Callback(ctx, CallbackRequest{Trigger: TriggerInitial})
	if err != nil {
		log.Errorf("lifting page, initial callback: %s", err)
		http.Error(w, "failed to compute trends", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderLifting(&buf, PageData{
		Muscles:  muscles,
		Selected: DefaultMuscles,
		Initial:  initial,
		Palette:  h.service.Palette(),
	}); err != nil {
		log.Errorf("render lifting page: %s", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.HTML, buf.Bytes())
}

func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifting.callback")
	defer span.End()

	var req CallbackRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxCallbackBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("lifting callback, unmarshal json params: %s", err)
		http.Error(w, "invalid callback request", http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.String("trigger", string(req.Trigger)),
		attribute.String("activeWindow", string(req.ActiveWindow)),
	)

	resp, err := h.service.Callback(ctx, req)
	if err != nil {
		log.Errorf("lifting callback [%s]: %s", req.Trigger, err)
		http.Error(w, "failed to compute trends", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterCallbacks.With(prometheus.Labels{"window": string(resp.ActiveWindow)}).Inc()
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifting.muscles")
	defer span.End()

	muscles, err := h.service.Muscles(ctx)
	if err != nil {
		log.Errorf("get muscles: %s", err)
		http.Error(w, "failed to get muscles", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	pkg.WriteJSON(w, muscles, http.StatusOK)
}

// HandleTrendPNG serves /lifting/exercise/{exercise}/trend.png?window=&muscle=&muscle=
func (h *Handler) HandleTrendPNG(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifting.trendPng")
	defer span.End()

	exercise := strings.TrimSpace(mux.Vars(r)["exercise"])
	if exercise == "" {
		http.Error(w, "exercise missing", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("exercise", exercise))

	window := DefaultWindow
	if windowParam := r.URL.Query().Get("window"); windowParam != "" {
		parsed, ok := ParseWindow(windowParam)
		if !ok {
			http.Error(w, "invalid window", http.StatusBadRequest)
			return
		}
		window = parsed
	}

	var muscles []string
	if selected, ok := r.URL.Query()["muscle"]; ok {
		muscles = selected
	}

	trend, err := h.service.ExerciseTrend(ctx, exercise, muscles, window)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "no trend for exercise", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise trend [%s]: %s", exercise, err)
		http.Error(w, "failed to compute trend", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := RenderTrendPNG(&buf, *trend, h.service.Palette()); err != nil {
		log.Errorf("render trend png [%s]: %s", exercise, err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.PNG, buf.Bytes())
}
