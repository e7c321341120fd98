package datapull

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=datapull_test

const (
	defaultStatusLimit = 20
	maxStatusLimit     = 200
)

type refreshRunner interface {
	RunAsync(ctx context.Context, method Method) (*RefreshStatus, error)
}

type statusReader interface {
	Get(ctx context.Context, id uuid.UUID) (*RefreshStatus, error)
	Latest(ctx context.Context, limit int) ([]RefreshStatus, error)
}

type Handler struct {
	runner   refreshRunner
	statuses statusReader
}

func NewHandler(runner refreshRunner, statuses statusReader) *Handler {
	return &Handler{
		runner:   runner,
		statuses: statuses,
	}
}

// SetupRoutes registers the refresh routes. The middlewares only guard the
// manual trigger; status reads are public.
func (h *Handler) SetupRoutes(r *mux.Router, triggerMiddlewares ...mux.MiddlewareFunc) {
	var trigger http.Handler = http.HandlerFunc(h.HandleRefresh)
	for i := len(triggerMiddlewares) - 1; i >= 0; i-- {
		trigger = triggerMiddlewares[i](trigger)
	}

	r.Handle("/refresh", trigger).Methods("POST").Name("refresh-trigger")
	r.HandleFunc("/refresh/status", h.HandleLatest).Methods("GET").Name("refresh-status-latest")
	r.HandleFunc("/refresh/status/{id}", h.HandleGet).Methods("GET").Name("refresh-status-get")
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.refresh.trigger")
	defer span.End()

	status, err := h.runner.RunAsync(ctx, MethodManual)
	if err != nil {
		if errors.Is(err, ErrRefreshInProgress) {
			http.Error(w, "refresh already in progress", http.StatusConflict)
			return
		}
		log.Errorf("manual refresh: %s", err)
		http.Error(w, "failed to start refresh", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	pkg.WriteJSON(w, status, http.StatusAccepted)
}

func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.refresh.latest")
	defer span.End()

	limit := defaultStatusLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxStatusLimit)
	}

	statuses, err := h.statuses.Latest(ctx, limit)
	if err != nil {
		log.Errorf("get latest refresh statuses: %s", err)
		http.Error(w, "failed to get refresh statuses", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	if statuses == nil {
		statuses = []RefreshStatus{}
	}

	pkg.WriteJSON(w, statuses, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.refresh.get")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	status, err := h.statuses.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrStatusNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		log.Errorf("get refresh status %s: %s", id, err)
		http.Error(w, "failed to get refresh status", http.StatusInternalServerError)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	pkg.WriteJSON(w, status, http.StatusOK)
}
