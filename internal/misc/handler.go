package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const healthCheckTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a func to the health check pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Handler struct {
	versionInfo string
	homePath    string
	checks      map[string]pinger
}

func NewHandler(versionInfo, homePath string) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		homePath:    homePath,
		checks:      make(map[string]pinger),
	}
}

// AddHealthCheck registers a dependency checked by /health.
func (handler *Handler) AddHealthCheck(name string, check pinger) {
	handler.checks[name] = check
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, handler.homePath, http.StatusFound)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	statuses := make(map[string]string, len(handler.checks))
	healthy := true
	for name, check := range handler.checks {
		if err := check.Ping(ctx); err != nil {
			log.Errorf("health check [%s]: %s", name, err)
			statuses[name] = err.Error()
			healthy = false
			continue
		}
		statuses[name] = "ok"
	}

	if !healthy {
		span.SetStatus(codes.Error, "unhealthy")
		pkg.WriteJSON(w, statuses, http.StatusServiceUnavailable)
		return
	}
	pkg.WriteJSON(w, statuses, http.StatusOK)
}
