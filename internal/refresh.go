package internal

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/datapull"
	"github.com/2beens/fitdash/internal/datapull/fitbod"
	"github.com/2beens/fitdash/internal/datapull/oura"
	"github.com/2beens/fitdash/internal/telemetry/metrics"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

func NewRedisClient(ctx context.Context, cfg *config.Config, password string, tracingEnabled bool) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: password,
		DB:       0, // use default DB
	})
	if tracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}
	return rdb
}

// LoadGDriveCredentials takes service account JSON either inline or as a key file path.
func LoadGDriveCredentials(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if strings.HasPrefix(value, "{") {
		return []byte(value), nil
	}
	return os.ReadFile(value)
}

type RefresherSetupParams struct {
	Config            *config.Config
	DBPool            *pgxpool.Pool
	RedisClient       *redis.Client
	MetricsManager    *metrics.Manager
	HTTPClient        *http.Client
	OuraToken         string
	GDriveCredentials []byte
}

// NewDataSources builds the configured sources. A source without
// credentials or an export location is left out with a warning.
func NewDataSources(ctx context.Context, params RefresherSetupParams) ([]datapull.Source, error) {
	var sources []datapull.Source

	if params.OuraToken == "" {
		log.Warnln("oura token not set, oura source disabled. use FITDASH_OURA_TOKEN")
	} else {
		sources = append(sources, oura.NewSource(
			oura.NewClient(params.Config.OuraBaseURL, params.OuraToken, params.HTTPClient),
			oura.NewStore(params.DBPool),
			params.Config.OuraDaysBack,
			nil,
		))
	}

	var export interface {
		Open(ctx context.Context) (io.ReadCloser, error)
		String() string
	}
	switch {
	case params.Config.FitbodDriveFile != "" && len(params.GDriveCredentials) > 0:
		driveExport, err := fitbod.NewDriveExport(
			ctx,
			params.Config.FitbodDriveFile,
			option.WithCredentialsJSON(params.GDriveCredentials),
		)
		if err != nil {
			return nil, fmt.Errorf("fitbod drive export: %w", err)
		}
		export = driveExport
	case params.Config.FitbodExportPath != "":
		export = fitbod.NewFileExport(params.Config.FitbodExportPath)
	default:
		log.Warnln("no fitbod export location configured, fitbod source disabled")
	}

	if export != nil {
		fitbodSource, err := fitbod.NewSource(export, fitbod.NewStore(params.DBPool))
		if err != nil {
			return nil, fmt.Errorf("fitbod source: %w", err)
		}
		log.Debugf("fitbod export: %s", export)
		sources = append(sources, fitbodSource)
	}

	return sources, nil
}

func NewRefresher(ctx context.Context, params RefresherSetupParams) (*datapull.Refresher, error) {
	sources, err := NewDataSources(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		log.Warnln("no data sources configured, refresh runs will pull nothing")
	}

	return datapull.NewRefresher(datapull.RefresherParams{
		Sources:        sources,
		StatusStore:    datapull.NewStatusRepo(params.DBPool),
		Locker:         params.RedisClient,
		MetricsManager: params.MetricsManager,
	}), nil
}
