package oura

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	responseCacheExpire = 10 * 60 // seconds
	maxPages            = 50
)

var ErrUnauthorized = errors.New("oura token rejected")

type Kind string

const (
	KindSleep     Kind = "sleep"
	KindReadiness Kind = "readiness"
	KindActivity  Kind = "activity"
)

var Kinds = []Kind{KindSleep, KindReadiness, KindActivity}

func (k Kind) endpoint() string {
	return "/v2/usercollection/daily_" + string(k)
}

// DailySummary is one day of one Oura collection. Payload keeps the raw item.
type DailySummary struct {
	Day     time.Time
	Kind    Kind
	Score   *int
	Payload json.RawMessage
}

type collectionPage struct {
	Data      []json.RawMessage `json:"data"`
	NextToken *string           `json:"next_token"`
}

type dailyItem struct {
	Day   string `json:"day"`
	Score *int   `json:"score"`
}

type Client struct {
	baseURL    string // https://api.ouraring.com
	token      string
	httpClient *http.Client
	cache      *freecache.Cache
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
		cache:      freecache.NewCache(10 * megabyte),
	}
}

// DailySummaries returns every day of kind in [start, end], following next_token pages.
func (c *Client) DailySummaries(ctx context.Context, kind Kind, start, end time.Time) (_ []DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ouraClient.dailySummaries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("start", start.Format(pkg.DayLayout)),
		attribute.String("end", end.Format(pkg.DayLayout)),
	)

	var summaries []DailySummary
	nextToken := ""
	for page := 0; page < maxPages; page++ {
		params := url.Values{}
		params.Set("start_date", start.Format(pkg.DayLayout))
		params.Set("end_date", end.Format(pkg.DayLayout))
		if nextToken != "" {
			params.Set("next_token", nextToken)
		}

		respPage, err := c.getPage(ctx, c.baseURL+kind.endpoint()+"?"+params.Encode())
		if err != nil {
			return nil, fmt.Errorf("%s page %d: %w", kind, page, err)
		}

		for _, raw := range respPage.Data {
			var item dailyItem
			if err := json.Unmarshal(raw, &item); err != nil {
				return nil, fmt.Errorf("unmarshal %s item: %w", kind, err)
			}
			day, err := pkg.ParseDay(item.Day)
			if err != nil {
				log.Warnf("oura %s: skipping item with bad day [%s]", kind, item.Day)
				continue
			}
			summaries = append(summaries, DailySummary{
				Day:     day,
				Kind:    kind,
				Score:   item.Score,
				Payload: raw,
			})
		}

		if respPage.NextToken == nil || *respPage.NextToken == "" {
			span.SetAttributes(attribute.Int("pages", page+1))
			return summaries, nil
		}
		nextToken = *respPage.NextToken
	}

	return nil, fmt.Errorf("%s: more than %d pages", kind, maxPages)
}

func (c *Client) getPage(ctx context.Context, pageURL string) (*collectionPage, error) {
	page := &collectionPage{}
	if cached, err := c.cache.Get([]byte(pageURL)); err == nil {
		if err := json.Unmarshal(cached, page); err == nil {
			log.Tracef("oura page found in cache: %s", pageURL)
			return page, nil
		}
		log.Errorf("unmarshal cached oura page %s", pageURL)
	}

	log.Debugf("calling oura api: %s", pageURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read oura response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("oura api status %d: %s", resp.StatusCode, truncate(string(respBytes), 200))
	}

	if err := json.Unmarshal(respBytes, page); err != nil {
		return nil, fmt.Errorf("unmarshal oura response: %w", err)
	}

	if err := c.cache.Set([]byte(pageURL), respBytes, responseCacheExpire); err != nil {
		log.Errorf("set oura page cache: %s", err)
	}
	return page, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
