// Package upstream talks to the cinema chain's public data API.  Every call
// is a single live GET; nothing is cached and nothing is retried.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/cinema-billboard/internal/logging"
	"github.com/iliyamo/cinema-billboard/internal/metrics"
	"github.com/iliyamo/cinema-billboard/internal/model"
)

const (
	DefaultBaseURL  = "https://api.cinemark-peru.com/api/vista/data"
	DefaultCinemaID = "740"
	defaultTimeout  = 15 * time.Second
	maxErrorBody    = 8 << 10
)

// Client wraps HTTP access to the upstream billboard, coming_soon and
// theatres endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logrus.Entry
}

// NewClient creates a client for baseURL.  A nil httpClient gets a default
// one with a bounded timeout; a nil log discards output.
func NewClient(baseURL string, httpClient *http.Client, log *logrus.Entry) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// Billboard returns the raw billboard feed for a cinema.  An empty cinemaID
// falls back to DefaultCinemaID.
func (c *Client) Billboard(ctx context.Context, cinemaID string) (json.RawMessage, error) {
	if cinemaID == "" {
		cinemaID = DefaultCinemaID
	}
	endpoint := c.baseURL + "/billboard?cinema_id=" + url.QueryEscape(cinemaID)
	return c.getRaw(ctx, ResourceBillboard, endpoint)
}

// ComingSoon returns the raw coming_soon feed.
func (c *Client) ComingSoon(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, ResourceComingSoon, c.baseURL+"/coming_soon")
}

// Theatres returns the raw theatres feed.
func (c *Client) Theatres(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, ResourceTheatres, c.baseURL+"/theatres")
}

// BillboardDays fetches and decodes the billboard feed for a cinema.
func (c *Client) BillboardDays(ctx context.Context, cinemaID string) ([]model.BillboardDay, error) {
	raw, err := c.Billboard(ctx, cinemaID)
	if err != nil {
		return nil, err
	}
	var days []model.BillboardDay
	if err := decode(ResourceBillboard, raw, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// ComingSoonMovies fetches and decodes the coming_soon feed.  A missing
// "value" array decodes to an empty list.
func (c *Client) ComingSoonMovies(ctx context.Context) ([]model.ComingSoonMovie, error) {
	raw, err := c.ComingSoon(ctx)
	if err != nil {
		return nil, err
	}
	var resp model.ComingSoonResponse
	if err := decode(ResourceComingSoon, raw, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// TheatreGroups fetches and decodes the theatres feed.  Duplicate theatre
// ids are logged, not rejected; lookups return the first match.
func (c *Client) TheatreGroups(ctx context.Context) ([]model.TheatreGroup, error) {
	raw, err := c.Theatres(ctx)
	if err != nil {
		return nil, err
	}
	var groups []model.TheatreGroup
	if err := decode(ResourceTheatres, raw, &groups); err != nil {
		return nil, err
	}
	if err := model.ValidateTheatres(groups); err != nil {
		c.log.WithError(err).Warn("theatres feed failed validation")
	}
	return groups, nil
}

func (c *Client) getRaw(ctx context.Context, res Resource, endpoint string) (json.RawMessage, error) {
	start := time.Now()
	raw, status, err := c.do(ctx, res, endpoint)
	metrics.ObserveUpstream(string(res), status, time.Since(start))
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"resource": res,
			"endpoint": endpoint,
			"status":   status,
		}).WithError(err).Warn("upstream fetch failed")
		return nil, err
	}
	return raw, nil
}

func (c *Client) do(ctx context.Context, res Resource, endpoint string) (json.RawMessage, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, &InternalError{Resource: res, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &InternalError{Resource: res, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, resp.StatusCode, &UpstreamError{
			Resource:   res,
			StatusCode: resp.StatusCode,
			Message:    res.FailureMessage(),
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &InternalError{Resource: res, Err: fmt.Errorf("read body: %w", err)}
	}
	if !json.Valid(body) {
		return nil, resp.StatusCode, &InternalError{Resource: res, Err: fmt.Errorf("response from %s is not valid JSON", endpoint)}
	}
	return json.RawMessage(body), resp.StatusCode, nil
}

func decode(res Resource, raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &InternalError{Resource: res, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
