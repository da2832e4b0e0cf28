/*
Package upstream is the REST client for the game platform's presence and games APIs.

It performs single-shot calls only: no retries, no caching, no batching beyond what one
request carries. Every call is bounded by the client timeout and the caller's context.
*/
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rbxpresence/internal/pkg/logx"
)

const (
	// SessionCookieName is the platform cookie carrying an authenticated session.
	SessionCookieName = ".ROBLOSECURITY"

	// CorrelationHeader carries the lookup id on outbound requests.
	CorrelationHeader = "X-Correlation-ID"

	presencePath = "/v1/presence/users"
	gamesPath    = "/v1/games"

	maxErrorBody = 4 << 10
)

// Observer receives one observation per upstream call.
type Observer interface {
	ObserveUpstream(endpoint, outcome string, elapsed time.Duration)
}

// Options configures a Client.
type Options struct {
	PresenceBaseURL string
	GamesBaseURL    string
	Timeout         time.Duration

	// HTTPClient overrides the default client. Timeout is ignored when set.
	HTTPClient *http.Client
	Observer   Observer
}

// Client calls the presence and games services.
type Client struct {
	http        *http.Client
	presenceURL string
	gamesURL    string
	observer    Observer
}

// StatusError reports a non-2xx response from an upstream service.
type StatusError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s request failed with status %d", e.Endpoint, e.Status)
}

// NewClient builds a Client from opts.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		http:        httpClient,
		presenceURL: strings.TrimRight(opts.PresenceBaseURL, "/") + presencePath,
		gamesURL:    strings.TrimRight(opts.GamesBaseURL, "/") + gamesPath,
		observer:    opts.Observer,
	}
}

type correlationKey struct{}

// WithCorrelationID returns a context whose outbound requests carry id in CorrelationHeader.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func correlationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// FetchPresences posts userIDs to the presence service. A non-empty sessionCookie is
// sent as the platform session cookie, which unlocks the gameId field upstream.
func (c *Client) FetchPresences(ctx context.Context, userIDs []int64, sessionCookie string) ([]UserPresence, error) {
	body, err := json.Marshal(presenceRequest{UserIDs: userIDs})
	if err != nil {
		return nil, fmt.Errorf("encode presence request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.presenceURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build presence request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if sessionCookie != "" {
		httpReq.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionCookie})
	}

	var out presenceResponse
	if err := c.do(httpReq, "presence", &out); err != nil {
		return nil, err
	}
	return out.UserPresences, nil
}

// FetchGames resolves universe ids through the games service.
func (c *Client) FetchGames(ctx context.Context, universeIDs []int64) ([]Game, error) {
	ids := make([]string, len(universeIDs))
	for i, id := range universeIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	u := c.gamesURL + "?" + url.Values{"universeIds": {strings.Join(ids, ",")}}.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build games request: %w", err)
	}

	var out gamesResponse
	if err := c.do(httpReq, "games", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) do(httpReq *http.Request, endpoint string, dst any) error {
	httpReq.Header.Set("Accept", "application/json")
	if id := correlationID(httpReq.Context()); id != "" {
		httpReq.Header.Set(CorrelationHeader, id)
	}

	started := time.Now()
	res, err := c.http.Do(httpReq)
	if err != nil {
		c.observe(endpoint, "transport_error", started)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.observe(endpoint, "status_"+strconv.Itoa(res.StatusCode), started)
		return &StatusError{
			Endpoint: endpoint,
			Status:   res.StatusCode,
			Message:  readErrorMessage(res.Body),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		c.observe(endpoint, "decode_error", started)
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	c.observe(endpoint, "ok", started)
	logx.Debug("Upstream call completed",
		"endpoint", endpoint,
		"status", res.StatusCode,
		"latency_ms", time.Since(started).Milliseconds(),
	)
	return nil
}

func (c *Client) observe(endpoint, outcome string, started time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(endpoint, outcome, time.Since(started))
	}
}

// readErrorMessage extracts errors[0].message from a platform error body.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var parsed apiErrorBody
	if err := json.Unmarshal(raw, &parsed); err == nil && len(parsed.Errors) > 0 {
		return parsed.Errors[0].Message
	}
	return ""
}
