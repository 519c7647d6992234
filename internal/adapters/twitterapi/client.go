// Package twitterapi provides a resilient client for the social content source
package twitterapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"voiceloom/internal/core/scoring"
	perr "voiceloom/internal/platform/errors"
	"voiceloom/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.twitterapi.io"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "voiceloom-api"
	defaultMaxRetry  = 2
	defaultRetryBase = 500 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
}

// Creator is the profile metadata the pipeline needs
type Creator struct {
	ID          string
	Handle      string
	DisplayName string
	Followers   int64
	Bio         string
}

// Page is one page of a creator's recent posts
type Page struct {
	Posts      []scoring.RawPost
	HasNext    bool
	NextCursor string
}

// Client is a minimal content source client with retries and rate limit handling
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("twitterapi"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Lookup fetches a creator's profile metadata
// a not found error means the account does not exist
func (c *Client) Lookup(ctx context.Context, handle string) (Creator, error) {
	var env userEnvelope
	path := "/twitter/user/info?userName=" + url.QueryEscape(handle)
	if err := c.getJSON(ctx, path, &env); err != nil {
		return Creator{}, err
	}
	if env.Data.ID == "" {
		return Creator{}, perr.NotFoundf("account %q does not exist", handle)
	}
	return Creator{
		ID:          env.Data.ID,
		Handle:      env.Data.UserName,
		DisplayName: env.Data.Name,
		Followers:   env.Data.Followers,
		Bio:         env.Data.Bio,
	}, nil
}

// RecentPosts fetches one page of a creator's recent posts
// cursor is empty for the first page
func (c *Client) RecentPosts(ctx context.Context, handle, cursor string) (Page, error) {
	path := "/twitter/user/last_tweets?userName=" + url.QueryEscape(handle)
	if cursor != "" {
		path += "&cursor=" + url.QueryEscape(cursor)
	}
	var env tweetsEnvelope
	if err := c.getJSON(ctx, path, &env); err != nil {
		return Page{}, err
	}

	posts := make([]scoring.RawPost, 0, len(env.Tweets))
	for _, tw := range env.Tweets {
		created, err := time.Parse(createdAtLayout, tw.CreatedAt)
		if err != nil {
			// one unparseable timestamp must not sink the page
			c.log.Warn().Str("post_id", tw.ID).Str("created_at", tw.CreatedAt).Msg("skipping post with bad timestamp")
			continue
		}
		posts = append(posts, scoring.RawPost{
			ID:            tw.ID,
			Text:          tw.Text,
			CreatedAt:     created,
			AuthorHandle:  handle,
			LikeCount:     tw.LikeCount,
			RetweetCount:  tw.RetweetCount,
			ReplyCount:    tw.ReplyCount,
			QuoteCount:    tw.QuoteCount,
			ViewCount:     tw.ViewCount,
			BookmarkCount: tw.BookmarkCount,
			IsReply:       tw.IsReply,
		})
	}
	return Page{Posts: posts, HasNext: env.HasNext, NextCursor: env.NextCursor}, nil
}

// getJSON issues a GET with retries and decodes the body into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	defer func() { _ = drainAndClose(resp.Body) }()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return perr.Upstreamf("content source returned malformed json: %v", err)
	}
	return nil
}

// do issues a request with auth headers, retries, and rate limit handling
func (c *Client) do(ctx context.Context, method, path string) (*http.Response, error) {
	reqURL := c.opts.BaseURL + path
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "content source new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/json")
		if c.opts.APIKey != "" {
			req.Header.Set("X-API-Key", c.opts.APIKey)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "content source unreachable")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("content source transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		retryAfter := parseRetryAfter(resp.Header)
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Int("retry_after_s", retryAfter).
			Msg("content source http response")

		switch resp.StatusCode {
		case http.StatusOK:
			return resp, nil
		case http.StatusNotFound:
			_ = drainAndClose(resp.Body)
			return nil, perr.NotFoundf("account does not exist")
		case http.StatusTooManyRequests:
			wait := time.Duration(retryAfter) * time.Second
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Upstreamf("content source rate limited")
			}
			c.log.Warn().Dur("sleep", wait).Msg("content source rate limited backing off")
			_ = drainAndClose(resp.Body)
			c.sleep(wait)
			attempts++
			continue
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Upstreamf("content source server error %d", resp.StatusCode)
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("content source transient error retrying")
			_ = drainAndClose(resp.Body)
			c.sleep(back)
			attempts++
			continue
		default:
			// read a small tail for diagnostics then return
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Upstreamf("content source unexpected status %d body %s", resp.StatusCode, string(body))
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	ceiling := int64(10 * time.Second / time.Millisecond)
	if ms > ceiling {
		ms = ceiling
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func parseRetryAfter(h http.Header) int {
	if v := h.Get("Retry-After"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 1<<20))
	return rc.Close()
}
