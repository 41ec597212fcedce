// client.go fetches the MultiGP season results page, it knows nothing about
// what the page contains.

package multigp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mgpresults/internal/components/assert"
	"mgpresults/internal/components/telemetry"
	"mgpresults/lib/restyutil"
	"mgpresults/pkg/htmlutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	report_client_fetch = "client.fetch"
)

// DefaultResultsUrl is the Zipper season results page.
const DefaultResultsUrl = "https://www.multigp.com/MultiGP/views/viewZipperSeasonResults2025.php"

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

type ClientOptions struct {
	// Url defaults to DefaultResultsUrl.
	Url string
	// Timeout defaults to 30 seconds.
	Timeout   time.Duration
	UserAgent string
	// RequestsPerSecond limits outbound requests, 0 disables the limit.
	RequestsPerSecond float64
	// Dump receives a text copy of every exchange when set.
	Dump restyutil.Output
}

// Client fetches the leaderboard page.
type Client struct {
	url  string
	http *resty.Client
	tel  telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel)

	tel = telemetry.NewScopedAPI("multigp_scraper", tel)

	if opts.Url == "" {
		opts.Url = DefaultResultsUrl
	}
	parsed, err := url.Parse(opts.Url)
	if err != nil {
		return nil, fmt.Errorf("multigp: parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("multigp: unsupported url scheme %q", parsed.Scheme)
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	httpClient := resty.New()
	httpClient.SetTransport(otelhttp.NewTransport(http.DefaultTransport))
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	httpClient.SetHeaders(map[string]string{
		"User-Agent":      opts.UserAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
		"Cache-Control":   "no-cache",
	})

	if opts.RequestsPerSecond > 0 {
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel)
	restyutil.DumpExchanges(httpClient, opts.Dump)

	return &Client{
		url:  parsed.String(),
		http: httpClient,
		tel:  tel,
	}, nil
}

// Url is the page the client fetches.
func (c *Client) Url() string {
	return c.url
}

// Page is a fetched copy of the leaderboard page.
type Page struct {
	Url         string
	StatusCode  int
	ContentType string
	// Body is always UTF-8.
	Body []byte
}

// FetchLeaderboard downloads the page. Transport failures and non-2xx
// statuses are returned as *FetchError.
func (c *Client) FetchLeaderboard(ctx context.Context) (Page, error) {
	c.tel.ReportDebug("fetch leaderboard", c.url)

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		err = &FetchError{Url: c.url, Err: err}
		c.tel.ReportBroken(report_client_fetch, err)
		return Page{}, err
	}
	if !res.IsSuccess() {
		err = &FetchError{Url: c.url, StatusCode: res.StatusCode()}
		c.tel.ReportBroken(report_client_fetch, err)
		return Page{}, err
	}

	contentType := res.Header().Get("Content-Type")
	body, err := htmlutil.DecodeUTF8(ctx, res.Body(), contentType)
	if err != nil {
		err = &FetchError{Url: c.url, StatusCode: res.StatusCode(), Err: err}
		c.tel.ReportBroken(report_client_fetch, err, contentType)
		return Page{}, err
	}

	return Page{
		Url:         c.url,
		StatusCode:  res.StatusCode(),
		ContentType: contentType,
		Body:        body,
	}, nil
}
