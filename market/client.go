package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultBaseURL is the public CoinMarketCap host
const DefaultBaseURL = "https://api.coinmarketcap.com"

// DefaultAssetID is Ethereum; the reference series is always Bitcoin
const DefaultAssetID = 1027

// Client fetches chart points over HTTP
type Client struct {
	HTTP    *http.Client
	BaseURL string
	AssetID int
}

// NewClient creates a client with the given request timeout
func NewClient(baseURL string, assetID int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if assetID <= 0 {
		assetID = DefaultAssetID
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
		AssetID: assetID,
	}
}

// URL returns the request URL for a range
func (c *Client) URL(r TimeRange) string {
	q := url.Values{}
	q.Set("id", strconv.Itoa(c.AssetID))
	q.Set("range", string(r))
	return c.BaseURL + "/data-api/v3/cryptocurrency/detail/chart?" + q.Encode()
}

// Response is the decoded API document
type Response struct {
	Data struct {
		Points map[string]rawPoint `json:"points"`
	} `json:"data"`
	Status struct {
		ErrorCode    apiCode `json:"error_code"`
		ErrorMessage string  `json:"error_message"`
	} `json:"status"`
}

type rawPoint struct {
	V []float64 `json:"v"`
}

// apiCode accepts the status code as either a string or a number
type apiCode string

func (c *apiCode) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = apiCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = apiCode(n.String())
	return nil
}

// Result holds the reshaped points plus the raw body for inspection
type Result struct {
	Range  TimeRange
	Points []DataPoint
	Raw    []byte
}

// Fetch loads and reshapes the points for a range. Failures are *LoadError.
func (c *Client) Fetch(ctx context.Context, r TimeRange) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(r), nil)
	if err != nil {
		return nil, &LoadError{Kind: KindNetwork, Range: r, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &LoadError{Kind: KindNetwork, Range: r, Err: err}
	}
	defer resp.Body.Close()

	// Some proxies prepend a BOM, which encoding/json rejects
	body, err := io.ReadAll(transform.NewReader(resp.Body, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, &LoadError{Kind: KindNetwork, Range: r, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Kind: KindStatus, Range: r, Err: fmt.Errorf("status %d: %s", resp.StatusCode, snippet(body))}
	}

	points, err := Parse(body)
	if err != nil {
		kind := KindParse
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			kind = KindAPI
		}
		return nil, &LoadError{Kind: kind, Range: r, Err: err}
	}
	return &Result{Range: r, Points: points, Raw: body}, nil
}

// APIError is reported by the API inside an otherwise valid response
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// Parse decodes a response body into points sorted by time
func Parse(body []byte) ([]DataPoint, error) {
	var doc Response
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if code := string(doc.Status.ErrorCode); code != "" && code != "0" {
		return nil, &APIError{Code: code, Message: doc.Status.ErrorMessage}
	}

	points := make([]DataPoint, 0, len(doc.Data.Points))
	for key, raw := range doc.Data.Points {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("point key %q: %w", key, err)
		}
		points = append(points, DataPoint{
			Time:           ts,
			Value:          at(raw.V, 0),
			Volume:         at(raw.V, 1),
			SecondaryValue: at(raw.V, 3),
		})
	}
	// map order is random; the chart needs ascending time
	sort.Slice(points, func(i, j int) bool { return points[i].Time < points[j].Time })
	return points, nil
}

func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func snippet(b []byte) string {
	const max = 200
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
