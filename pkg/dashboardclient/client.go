package dashboardclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/analytics-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultTimeout = 5 * time.Second
	MockDataHeader = "X-Mock-Data"
)

// Rotas expostas pelo backend
const (
	PathAnalytics       = "/api/analytics"
	PathSummaryMetrics  = "/api/summary-metrics"
	PathTrafficSources  = "/api/traffic-sources"
	PathDeviceUsage     = "/api/device-usage"
	PathVisitsByCountry = "/api/visits-by-country"
	PathTopPages        = "/api/top-pages"
)

// StatusError é uma resposta não 2xx do backend
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dashboardclient: status %d: %s", e.StatusCode, e.Message)
}

// Client consome a API do dashboard. Cada chamada tem o próprio timeout.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// New cria o cliente para a API em baseURL
func New(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) SummaryMetrics(ctx context.Context, dateRange domain.DateRange) (domain.Report[domain.SummaryMetrics], error) {
	var report domain.Report[domain.SummaryMetrics]
	mock, err := c.get(ctx, PathSummaryMetrics, dateRange, &report.Data)
	// O resumo carrega a flag no corpo, o cabeçalho é redundante
	report.IsMockData = mock || report.Data.IsMockData
	return report, err
}

func (c *Client) PageViews(ctx context.Context, dateRange domain.DateRange) (domain.Report[domain.PageViewsReport], error) {
	var report domain.Report[domain.PageViewsReport]
	mock, err := c.get(ctx, PathAnalytics, dateRange, &report.Data)
	report.IsMockData = mock
	return report, err
}

func (c *Client) TrafficSources(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.TrafficSource], error) {
	var report domain.Report[[]domain.TrafficSource]
	mock, err := c.get(ctx, PathTrafficSources, dateRange, &report.Data)
	report.IsMockData = mock
	return report, err
}

func (c *Client) DeviceUsage(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.DeviceUsage], error) {
	var report domain.Report[[]domain.DeviceUsage]
	mock, err := c.get(ctx, PathDeviceUsage, dateRange, &report.Data)
	report.IsMockData = mock
	return report, err
}

func (c *Client) VisitsByCountry(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.CountryVisits], error) {
	var report domain.Report[[]domain.CountryVisits]
	mock, err := c.get(ctx, PathVisitsByCountry, dateRange, &report.Data)
	report.IsMockData = mock
	return report, err
}

func (c *Client) TopPages(ctx context.Context, dateRange domain.DateRange) (domain.Report[[]domain.TopPage], error) {
	var report domain.Report[[]domain.TopPage]
	mock, err := c.get(ctx, PathTopPages, dateRange, &report.Data)
	report.IsMockData = mock
	return report, err
}

// Healthcheck consulta /healthcheck e devolve o corpo da resposta
func (c *Client) Healthcheck(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthcheck", nil)
	if err != nil {
		return "", fmt.Errorf("dashboardclient: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("dashboardclient: http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("dashboardclient: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	return string(body), nil
}

// get faz o GET com startDate/endDate e devolve o valor do cabeçalho X-Mock-Data
func (c *Client) get(ctx context.Context, path string, dateRange domain.DateRange, target any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("startDate", dateRange.StartDate())
	query.Set("endDate", dateRange.EndDate())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("dashboardclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("dashboardclient: http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var body struct {
			Error string `json:"error"`
		}
		payload, _ := io.ReadAll(resp.Body)
		message := string(payload)
		if err := json.Unmarshal(payload, &body); err == nil && body.Error != "" {
			message = body.Error
		}
		return false, &StatusError{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return false, fmt.Errorf("dashboardclient: decode response: %w", err)
	}

	return resp.Header.Get(MockDataHeader) == "true", nil
}
