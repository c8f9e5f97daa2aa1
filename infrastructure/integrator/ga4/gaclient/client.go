package gaclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	gadomain "github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gadomain"
	"github.com/vfg2006/analytics-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotConfigured indica que faltam credenciais do GA4
var ErrNotConfigured = errors.New("ga4: property id, client email and private key are required")

type Client interface {
	RunReport(ctx context.Context, request *gadomain.RunReportRequest) (*gadomain.RunReportResponse, error)
	PropertyID() string
}

type GA4Client struct {
	apiURL     string
	propertyID string
	httpClient *http.Client

	// tokens é nil quando httpClient já autentica as requisições
	tokens *cachedTokenSource
}

// NewClient monta o cliente autenticado com a conta de serviço. Os tokens são
// reaproveitados até expirar e a troca respeita o prazo de cada chamada.
func NewClient(cfg *config.Config) (Client, error) {
	if !cfg.GA4.IsConfigured() {
		return nil, ErrNotConfigured
	}

	source, err := NewServiceAccountTokenSource(
		cfg.GA4.ClientEmail,
		cfg.GA4.NormalizedPrivateKey(),
		cfg.GA4.TokenURL,
	)
	if err != nil {
		return nil, err
	}

	return &GA4Client{
		apiURL:     strings.TrimRight(cfg.GA4.APIURL, "/"),
		propertyID: cfg.GA4.PropertyID,
		httpClient: &http.Client{},
		tokens:     newCachedTokenSource(source),
	}, nil
}

// NewClientWithHTTPClient usa um http.Client já autenticado
func NewClientWithHTTPClient(apiURL, propertyID string, httpClient *http.Client) Client {
	return &GA4Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		propertyID: propertyID,
		httpClient: httpClient,
	}
}

func (c *GA4Client) PropertyID() string {
	return c.propertyID
}

// APIError é uma resposta não 2xx da Data API
type APIError struct {
	StatusCode int
	Details    gadomain.ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.Message == "" {
		return fmt.Sprintf("ga4: status %d", e.StatusCode)
	}
	return fmt.Sprintf("ga4: status %d: %s: %s", e.StatusCode, e.Details.Status, e.Details.Message)
}
