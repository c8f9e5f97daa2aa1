package gaclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	gadomain "github.com/vfg2006/analytics-dashboard-api/infrastructure/integrator/ga4/gadomain"
)

func (c *GA4Client) RunReport(ctx context.Context, request *gadomain.RunReportRequest) (*gadomain.RunReportResponse, error) {
	url := fmt.Sprintf("%s/properties/%s:runReport", c.apiURL, c.propertyID)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "ga4: encode report request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "ga4: create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "ga4: access token")
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Mantém context.DeadlineExceeded acessível via errors.Is
		return nil, errors.Wrap(err, "ga4: request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "ga4: read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errorResponse gadomain.ErrorResponse
		if err := json.Unmarshal(payload, &errorResponse); err == nil {
			apiErr.Details = errorResponse.Error
		}

		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"status":      apiErr.Details.Status,
			"property_id": c.propertyID,
		}).Warn("ga4: report request rejected")

		return nil, apiErr
	}

	var response gadomain.RunReportResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, errors.Wrap(err, "ga4: decode report response")
	}

	return &response, nil
}
