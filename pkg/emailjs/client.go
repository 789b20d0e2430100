// Package emailjs sends template-based notification emails through the
// EmailJS REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/craigashields/docs-feedback/pkg/errors"
	"github.com/craigashields/docs-feedback/pkg/httpclient"
	"github.com/craigashields/docs-feedback/pkg/logger"
	"github.com/craigashields/docs-feedback/pkg/metrics"
	"github.com/craigashields/docs-feedback/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const serviceName = "emailjs"

// maxDrainBytes bounds how much of a response body is read before closing
const maxDrainBytes = 64 * 1024

// Request is the payload accepted by the EmailJS send endpoint
type Request struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken"`
	TemplateParams map[string]any `json:"template_params"`
}

// Client posts send requests to a single EmailJS endpoint
type Client struct {
	url        string
	httpClient httpclient.Client
}

// NewClient creates a new EmailJS client
func NewClient(url string, httpClient httpclient.Client) *Client {
	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// Send performs exactly one POST of req. A response outside 2xx is returned
// as an error wrapping errors.ErrUpstream; the provider body is discarded.
func (c *Client) Send(ctx context.Context, req *Request) error {
	ctx, span := tracing.StartSpan(ctx, "emailjs.send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("emailjs.service_id", req.ServiceID),
		attribute.String("emailjs.template_id", req.TemplateID),
	)

	start := time.Now()

	payload, err := json.Marshal(req)
	if err != nil {
		return c.fail(ctx, span, start, fmt.Errorf("failed to encode email request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return c.fail(ctx, span, start, fmt.Errorf("failed to build email request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	tracing.InjectHeaders(ctx, propagation.HeaderCarrier(httpReq.Header))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.fail(ctx, span, start, fmt.Errorf("failed to call email provider: %w", err))
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes)) //nolint:errcheck

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		duration := metrics.MeasureDuration(start)
		metrics.EmailProviderRequestDuration.WithLabelValues("send", "rejected").Observe(duration)
		metrics.EmailProviderRequestTotal.WithLabelValues("send", "rejected").Inc()
		span.SetStatus(codes.Error, resp.Status)
		logger.LogAPICall(ctx, serviceName, "send", "rejected", duration, zap.Int("status_code", resp.StatusCode))
		return apperrors.UpstreamError(serviceName, resp.StatusCode)
	}

	duration := metrics.MeasureDuration(start)
	metrics.EmailProviderRequestDuration.WithLabelValues("send", "success").Observe(duration)
	metrics.EmailProviderRequestTotal.WithLabelValues("send", "success").Inc()
	logger.LogAPICall(ctx, serviceName, "send", "success", duration, zap.Int("status_code", resp.StatusCode))

	return nil
}

func (c *Client) fail(ctx context.Context, span trace.Span, start time.Time, err error) error {
	duration := metrics.MeasureDuration(start)
	metrics.EmailProviderRequestDuration.WithLabelValues("send", "error").Observe(duration)
	metrics.EmailProviderRequestTotal.WithLabelValues("send", "error").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	logger.LogAPICall(ctx, serviceName, "send", "error", duration, zap.Error(err))
	return err
}
