package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/zaiqaeats/storefront/pkg/config"
	pkgerrors "github.com/zaiqaeats/storefront/pkg/errors"
	"github.com/zaiqaeats/storefront/pkg/logger"
)

const sendPath = "/api/v1.0/email/send"

// OrderLine is one structured entry in the order email payload.
type OrderLine struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
	Price string `json:"price"`
}

// CostBreakdown itemizes the charges shown in the order email.
type CostBreakdown struct {
	Subtotal string `json:"subtotal"`
	Delivery string `json:"delivery"`
	Total    string `json:"total"`
}

// TemplateParams carries the fields interpolated into the order email
// template. Orders and Cost are the canonical structured shape; Items and
// Total keep the flat summary older templates render.
type TemplateParams struct {
	ToEmail       string        `json:"to_email"`
	ToName        string        `json:"to_name"`
	OrderID       int           `json:"order_id"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	PaymentMethod string        `json:"payment_method"`
	Orders        []OrderLine   `json:"orders"`
	Cost          CostBreakdown `json:"cost"`
	Items         string        `json:"items"`
	Total         string        `json:"total"`
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams TemplateParams `json:"template_params"`
}

// Sender dispatches an order confirmation email.
type Sender interface {
	Send(ctx context.Context, params TemplateParams) error
}

// EmailJSClient posts order emails through the EmailJS REST API.
type EmailJSClient struct {
	cfg      config.EmailJSConfig
	http     *http.Client
	attempts int
	logg     *logger.Logger
}

// NewEmailJSClient builds a sender with a per-request timeout and bounded
// retries on transient failures.
func NewEmailJSClient(cfg config.EmailJSConfig, timeout time.Duration, attempts int, logg *logger.Logger) *EmailJSClient {
	if attempts < 1 {
		attempts = 1
	}
	return &EmailJSClient{
		cfg:      cfg,
		http:     &http.Client{Timeout: timeout},
		attempts: attempts,
		logg:     logg,
	}
}

// Send posts the template params to EmailJS. Server-side errors and transport
// failures are retried with fibonacci backoff; a 4xx response fails fast since
// resending the same payload cannot succeed.
func (c *EmailJSClient) Send(ctx context.Context, params TemplateParams) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding email payload")
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + sendPath
	backoff := retry.WithMaxRetries(uint64(c.attempts-1), retry.NewFibonacci(500*time.Millisecond))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			return nil
		}

		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		sendErr := fmt.Errorf("emailjs responded %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
		if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < 500 {
			return sendErr
		}
		return retry.RetryableError(sendErr)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sending order email")
	}

	if c.logg != nil {
		c.logg.Info(ctx, "order email sent")
	}
	return nil
}
