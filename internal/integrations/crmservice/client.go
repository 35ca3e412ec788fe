package crmservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging surface the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the CRM service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a CRM service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCustomer fetches a contact profile by id
func (c *Client) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	url := fmt.Sprintf("%s/internal/customers/%d", c.baseURL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to decoding
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid customer ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrCustomerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var customer Customer
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &customer, nil
}

// GetCustomerWithGracefulDegradation fetches a contact profile but converts
// CRM outages into ErrServiceDegraded: a booking can still be created
// without the denormalized contact data, only a missing customer record is
// a hard business error.
func (c *Client) GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*Customer, error) {
	customer, err := c.GetCustomer(ctx, customerID)
	if err != nil {
		if err == ErrCustomerNotFound {
			c.log.Info("No CRM record for customer_id=%d", customerID)
			return nil, err
		}

		c.log.Error("CRM service unavailable, applying graceful degradation for customer_id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: customer_id=%d, error=%v", ErrServiceDegraded, customerID, err)
	}

	return customer, nil
}
