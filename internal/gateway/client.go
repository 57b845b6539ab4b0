// Package gateway wraps the four remote operations behind the review page,
// attaching the signed apiCode to each request and normalizing transport
// failures into errors distinct from application-level failure responses.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jahidblackrose/mtb-loan-approver/internal/common"
	"github.com/jahidblackrose/mtb-loan-approver/internal/model"
	"github.com/jahidblackrose/mtb-loan-approver/internal/signer"
)

// basePath is the common prefix for all four endpoints.
const basePath = "/ekyc/api/v1/CustomerNotification/"

// Client is the HTTP implementation of ReviewGateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client against the given API host.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type fetchRequest struct {
	RefID   string `json:"refId"`
	APICode string `json:"apiCode"`
}

type generateRequest struct {
	RefID   string `json:"refId"`
	EmpID   string `json:"empId"`
	Action  string `json:"action"`
	Remarks string `json:"remarks"`
	APICode string `json:"apiCode"`
}

type resendRequest struct {
	RefID   string `json:"refId"`
	EmpID   string `json:"empId"`
	APICode string `json:"apiCode"`
}

type validateRequest struct {
	RefID   string `json:"refId"`
	EmpID   string `json:"empId"`
	OTP     string `json:"otp"`
	APICode string `json:"apiCode"`
}

// FetchBundle loads the application bundle for one reference. The fetch is
// read-only, so transient transport failures are retried with backoff. The
// OTP operations are never retried; they have backend side effects.
func (c *Client) FetchBundle(ctx context.Context, refID string) (*BundleResponse, error) {
	req := fetchRequest{
		RefID:   refID,
		APICode: signer.Sign(refID, signer.EndpointFetchAllData),
	}

	var resp BundleResponse
	err := common.WithRetry(ctx, func() error {
		return c.post(ctx, signer.EndpointFetchAllData, req, &resp)
	}, common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     2 * time.Second,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateOTP asks the backend to issue an OTP for the chosen action.
func (c *Client) GenerateOTP(ctx context.Context, refID, empID string, action model.Action, remarks string) (*OTPResponse, error) {
	req := generateRequest{
		RefID:   refID,
		EmpID:   empID,
		Action:  string(action),
		Remarks: remarks,
		APICode: signer.Sign(refID, signer.EndpointGenerateOTP),
	}

	var resp OTPResponse
	if err := c.post(ctx, signer.EndpointGenerateOTP, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResendOTP asks the backend to re-issue the pending OTP.
func (c *Client) ResendOTP(ctx context.Context, refID, empID string) (*OTPResponse, error) {
	req := resendRequest{
		RefID:   refID,
		EmpID:   empID,
		APICode: signer.Sign(refID, signer.EndpointResendOTP),
	}

	var resp OTPResponse
	if err := c.post(ctx, signer.EndpointResendOTP, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidateOTP checks the 6-digit code against the backend.
func (c *Client) ValidateOTP(ctx context.Context, refID, empID, otp string) (*OTPResponse, error) {
	req := validateRequest{
		RefID:   refID,
		EmpID:   empID,
		OTP:     otp,
		APICode: signer.Sign(refID, signer.EndpointValidateOTP),
	}

	var resp OTPResponse
	if err := c.post(ctx, signer.EndpointValidateOTP, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post sends one JSON POST and decodes the 2xx envelope into out. Path
// suffixes equal the logical endpoint names.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.baseURL + basePath + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("calling review backend", "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrGatewayTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %d - %s", common.ErrGatewayTransport, resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", common.ErrGatewayTransport, err)
	}

	return nil
}

// Ensure Client implements the gateway contract.
var _ ReviewGateway = (*Client)(nil)
