package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hostmail-io/hostmail/internal/application/payment/paymentgateway"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/config"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

const (
	paypalLiveBase    = "https://api-m.paypal.com"
	paypalSandboxBase = "https://api-m.sandbox.paypal.com"
)

// PayPalGateway integrates with the PayPal Orders v2 REST API. Access tokens
// are cached until shortly before expiry.
type PayPalGateway struct {
	baseURL      string
	clientID     string
	clientSecret string
	returnURL    string
	cancelURL    string
	httpClient   *http.Client
	logger       logger.Interface

	tokenMu      sync.Mutex
	accessToken  string
	tokenExpires time.Time
}

func NewPayPalGateway(cfg config.PaymentConfig, log logger.Interface) *PayPalGateway {
	baseURL := paypalLiveBase
	if cfg.Mode != "paypal" {
		baseURL = paypalSandboxBase
	}

	return &PayPalGateway{
		baseURL:      baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		returnURL:    cfg.ReturnURL,
		cancelURL:    cfg.CancelURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       log,
	}
}

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalPurchaseUnit struct {
	ReferenceID string       `json:"reference_id,omitempty"`
	Description string       `json:"description,omitempty"`
	Amount      paypalAmount `json:"amount"`
}

type paypalLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type paypalOrder struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	PurchaseUnits []paypalPurchaseUnit `json:"purchase_units"`
	Links         []paypalLink         `json:"links"`
}

type paypalCapture struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				Status string       `json:"status"`
				Amount paypalAmount `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, req paymentgateway.CreateOrderRequest) (*paymentgateway.CreateOrderResponse, error) {
	body := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []paypalPurchaseUnit{{
			ReferenceID: req.OrderNo,
			Description: req.Description,
			Amount: paypalAmount{
				CurrencyCode: req.Currency,
				Value:        centsToDecimal(req.AmountCents),
			},
		}},
		"application_context": map[string]string{
			"return_url": req.ReturnURL,
			"cancel_url": req.CancelURL,
		},
	}

	var order paypalOrder
	if err := g.do(ctx, http.MethodPost, "/v2/checkout/orders", body, &order); err != nil {
		return nil, fmt.Errorf("failed to create paypal order: %w", err)
	}

	approvalURL := ""
	for _, link := range order.Links {
		if link.Rel == "approve" {
			approvalURL = link.Href
			break
		}
	}
	if approvalURL == "" {
		return nil, fmt.Errorf("paypal order %s has no approval link", order.ID)
	}

	return &paymentgateway.CreateOrderResponse{
		GatewayOrderID: order.ID,
		ApprovalURL:    approvalURL,
	}, nil
}

func (g *PayPalGateway) CaptureOrder(ctx context.Context, gatewayOrderID string) (*paymentgateway.CaptureResult, error) {
	var capture paypalCapture
	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", url.PathEscape(gatewayOrderID))
	if err := g.do(ctx, http.MethodPost, path, map[string]any{}, &capture); err != nil {
		return nil, fmt.Errorf("failed to capture paypal order: %w", err)
	}

	result := &paymentgateway.CaptureResult{
		GatewayOrderID: capture.ID,
		Completed:      capture.Status == "COMPLETED",
		RawStatus:      capture.Status,
	}

	for _, unit := range capture.PurchaseUnits {
		for _, c := range unit.Payments.Captures {
			cents, err := decimalToCents(c.Amount.Value)
			if err != nil {
				return nil, fmt.Errorf("unparseable capture amount %q: %w", c.Amount.Value, err)
			}
			result.AmountCents += cents
			result.Currency = c.Amount.CurrencyCode
		}
	}

	return result, nil
}

func (g *PayPalGateway) do(ctx context.Context, method, path string, body, out any) error {
	token, err := g.token(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paypal request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read paypal response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("paypal returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode paypal response: %w", err)
		}
	}

	return nil
}

func (g *PayPalGateway) token(ctx context.Context) (string, error) {
	g.tokenMu.Lock()
	defer g.tokenMu.Unlock()

	if g.accessToken != "" && biztime.NowUTC().Before(g.tokenExpires) {
		return g.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(g.clientID, g.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	g.accessToken = payload.AccessToken
	// Refresh a minute early to avoid using a token at the expiry edge.
	g.tokenExpires = biztime.NowUTC().Add(time.Duration(payload.ExpiresIn-60) * time.Second)

	return g.accessToken, nil
}

func centsToDecimal(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func decimalToCents(value string) (int64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return int64(f*100 + 0.5), nil
}
